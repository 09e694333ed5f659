package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// docWriter emits a PDF 1.4 document as a single forward-only stream. Byte
// offsets are recorded as objects are written so the cross-reference table
// can be emitted at the end; nothing is buffered or rewritten. Content
// stream lengths are declared as indirect objects written immediately after
// each stream body, which keeps the whole document single-pass.
type docWriter struct {
	w       io.Writer
	off     int64
	offsets map[int]int64
	next    int
	err     error
}

const (
	objCatalog = 1
	objPages   = 2
	objFont    = 3
)

func newDocWriter(w io.Writer) *docWriter {
	dw := &docWriter{w: w, offsets: make(map[int]int64), next: objFont + 1}
	// The second line is a binary marker so transfer tooling treats the
	// file as binary content.
	dw.writeString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	dw.writeObj(objCatalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", objPages))
	dw.writeObj(objFont, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	return dw
}

// alloc reserves the next free object number.
func (dw *docWriter) alloc() int {
	n := dw.next
	dw.next++
	return n
}

func (dw *docWriter) writeString(s string) {
	if dw.err != nil {
		return
	}
	n, err := io.WriteString(dw.w, s)
	dw.off += int64(n)
	if err != nil {
		dw.err = err
	}
}

func (dw *docWriter) writeObj(num int, body string) {
	dw.markObj(num)
	dw.writeString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", num, body))
}

func (dw *docWriter) markObj(num int) {
	dw.offsets[num] = dw.off
}

// beginStream opens a content stream object whose length is declared via the
// returned length object number.
func (dw *docWriter) beginStream(num int) (lengthObj int) {
	lengthObj = dw.alloc()
	dw.markObj(num)
	dw.writeString(fmt.Sprintf("%d 0 obj\n<< /Length %d 0 R >>\nstream\n", num, lengthObj))
	return lengthObj
}

// streamWrite appends operators to the open content stream and reports the
// number of bytes written.
func (dw *docWriter) streamWrite(s string) int64 {
	before := dw.off
	dw.writeString(s)
	return dw.off - before
}

// endStream closes the content stream and writes its length object.
func (dw *docWriter) endStream(lengthObj int, length int64) {
	dw.writeString("endstream\nendobj\n")
	dw.writeObj(lengthObj, strconv.FormatInt(length, 10))
}

// writePage emits a page object referencing its content stream.
func (dw *docWriter) writePage(num, contents int, width, height float64) {
	body := fmt.Sprintf(
		"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
		objPages, width, height, objFont, contents,
	)
	dw.writeObj(num, body)
}

// finish writes the page tree, cross-reference table, and trailer.
func (dw *docWriter) finish(pageObjs []int) error {
	kids := make([]string, len(pageObjs))
	for i, n := range pageObjs {
		kids[i] = fmt.Sprintf("%d 0 R", n)
	}
	dw.writeObj(objPages, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageObjs)))

	size := dw.next
	xrefOff := dw.off
	dw.writeString(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", size))
	for num := 1; num < size; num++ {
		dw.writeString(fmt.Sprintf("%010d 00000 n \n", dw.offsets[num]))
	}
	dw.writeString(fmt.Sprintf("trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, objCatalog, xrefOff))
	return dw.err
}

// escapeText sanitises a string for use inside a PDF literal string. Bytes
// outside the printable ASCII range are written as octal escapes.
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r > 0x7e:
			// WinAnsi covers Latin-1; everything else degrades to '?'.
			if r <= 0xff {
				fmt.Fprintf(&b, "\\%03o", r)
			} else {
				b.WriteByte('?')
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
