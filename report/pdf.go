package report

import (
	"fmt"
	"io"

	"github.com/homevault/homevault/internal/catalog"
)

// US Letter geometry in points.
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	pageMargin   = 72.0
	titleSize    = 18.0
	bodySize     = 11.0
	bodyLeading  = 16.0
	itemSpacing  = 12.0
	titleSpacing = 36.0
)

// WritePDF renders the items report as a streamed PDF document. Bytes reach
// w while items are still being rendered; the full document is never held in
// memory. On error the stream is truncated and must be treated as corrupt by
// the consumer.
func WritePDF(w io.Writer, items []catalog.Item) error {
	dw := newDocWriter(w)
	r := &pdfRender{dw: dw}

	r.startPage()
	r.title("Items Report")
	for _, item := range items {
		r.item(item)
	}
	r.endPage()
	return dw.finish(r.pageObjs)
}

// pdfRender tracks the open page and the text cursor while items stream out.
type pdfRender struct {
	dw        *docWriter
	pageObjs  []int
	contents  int
	lengthObj int
	streamLen int64
	y         float64
}

func (r *pdfRender) startPage() {
	r.contents = r.dw.alloc()
	r.lengthObj = r.dw.beginStream(r.contents)
	r.streamLen = 0
	r.y = pageHeight - pageMargin
}

func (r *pdfRender) endPage() {
	r.dw.endStream(r.lengthObj, r.streamLen)
	pageObj := r.dw.alloc()
	r.dw.writePage(pageObj, r.contents, pageWidth, pageHeight)
	r.pageObjs = append(r.pageObjs, pageObj)
}

func (r *pdfRender) title(text string) {
	// Approximate Helvetica advance of 0.5em per glyph for centering.
	width := 0.5 * titleSize * float64(len(text))
	x := (pageWidth - width) / 2
	if x < pageMargin {
		x = pageMargin
	}
	r.text(x, r.y, titleSize, text)
	r.y -= titleSpacing
}

func (r *pdfRender) item(item catalog.Item) {
	needed := 4*bodyLeading + itemSpacing
	if r.y-needed < pageMargin {
		r.endPage()
		r.startPage()
	}
	for _, line := range []string{
		"Name: " + item.Name,
		"Category: " + item.Category,
		"Description: " + item.Description,
		"Photo: " + item.Photo,
	} {
		r.text(pageMargin, r.y, bodySize, line)
		r.y -= bodyLeading
	}
	r.y -= itemSpacing
}

func (r *pdfRender) text(x, y, size float64, s string) {
	op := fmt.Sprintf("BT /F1 %.1f Tf %.2f %.2f Td (%s) Tj ET\n", size, x, y, escapeText(s))
	r.streamLen += r.dw.streamWrite(op)
}
