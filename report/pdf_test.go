package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homevault/homevault/internal/catalog"
)

func testItems(n int) []catalog.Item {
	items := make([]catalog.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, catalog.Item{
			ID:          strconv.Itoa(i + 1),
			Name:        fmt.Sprintf("Item %d", i+1),
			Category:    "Misc",
			Description: "Household object",
			Photo:       "https://via.placeholder.com/100",
			House:       "House 1",
		})
	}
	return items
}

func TestWritePDFProducesWellFormedDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testItems(3)))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "%PDF-1.4\n"))
	require.True(t, strings.HasSuffix(out, "%%EOF\n"))
	require.Contains(t, out, "(Items Report) Tj")
	require.Contains(t, out, "(Name: Item 1) Tj")
	require.Contains(t, out, "(Photo: https://via.placeholder.com/100) Tj")
}

func TestWritePDFEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, nil))

	out := buf.String()
	require.Contains(t, out, "(Items Report) Tj")
	require.Contains(t, out, "/Count 1")
}

func TestWritePDFPaginates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testItems(60)))

	pages := strings.Count(buf.String(), "/Type /Page /Parent")
	require.Greater(t, pages, 1)
	require.Contains(t, buf.String(), fmt.Sprintf("/Count %d", pages))
}

func TestWritePDFXrefOffsetIsValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testItems(5)))

	out := buf.String()
	idx := strings.LastIndex(out, "startxref\n")
	require.Greater(t, idx, 0)
	rest := out[idx+len("startxref\n"):]
	offsetLine := strings.SplitN(rest, "\n", 2)[0]
	offset, err := strconv.Atoi(offsetLine)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out[offset:], "xref\n"))
}

// chunkRecorder captures every Write call so streaming behavior is visible.
type chunkRecorder struct {
	writes int
	total  int
	first  []byte
}

func (c *chunkRecorder) Write(p []byte) (int, error) {
	if c.writes == 0 {
		c.first = append([]byte(nil), p...)
	}
	c.writes++
	c.total += len(p)
	return len(p), nil
}

func TestWritePDFStreamsForwardOnly(t *testing.T) {
	rec := &chunkRecorder{}
	require.NoError(t, WritePDF(rec, testItems(40)))

	// The header goes out on the very first write, before any item has
	// been rendered, and the document arrives as many small writes rather
	// than one buffered blob.
	require.True(t, bytes.HasPrefix(rec.first, []byte("%PDF-1.4")))
	require.Greater(t, rec.writes, 40)
	require.Greater(t, rec.total, 0)
}
