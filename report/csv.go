package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/homevault/homevault/internal/catalog"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func (s *csvStreamer) Close() error {
	return s.Flush()
}

// WriteCSV streams the items report as CSV, one row per item in listing
// order.
func WriteCSV(w io.Writer, items []catalog.Item) error {
	streamer := newCSVStreamer(w)
	if err := streamer.writeRow([]string{"Name", "Category", "Description", "Photo", "House"}); err != nil {
		return err
	}
	for _, item := range items {
		row := []string{item.Name, item.Category, item.Description, item.Photo, item.House}
		if err := streamer.writeRow(row); err != nil {
			return err
		}
	}
	return streamer.Close()
}
