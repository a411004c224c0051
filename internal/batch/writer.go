// Package batch runs mission files through the route service and persists
// one result line per mission, in mission order.
package batch

import (
	"bufio"
	"os"
)

// flushInterval bounds how many buffered lines may be lost on a crash.
const flushInterval = 1000

// ResultWriter writes result lines to a file through a buffered writer,
// flushing periodically and on close.
type ResultWriter struct {
	file  *os.File
	w     *bufio.Writer
	lines int
}

// NewResultWriter creates (or truncates) the output file.
func NewResultWriter(path string) (*ResultWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &ResultWriter{file: f, w: bufio.NewWriter(f)}, nil
}

// WriteLine appends one result line.
func (rw *ResultWriter) WriteLine(line string) error {
	if _, err := rw.w.WriteString(line + "\n"); err != nil {
		return err
	}
	rw.lines++
	if rw.lines%flushInterval == 0 {
		return rw.w.Flush()
	}
	return nil
}

// Close flushes any buffered lines and closes the file.
func (rw *ResultWriter) Close() error {
	if err := rw.w.Flush(); err != nil {
		rw.file.Close()
		return err
	}
	return rw.file.Close()
}
