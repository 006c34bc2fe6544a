package record

import (
	"bufio"
	"fmt"
	"io"
)

// Writer writes games as fixed-size records.
type Writer struct {
	w   *bufio.Writer
	buf []byte
	n   int
}

// NewWriter returns a buffered Writer on w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), buf: make([]byte, 0, Size)}
}

// Write writes one game.
func (w *Writer) Write(g Game) error {
	w.buf = AppendGame(w.buf[:0], g)
	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("write record %d: %w", w.n, err)
	}
	w.n++
	return nil
}

// Count returns the number of games written.
func (w *Writer) Count() int { return w.n }

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
