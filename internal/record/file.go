package record

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// File is a read-only, memory-mapped record file. Game is safe to call
// from multiple goroutines.
type File struct {
	r    *mmap.ReaderAt
	n    int
	path string
}

// Open maps the record file at path.
func Open(path string) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	return &File{r: r, n: r.Len() / Size, path: path}, nil
}

// Path returns the file path given to Open.
func (f *File) Path() string { return f.path }

// Len returns the number of complete records.
func (f *File) Len() int { return f.n }

// Trailing returns the number of bytes after the last complete record.
func (f *File) Trailing() int { return f.r.Len() % Size }

// Game decodes record i.
func (f *File) Game(i int) (Game, error) {
	if i < 0 || i >= f.n {
		return Game{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, f.n)
	}

	var buf [Size]byte
	if _, err := f.r.ReadAt(buf[:], int64(i)*Size); err != nil {
		return Game{}, fmt.Errorf("record %d: %w", i, err)
	}

	g, err := Decode(buf[:])
	if err != nil {
		return Game{}, fmt.Errorf("record %d: %w", i, err)
	}
	return g, nil
}

// Close unmaps the file.
func (f *File) Close() error {
	return f.r.Close()
}
