// Package traversal yields the windows a benchmark strategy visits, in the
// order it visits them.
package traversal

import "fmt"

// Window is a contiguous byte range of the target file.
type Window struct {
	Offset int64
	Length int
}

// End returns the offset one past the last byte of the window.
func (w Window) End() int64 {
	return w.Offset + int64(w.Length)
}

func (w Window) String() string {
	return fmt.Sprintf("(%d,%d)", w.Offset, w.Length)
}

// Traversal produces windows lazily.
type Traversal interface {
	// Next returns the next window to visit, or false once the file is exhausted.
	Next() (Window, bool)

	// Advance reports how many bytes of the window last returned by Next were consumed.
	Advance(n int)
}

// Windows drains t, consuming every window completely.
func Windows(t Traversal) []Window {
	windows := []Window{}
	for {
		w, ok := t.Next()
		if !ok {
			return windows
		}

		windows = append(windows, w)
		t.Advance(w.Length)
	}
}

func mustBlockSize(block int) {
	if block <= 0 {
		panic(fmt.Sprintf("traversal: invalid block size %d", block))
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
