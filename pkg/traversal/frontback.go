package traversal

// FrontBack alternates between a block starting at the front cursor and a
// block ending at the back cursor, starting with the front, until the two
// cursors meet. The last residual window may be shorter than the block size.
type FrontBack struct {
	block     int
	front     int64
	back      int64
	fromFront bool
	lastFront bool
}

func NewFrontBack(size int64, block int) *FrontBack {
	mustBlockSize(block)

	return &FrontBack{
		block:     block,
		back:      size,
		fromFront: true,
	}
}

func (f *FrontBack) Next() (Window, bool) {
	if f.front >= f.back {
		return Window{}, false
	}

	length := min64(int64(f.block), f.back-f.front)

	f.lastFront = f.fromFront
	f.fromFront = !f.fromFront

	if f.lastFront {
		return Window{Offset: f.front, Length: int(length)}, true
	}

	// The back cursor moves as soon as its window is handed out.
	f.back -= length

	return Window{Offset: f.back, Length: int(length)}, true
}

// Advance moves the front cursor by n if the last window came from the front.
func (f *FrontBack) Advance(n int) {
	if f.lastFront {
		f.front += int64(n)
	}
}
