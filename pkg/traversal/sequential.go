package traversal

// Sequential visits (0,B), (B,B), ... up to a final partial window.
type Sequential struct {
	size   int64
	block  int
	offset int64
}

func NewSequential(size int64, block int) *Sequential {
	mustBlockSize(block)

	return &Sequential{
		size:  size,
		block: block,
	}
}

func (s *Sequential) Next() (Window, bool) {
	if s.offset >= s.size {
		return Window{}, false
	}

	return Window{
		Offset: s.offset,
		Length: int(min64(int64(s.block), s.size-s.offset)),
	}, true
}

func (s *Sequential) Advance(n int) {
	s.offset += int64(n)
}
