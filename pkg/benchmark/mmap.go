package benchmark

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/pojntfx/file-access-bench/pkg/traversal"
)

// Mapping is a read-only view of one window.
type Mapping interface {
	Bytes() []byte
	Unmap() error
}

// Mapper establishes a mapping for exactly one window of f.
type Mapper interface {
	Map(f *os.File, w traversal.Window) (Mapping, error)
}

// RegionMapper maps windows with mmap(2). Mapping offsets have to be page
// aligned, so the region starts at the page containing the window and the
// window is sliced out of it.
type RegionMapper struct {
	pageSize int64
}

func NewRegionMapper() *RegionMapper {
	return &RegionMapper{
		pageSize: int64(os.Getpagesize()),
	}
}

func (r *RegionMapper) Map(f *os.File, w traversal.Window) (Mapping, error) {
	aligned := w.Offset - w.Offset%r.pageSize
	delta := int(w.Offset - aligned)

	region, err := mmap.MapRegion(f, delta+w.Length, mmap.RDONLY, 0, aligned)
	if err != nil {
		return nil, err
	}

	return &regionMapping{
		region: region,
		data:   region[delta : delta+w.Length],
	}, nil
}

type regionMapping struct {
	region mmap.MMap
	data   []byte
}

func (m *regionMapping) Bytes() []byte {
	return m.data
}

func (m *regionMapping) Unmap() error {
	m.data = nil

	return m.region.Unmap()
}
