package batch

import (
	cmap "github.com/orcaman/concurrent-map"
	"massnet.org/mass-sha256/hashutil"
)

// Result is the outcome of hashing one file.
type Result struct {
	Path   string
	Hash   hashutil.Hash
	Size   int64
	Cached bool
	Err    error
}

// ResultMap collects results from pool workers, keyed by path.
type ResultMap struct {
	m cmap.ConcurrentMap
}

func NewResultMap() *ResultMap {
	return &ResultMap{
		m: cmap.New(),
	}
}

func (m *ResultMap) Get(path string) (*Result, bool) {
	v, ok := m.m.Get(path)
	if !ok {
		return nil, false
	}
	return v.(*Result), ok
}

func (m *ResultMap) Set(r *Result) {
	m.m.Set(r.Path, r)
}

func (m *ResultMap) Has(path string) bool {
	return m.m.Has(path)
}

func (m *ResultMap) Count() int {
	return m.m.Count()
}
