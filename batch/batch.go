// Package batch hashes many files at once on a bounded worker pool.
package batch

import (
	"context"
	"os"
	"sync"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"
	"massnet.org/mass-sha256/hashutil"
	"massnet.org/mass-sha256/logging"
)

// ErrHasherClosed is returned by SumFiles after Close.
var ErrHasherClosed = errors.New("batch hasher closed")

// Hasher runs independent file digests on an ants pool. Each task owns
// its own digest; only the result map and the cache are shared.
type Hasher struct {
	workerPool *ants.Pool
	cache      *digestCache
	mu         sync.RWMutex
	closed     bool
}

// NewHasher creates a Hasher with the given pool size and digest cache
// capacity. cacheEntries of 0 disables the cache.
func NewHasher(workers, cacheEntries int) (*Hasher, error) {
	if workers <= 0 {
		return nil, errors.Errorf("invalid worker count %d", workers)
	}
	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "fail on creating worker pool")
	}
	return &Hasher{
		workerPool: workerPool,
		cache:      newDigestCache(cacheEntries),
	}, nil
}

// SumFiles hashes paths concurrently and returns one Result per path, in
// input order. Per-file failures are reported in Result.Err; the returned
// error is non-nil only when the batch itself could not run or ctx was
// cancelled. Duplicate paths are hashed once.
func (h *Hasher) SumFiles(ctx context.Context, paths []string) ([]*Result, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil, ErrHasherClosed
	}

	results := NewResultMap()
	submitted := make(map[string]struct{}, len(paths))
	var wg sync.WaitGroup

	for _, path := range paths {
		if _, ok := submitted[path]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		submitted[path] = struct{}{}

		path := path
		wg.Add(1)
		if err := h.workerPool.Submit(func() {
			defer wg.Done()
			results.Set(h.sumFile(ctx, path))
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, errors.Wrap(err, "fail on submitting task")
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := make([]*Result, 0, len(paths))
	for _, path := range paths {
		r, _ := results.Get(path)
		ordered = append(ordered, r)
	}
	return ordered, nil
}

func (h *Hasher) sumFile(ctx context.Context, path string) *Result {
	r := &Result{Path: path}
	if r.Err = ctx.Err(); r.Err != nil {
		return r
	}

	info, err := os.Stat(path)
	if err != nil {
		r.Err = errors.Wrapf(err, "fail on stat %s", path)
		return r
	}
	if info.IsDir() {
		r.Err = errors.Errorf("%s is a directory", path)
		return r
	}

	key := newFileKey(path, info)
	if hash, ok := h.cache.Get(key); ok {
		r.Hash, r.Size, r.Cached = hash, info.Size(), true
		logging.VPrint(logging.DEBUG, "digest cache hit", logging.LogFormat{"path": path})
		return r
	}

	r.Hash, r.Size, r.Err = hashutil.SumFile(path)
	if r.Err != nil {
		logging.VPrint(logging.WARN, "fail on hashing file", logging.LogFormat{"path": path, "err": r.Err})
		return r
	}
	if r.Size == info.Size() {
		h.cache.Add(key, r.Hash)
	}
	logging.VPrint(logging.DEBUG, "file hashed", logging.LogFormat{"path": path, "size": r.Size})
	return r
}

// CacheLen returns the number of cached digests.
func (h *Hasher) CacheLen() int {
	return h.cache.Len()
}

// Close releases the worker pool. It is safe to call more than once.
func (h *Hasher) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.workerPool.Release()
	h.cache.Clear()
}
