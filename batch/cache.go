package batch

import (
	"os"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"massnet.org/mass-sha256/hashutil"
)

// fileKey identifies a file version; a changed size or mtime misses.
type fileKey struct {
	path    string
	size    int64
	modTime time.Time
}

func newFileKey(path string, info os.FileInfo) fileKey {
	return fileKey{path: path, size: info.Size(), modTime: info.ModTime()}
}

// digestCache is a concurrent safe lru of file digests.
type digestCache struct {
	l     sync.Mutex
	cache *lru.Cache
}

// newDigestCache returns nil when maxEntries is 0, disabling caching.
func newDigestCache(maxEntries int) *digestCache {
	if maxEntries <= 0 {
		return nil
	}
	return &digestCache{
		cache: lru.New(maxEntries),
	}
}

func (c *digestCache) Get(key fileKey) (hashutil.Hash, bool) {
	if c == nil {
		return hashutil.Hash{}, false
	}
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(key)
	if !ok {
		return hashutil.Hash{}, false
	}
	return v.(hashutil.Hash), true
}

func (c *digestCache) Add(key fileKey, h hashutil.Hash) {
	if c == nil {
		return
	}
	c.l.Lock()
	c.cache.Add(key, h)
	c.l.Unlock()
}

func (c *digestCache) Len() int {
	if c == nil {
		return 0
	}
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}

func (c *digestCache) Clear() {
	if c == nil {
		return
	}
	c.l.Lock()
	c.cache.Clear()
	c.l.Unlock()
}
