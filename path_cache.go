package mutables

import lru "github.com/hashicorp/golang-lru"

// PathCache memoises parsed paths, so that hot paths aren't re-scanned on
// every Get and Set. One cache can be shared by any number of stores.
type PathCache interface {
	// Add records the parse of the given path string.
	Add(key, value interface{})
	// Get retrieves a previously-parsed path, if cached.
	Get(key interface{}) (value interface{}, ok bool)
}

// NewPathCache creates a new LRU-based path cache of the given size.
func NewPathCache(size int) PathCache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}

func parseCached(cache PathCache, path string) Path {
	if cache == nil {
		return Parse(path)
	}
	if p, ok := cache.Get(path); ok {
		return p.(Path)
	}
	p := Parse(path)
	cache.Add(path, p)
	return p
}
