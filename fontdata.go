package fontkit

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// FontFile is the backing file of a native font handle.
type FontFile interface {
	// FontFileBytes returns the complete contents of the file. It returns
	// ErrNoFontFile when the handle has no file to read.
	FontFileBytes() ([]byte, error)
}

// BytesFile is a FontFile held in memory.
type BytesFile []byte

// FontFileBytes returns b.
func (b BytesFile) FontFileBytes() ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrNoFontFile
	}
	return b, nil
}

// PathFile is a FontFile read from disk on demand.
type PathFile string

// FontFileBytes reads the file at p.
func (p PathFile) FontFileBytes() ([]byte, error) {
	if p == "" {
		return nil, ErrNoFontFile
	}
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(string(p))
	if err != nil {
		return nil, fmt.Errorf("fontkit: failed to read font file: %w", err)
	}
	return data, nil
}

// FontData is a read-only view of the bytes of a font file.
// The bytes must not be modified.
type FontData struct {
	data []byte
}

// Bytes returns the font file contents.
func (d *FontData) Bytes() []byte {
	return d.data
}

// Len returns the number of bytes.
func (d *FontData) Len() int {
	return len(d.data)
}

// CachedFontData is a lazily populated copy of a font's file bytes.
//
// Once populated the bytes are never replaced, so views returned by Get stay
// valid without holding the lock. CachedFontData is safe for concurrent use
// and must not be copied; use Clone.
type CachedFontData struct {
	mu     sync.Mutex
	data   []byte
	noFile bool
}

// NewCachedFontData returns a cache seeded with data. A nil data leaves the
// cache empty, to be populated on first use.
func NewCachedFontData(data []byte) *CachedFontData {
	return &CachedFontData{data: data}
}

// Get returns the cached bytes, calling fetch to populate the cache when it
// is empty. fetch runs at most once successfully per cache. When fetch
// reports ErrNoFontFile the cache stays empty for good and fetch is never
// called again; other errors are logged and retried on the next call.
func (c *CachedFontData) Get(fetch func() ([]byte, error)) (*FontData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data != nil {
		return &FontData{data: c.data}, true
	}
	if c.noFile || fetch == nil {
		return nil, false
	}

	data, err := fetch()
	switch {
	case errors.Is(err, ErrNoFontFile):
		c.noFile = true
		Logger().Debug("fontkit: font has no backing file")
		return nil, false
	case err != nil:
		Logger().Warn("fontkit: font data fetch failed", "err", err)
		return nil, false
	case len(data) == 0:
		c.noFile = true
		return nil, false
	}

	c.data = data
	Logger().Debug("fontkit: font data cached", "bytes", len(data))
	return &FontData{data: c.data}, true
}

// Peek returns the cached bytes without fetching.
func (c *CachedFontData) Peek() (*FontData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return nil, false
	}
	return &FontData{data: c.data}, true
}

// Clone returns an independent cache seeded with the current contents of c.
// Populating one cache does not populate the other.
func (c *CachedFontData) Clone() *CachedFontData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &CachedFontData{data: c.data, noFile: c.noFile}
}
