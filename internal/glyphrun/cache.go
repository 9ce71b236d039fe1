package glyphrun

import (
	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
)

// DefaultPathCacheSize is the number of scaled paths a loader keeps per
// font.
const DefaultPathCacheSize = 256

type pathKey struct {
	glyph  fontkit.GlyphID
	emSize float32
}

// PathCache keeps scaled glyph paths so that a RasterBounds call followed by
// RasterizeGlyph extracts the outline once. Cached paths are shared and
// must not be modified.
//
// PathCache is safe for concurrent use.
type PathCache struct {
	paths *cache.Cache[pathKey, []Segment]
}

// NewPathCache returns a cache holding up to capacity paths.
func NewPathCache(capacity int) *PathCache {
	return &PathCache{paths: cache.New[pathKey, []Segment](capacity)}
}

// Source returns src with its paths served from the cache.
func (p *PathCache) Source(src Source) Source {
	return cachedSource{src: src, cache: p}
}

// Stats returns the cache statistics.
func (p *PathCache) Stats() cache.Stats {
	return p.paths.Stats()
}

type cachedSource struct {
	src   Source
	cache *PathCache
}

func (s cachedSource) GlyphRunPath(id fontkit.GlyphID, emSize float32) ([]Segment, error) {
	key := pathKey{glyph: id, emSize: emSize}
	if path, ok := s.cache.paths.Get(key); ok {
		return path, nil
	}
	path, err := s.src.GlyphRunPath(id, emSize)
	if err != nil {
		return nil, err
	}
	s.cache.paths.Add(key, path)
	return path, nil
}
