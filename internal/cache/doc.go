// Package cache provides the bounded LRU cache fontkit loaders keep their
// scaled glyph paths in.
//
//	c := cache.New[pathKey, []glyphrun.Segment](256)
//	c.Add(key, path)
//	path, ok := c.Get(key)
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
