// Package loader picks the default fontkit engine at build time.
//
// Without build tags the default is the golang.org/x/image/font/sfnt
// engine in loaders/ximage. Building with -tags fontkit_gotext selects the
// github.com/go-text/typesetting engine in loaders/gotext. Code written
// against this package and fontkit.Face works unchanged with either.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/fontkit"
)

// FromFile loads the font at index from r with the default engine.
func FromFile(r io.ReadSeeker, index int) (*Font, error) {
	return fromFile(r, index)
}

// FromPath loads the font at index from the file at path with the default
// engine.
func FromPath(path string, index int) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read font file: %w", err)
	}
	return FromBytes(data, index)
}

// AnalyzePath reports whether the file at path holds a single font or a
// collection.
func AnalyzePath(path string) (fontkit.Type, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fontkit.Type{}, fmt.Errorf("loader: failed to read font file: %w", err)
	}
	return AnalyzeBytes(data)
}
