// Package palette turns a segmented cluster model into a ranked palette of
// swatches, per spec.md §4.7-4.9: swatch assembly and merge, theme scoring,
// and diversity-weighted selection.
package palette

import "github.com/pkg/errors"

// Error kinds from spec.md §7. None of these abort the process; they are
// returned by value. Extract returns ErrInvalidParameter for an unknown
// algorithm or a non-positive DBSCAN/DBSCAN++ epsilon, and ParseAlgorithm and
// ParseTheme return it for an unknown name. Nothing in this package returns
// ErrInvalidDimensions or ErrUnsupportedFormat; pkg/imagedata's New and
// Decode report those kinds with their own errors. FindSwatches and
// FindSwatchesWithTheme have no error result: n <= 0 yields an empty list.
var (
	// ErrInvalidDimensions: width/height do not match buffer length or are zero.
	ErrInvalidDimensions = errors.New("palette: invalid dimensions")
	// ErrUnsupportedFormat: image decode (external) refused the bytes.
	ErrUnsupportedFormat = errors.New("palette: unsupported image format")
	// ErrInvalidParameter: epsilon <= 0 or an unknown algorithm/theme name.
	ErrInvalidParameter = errors.New("palette: invalid parameter")
	// ErrInterrupted is reserved for host cancellation; the core itself
	// never raises it.
	ErrInterrupted = errors.New("palette: interrupted")
)

// EmptyInput is not an error: per spec.md §7, extraction on zero
// contributing points returns an empty Palette rather than failing.
