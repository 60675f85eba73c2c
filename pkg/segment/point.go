// Package segment implements the 5-D feature encoding and the family of
// segmentation/clustering algorithms (DBSCAN, DBSCAN++, grid-seeded K-means,
// SLIC, SNIC) that reduce a pixel cloud to cluster centroids.
package segment

import (
	"math"

	"github.com/autopalette-go/autopalette/pkg/color"
)

// Point5D is (L, a, b, x, y): the perceptual color plus 1-indexed normalized
// spatial coordinates. Immutable after construction.
type Point5D struct {
	L, A, B float64
	X, Y    float64
}

// Lab extracts the color part of the point.
func (p Point5D) Lab() color.Lab { return color.Lab{L: p.L, A: p.A, B: p.B} }

// Slice returns the point as a plain 5-element slice for kdtree.Point.
func (p Point5D) Slice() []float64 { return []float64{p.L, p.A, p.B, p.X, p.Y} }

// FromSlice reconstructs a Point5D from a 5-element slice.
func FromSlice(s []float64) Point5D {
	return Point5D{L: s[0], A: s[1], B: s[2], X: s[3], Y: s[4]}
}

// DeltaE76 is the Euclidean distance between the color components only,
// matching spec.md's ΔE*76 definition used for the merge threshold and
// DBSCAN's epsilon.
func DeltaE76(a, b Point5D) float64 {
	return color.DeltaE76(a.Lab(), b.Lab())
}

// Distance5D is the full Euclidean distance across all five dimensions, used
// by the KD-tree radius/neighbor queries that mix color and space.
func Distance5D(a, b Point5D) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dl*dl + da*da + db*db + dx*dx + dy*dy)
}
