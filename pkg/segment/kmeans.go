package segment

import (
	"math"
	"sort"
)

// KMeansParams configures grid-seeded Lloyd iteration.
type KMeansParams struct {
	K             int
	MaxIterations int
	// ShiftThreshold is the total centroid movement below which iteration
	// stops early, in the same units as Distance5D.
	ShiftThreshold float64
}

// DefaultKMeansParams returns k=24 with up to 10 Lloyd iterations, matching
// spec.md §4.5's "typically 16-32" heuristic and default iteration cap.
func DefaultKMeansParams() KMeansParams {
	return KMeansParams{K: 24, MaxIterations: 10, ShiftThreshold: 1e-3}
}

const point5Dim = 5

// KMeans runs Lloyd iteration seeded by a regular grid over the 5-D
// bounding box of the point set (spec.md §4.5), rather than KMeans++ or
// random seeding.
func KMeans(points []Point5D, p KMeansParams) Model {
	if len(points) == 0 || p.K <= 0 {
		return Model{}
	}

	k := p.K
	if k > len(points) {
		k = len(points)
	}

	centers := gridSeed(points, k)
	labels := make([]Label, len(points))

	maxIter := p.MaxIterations
	if maxIter <= 0 {
		maxIter = 10
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := assignToNearestCenter(points, labels, centers)

		newCenters, totalShift := recomputeCenters(points, labels, centers)
		reseedEmptyClusters(points, labels, newCenters)

		centers = newCenters

		if !changed {
			break
		}
		if totalShift < p.ShiftThreshold {
			break
		}
	}

	return BuildModel(points, labels)
}

// gridSeed partitions the 5-D bounding box into a ceil(k^(1/5))-per-axis
// regular grid and picks, for each non-empty cell, the point nearest the
// cell's centroid — up to k centers total.
func gridSeed(points []Point5D, k int) []Point5D {
	lo, hi := boundingBox(points)

	perAxis := int(math.Ceil(math.Pow(float64(k), 1.0/point5Dim)))
	if perAxis < 1 {
		perAxis = 1
	}

	type cellKey [point5Dim]int
	cellPoints := map[cellKey][]int{}

	coordOf := func(p Point5D) [point5Dim]float64 {
		return [point5Dim]float64{p.L, p.A, p.B, p.X, p.Y}
	}
	loArr := coordOf(lo)
	hiArr := coordOf(hi)

	for i, p := range points {
		c := coordOf(p)
		var key cellKey
		for d := 0; d < point5Dim; d++ {
			span := hiArr[d] - loArr[d]
			if span <= 0 {
				key[d] = 0
				continue
			}
			cell := int(((c[d] - loArr[d]) / span) * float64(perAxis))
			if cell >= perAxis {
				cell = perAxis - 1
			}
			key[d] = cell
		}
		cellPoints[key] = append(cellPoints[key], i)
	}

	// cellPoints is keyed by a map, whose iteration order is randomized per
	// run; sort the keys first so truncating to k centers is deterministic
	// whenever there are more occupied cells than k.
	keys := make([]cellKey, 0, len(cellPoints))
	for key := range cellPoints {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		for d := 0; d < point5Dim; d++ {
			if keys[i][d] != keys[j][d] {
				return keys[i][d] < keys[j][d]
			}
		}
		return false
	})

	centers := make([]Point5D, 0, k)
	for _, key := range keys {
		if len(centers) >= k {
			break
		}
		idxs := cellPoints[key]

		var mean Point5D
		for _, idx := range idxs {
			p := points[idx]
			mean.L += p.L
			mean.A += p.A
			mean.B += p.B
			mean.X += p.X
			mean.Y += p.Y
		}
		n := float64(len(idxs))
		mean = Point5D{mean.L / n, mean.A / n, mean.B / n, mean.X / n, mean.Y / n}

		best := idxs[0]
		bestD := Distance5D(points[best], mean)
		for _, idx := range idxs[1:] {
			d := Distance5D(points[idx], mean)
			if d < bestD {
				bestD = d
				best = idx
			}
		}
		centers = append(centers, points[best])
	}

	return centers
}

func boundingBox(points []Point5D) (lo, hi Point5D) {
	lo = points[0]
	hi = points[0]
	for _, p := range points[1:] {
		lo.L, hi.L = math.Min(lo.L, p.L), math.Max(hi.L, p.L)
		lo.A, hi.A = math.Min(lo.A, p.A), math.Max(hi.A, p.A)
		lo.B, hi.B = math.Min(lo.B, p.B), math.Max(hi.B, p.B)
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
	}
	return
}

func assignToNearestCenter(points []Point5D, labels []Label, centers []Point5D) bool {
	changed := false
	for i, p := range points {
		best := 0
		bestD := Distance5D(p, centers[0])
		for c := 1; c < len(centers); c++ {
			d := Distance5D(p, centers[c])
			if d < bestD {
				bestD = d
				best = c
			}
		}
		if labels[i] != Label(best) {
			labels[i] = Label(best)
			changed = true
		}
	}
	return changed
}

func recomputeCenters(points []Point5D, labels []Label, oldCenters []Point5D) ([]Point5D, float64) {
	sums := make([]Point5D, len(oldCenters))
	counts := make([]int, len(oldCenters))

	for i, p := range points {
		k := int(labels[i])
		sums[k].L += p.L
		sums[k].A += p.A
		sums[k].B += p.B
		sums[k].X += p.X
		sums[k].Y += p.Y
		counts[k]++
	}

	newCenters := make([]Point5D, len(oldCenters))
	var totalShift float64

	for k := range oldCenters {
		if counts[k] == 0 {
			newCenters[k] = oldCenters[k]
			continue
		}
		n := float64(counts[k])
		newCenters[k] = Point5D{
			L: sums[k].L / n, A: sums[k].A / n, B: sums[k].B / n,
			X: sums[k].X / n, Y: sums[k].Y / n,
		}
		totalShift += Distance5D(oldCenters[k], newCenters[k])
	}

	return newCenters, totalShift
}

// reseedEmptyClusters moves any center with zero members to the point
// farthest from all other centers (empty ones included), per spec.md §4.5.
func reseedEmptyClusters(points []Point5D, labels []Label, centers []Point5D) {
	counts := make([]int, len(centers))
	for _, l := range labels {
		counts[int(l)]++
	}

	for k, c := range counts {
		if c > 0 {
			continue
		}

		farIdx := -1
		farD := -1.0
		for i, p := range points {
			minD := math.Inf(1)
			for j, center := range centers {
				if j == k {
					continue
				}
				d := Distance5D(p, center)
				if d < minD {
					minD = d
				}
			}
			if minD > farD {
				farD = minD
				farIdx = i
			}
		}

		if farIdx >= 0 {
			centers[k] = points[farIdx]
		}
	}
}
