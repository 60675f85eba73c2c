package segment

import (
	"container/heap"
	"math"
)

// SNICParams mirrors SLICParams; SNIC is non-iterative so there is no
// MaxIterations knob.
type SNICParams struct {
	K           int
	Compactness float64
}

// DefaultSNICParams returns k=24, compactness=10.
func DefaultSNICParams() SNICParams {
	return SNICParams{K: 24, Compactness: 10}
}

type snicElement struct {
	col, row int
	label    int
	dist     float64
}

type snicQueue []snicElement

func (q snicQueue) Len() int            { return len(q) }
func (q snicQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q snicQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *snicQueue) Push(x interface{}) { *q = append(*q, x.(snicElement)) }
func (q *snicQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

const (
	snicUnlabeled = -1
	snicIgnored   = -2
)

// SNIC segments the image non-iteratively: a priority queue keyed by
// weighted distance from the nearest assigned neighbor, seeded from grid
// centers at distance 0, expanding 4-connected. Each pixel is assigned
// exactly once, when first popped.
func SNIC(width, height int, pixels []byte, filter Filter, p SNICParams) Model {
	g := buildPixelGrid(width, height, pixels, filter)

	spacingPx := gridSpacingPixels(width, height, p.K)
	sNorm := normalizedSpacing(width, height, spacingPx)
	m := p.Compactness
	if m <= 0 {
		m = 10
	}

	centersPx := seedCentersPx(g, spacingPx)
	if len(centersPx) == 0 {
		return Model{}
	}

	labels := make([]int, width*height)
	for idx := range labels {
		if g.masked[idx] {
			labels[idx] = snicIgnored
		} else {
			labels[idx] = snicUnlabeled
		}
	}

	runningCenters := make([]Point5D, len(centersPx))
	runningCounts := make([]int, len(centersPx))

	pq := &snicQueue{}
	heap.Init(pq)

	for i, cp := range centersPx {
		col, row := cp[0], cp[1]
		if !g.valid(col, row) {
			continue
		}
		heap.Push(pq, snicElement{col: col, row: row, label: i, dist: 0})
	}

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for pq.Len() > 0 {
		el := heap.Pop(pq).(snicElement)
		idx := el.row*width + el.col

		if labels[idx] != snicUnlabeled {
			continue
		}

		labels[idx] = el.label

		n := runningCounts[el.label]
		p := g.point(el.col, el.row)
		center := runningCenters[el.label]
		newN := float64(n + 1)
		runningCenters[el.label] = Point5D{
			L: (center.L*float64(n) + p.L) / newN,
			A: (center.A*float64(n) + p.A) / newN,
			B: (center.B*float64(n) + p.B) / newN,
			X: (center.X*float64(n) + p.X) / newN,
			Y: (center.Y*float64(n) + p.Y) / newN,
		}
		runningCounts[el.label]++

		for _, d := range dirs {
			nc, nr := el.col+d[0], el.row+d[1]
			if !g.valid(nc, nr) {
				continue
			}
			nidx := nr*width + nc
			if labels[nidx] != snicUnlabeled {
				continue
			}
			np := g.point(nc, nr)
			dist := weightedDistance(np, runningCenters[el.label], m, sNorm)
			if math.IsNaN(dist) {
				continue
			}
			heap.Push(pq, snicElement{col: nc, row: nr, label: el.label, dist: dist})
		}
	}

	return buildModelFromPixelLabels(g, labels)
}
