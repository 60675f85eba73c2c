package segment

import (
	"github.com/autopalette-go/autopalette/pkg/kdtree"
)

// DBSCANParams holds epsilon (5-D radius) and the core-point neighbor
// threshold. Defaults are tuned to satisfy the end-to-end scenarios in
// spec.md §8; see SPEC_FULL.md §13.6.
type DBSCANParams struct {
	Epsilon   float64
	MinPoints int
}

// DefaultDBSCANParams returns the pipeline's tuned defaults.
func DefaultDBSCANParams() DBSCANParams {
	return DBSCANParams{Epsilon: 18.0, MinPoints: 4}
}

func toKDPoints(points []Point5D) []kdtree.Point {
	kps := make([]kdtree.Point, len(points))
	for i, p := range points {
		kps[i] = p.Slice()
	}
	return kps
}

// DBSCAN runs classic density-based clustering over the 5-D point set.
// Points are iterated in index order; each unassigned core point starts a
// new cluster and BFS-expands through the neighbor graph. Border points are
// assigned to whichever cluster's expansion reaches them first, which
// depends on the KD-tree's in-order traversal (see spec.md §9).
func DBSCAN(points []Point5D, p DBSCANParams) Model {
	if len(points) == 0 {
		return Model{}
	}

	// A point set smaller than MinPoints could never hold a core point, so the
	// threshold is capped at the point count (a 1x1 image yields one cluster).
	if p.MinPoints > len(points) {
		p.MinPoints = len(points)
	}

	tree := kdtree.Build(toKDPoints(points))
	labels := make([]Label, len(points))
	for i := range labels {
		labels[i] = Unassigned
	}

	nextID := 0

	for i := range points {
		if labels[i] != Unassigned {
			continue
		}

		neighbors := tree.Within(points[i].Slice(), p.Epsilon)
		if len(neighbors) < p.MinPoints {
			labels[i] = Noise
			continue
		}

		id := Label(nextID)
		nextID++
		expandCluster(tree, points, labels, i, neighbors, id, p)
	}

	return BuildModel(points, labels)
}

// expandCluster performs the BFS expansion shared by DBSCAN and the seed
// phase of DBSCAN++: a core point is assigned, its epsilon-neighborhood is
// queued, and each neighbor is assigned (promoting prior Noise to a border
// member) with its own neighborhood enqueued if it is itself core.
func expandCluster(tree *kdtree.Tree, points []Point5D, labels []Label, seed int, seedNeighbors []int, id Label, p DBSCANParams) {
	labels[seed] = id
	queue := append([]int(nil), seedNeighbors...)

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		if labels[q] != Unassigned && labels[q] != Noise {
			continue
		}

		labels[q] = id

		qNeighbors := tree.Within(points[q].Slice(), p.Epsilon)
		if len(qNeighbors) >= p.MinPoints {
			queue = append(queue, qNeighbors...)
		}
	}
}
