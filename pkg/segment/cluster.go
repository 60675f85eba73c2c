package segment

// Label is a point's cluster assignment: a non-negative cluster id, Noise,
// or Unassigned.
type Label int

const (
	// Unassigned marks a point no algorithm has looked at yet.
	Unassigned Label = -2
	// Noise marks a point classified as not belonging to any cluster.
	Noise Label = -1
)

// IsCluster reports whether the label names an actual cluster (k >= 0).
func (l Label) IsCluster() bool { return l >= 0 }

// Cluster is one segmentation result: a centroid in 5-D and the count of
// contributing points. Its pixel position is derived from the centroid's
// (x,y) by DenormalizePosition; it is not stored here.
type Cluster struct {
	Centroid   Point5D
	Population int
}

// Model is the common representation every algorithm in this package
// produces: the original points, their labels (parallel arrays), and the
// resulting clusters in ascending label-id order. Ids with no members are
// skipped, so a cluster's index need not equal its label id.
type Model struct {
	Points  []Point5D
	Labels  []Label
	Cluster []Cluster
}

// BuildModel derives cluster centroids/populations from a fully-labeled
// point set. Points labeled Noise or Unassigned are discarded, matching
// spec.md §4.4's "Noise points are discarded."
func BuildModel(points []Point5D, labels []Label) Model {
	maxID := -1
	for _, l := range labels {
		if l.IsCluster() && int(l) > maxID {
			maxID = int(l)
		}
	}

	if maxID < 0 {
		return Model{Points: points, Labels: labels}
	}

	sums := make([]Point5D, maxID+1)
	counts := make([]int, maxID+1)

	for i, l := range labels {
		if !l.IsCluster() {
			continue
		}
		p := points[i]
		k := int(l)
		sums[k].L += p.L
		sums[k].A += p.A
		sums[k].B += p.B
		sums[k].X += p.X
		sums[k].Y += p.Y
		counts[k]++
	}

	clusters := make([]Cluster, 0, maxID+1)
	for k := 0; k <= maxID; k++ {
		if counts[k] == 0 {
			continue
		}
		n := float64(counts[k])
		clusters = append(clusters, Cluster{
			Centroid: Point5D{
				L: sums[k].L / n,
				A: sums[k].A / n,
				B: sums[k].B / n,
				X: sums[k].X / n,
				Y: sums[k].Y / n,
			},
			Population: counts[k],
		})
	}

	return Model{Points: points, Labels: labels, Cluster: clusters}
}
