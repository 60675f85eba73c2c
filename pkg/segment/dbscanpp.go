package segment

import (
	"math"

	"github.com/autopalette-go/autopalette/pkg/kdtree"
)

// DBSCANPPParams extends DBSCANParams with the seed sub-sampling ratio rho.
type DBSCANPPParams struct {
	DBSCANParams
	Rho float64
}

// DefaultDBSCANPPParams returns rho=0.1 over the base DBSCAN defaults.
func DefaultDBSCANPPParams() DBSCANPPParams {
	return DBSCANPPParams{DBSCANParams: DefaultDBSCANParams(), Rho: 0.1}
}

// DBSCANPP runs core-point discovery only on a uniformly sub-sampled seed
// set (step = round(1/rho), matching the original's step_by subsampling),
// then assigns every non-seed point to the nearest core seed within
// epsilon. This trades a small amount of border accuracy for
// O(rho*N log N) core discovery versus O(N log N) for full DBSCAN.
func DBSCANPP(points []Point5D, p DBSCANPPParams) Model {
	if len(points) == 0 {
		return Model{}
	}
	if p.Rho <= 0 || p.Rho > 1 {
		p.Rho = 0.1
	}

	step := int(math.Round(1 / p.Rho))
	if step < 1 {
		step = 1
	}

	seedIndices := make([]int, 0, len(points)/step+1)
	for i := 0; i < len(points); i += step {
		seedIndices = append(seedIndices, i)
	}

	tree := kdtree.Build(toKDPoints(points))
	labels := make([]Label, len(points))
	for i := range labels {
		labels[i] = Unassigned
	}

	nextID := 0
	coreSeeds := make([]int, 0, len(seedIndices))

	for _, i := range seedIndices {
		if labels[i] != Unassigned {
			continue
		}

		neighbors := tree.Within(points[i].Slice(), p.Epsilon)
		if len(neighbors) < p.MinPoints {
			labels[i] = Noise
			continue
		}

		coreSeeds = append(coreSeeds, i)
		id := Label(nextID)
		nextID++
		expandCluster(tree, points, labels, i, neighbors, id, p.DBSCANParams)
	}

	assignByNearestCoreSeed(points, labels, coreSeeds, p.Epsilon)

	return BuildModel(points, labels)
}

// assignByNearestCoreSeed labels every point still Unassigned or Noise by
// the label of the nearest core seed within epsilon, matching spec.md
// §4.4's "non-seed points are classified by nearest-seed assignment among
// core seeds within epsilon."
func assignByNearestCoreSeed(points []Point5D, labels []Label, coreSeeds []int, epsilon float64) {
	if len(coreSeeds) == 0 {
		for i, l := range labels {
			if l == Unassigned {
				labels[i] = Noise
			}
		}
		return
	}

	seedPoints := make([]kdtree.Point, len(coreSeeds))
	for i, idx := range coreSeeds {
		seedPoints[i] = points[idx].Slice()
	}
	seedTree := kdtree.Build(seedPoints)

	for i, l := range labels {
		if l.IsCluster() {
			continue
		}

		nearest := seedTree.Nearest(points[i].Slice())
		if nearest < 0 {
			labels[i] = Noise
			continue
		}

		seedIdx := coreSeeds[nearest]
		if Distance5D(points[i], points[seedIdx]) <= epsilon {
			labels[i] = labels[seedIdx]
		} else {
			labels[i] = Noise
		}
	}
}
