package palette

import (
	"sort"

	"github.com/autopalette-go/autopalette/pkg/color"
	"github.com/autopalette-go/autopalette/pkg/segment"
)

// DefaultMergeThreshold is tau_merge in ΔE*76 units (spec.md §4.7 default).
const DefaultMergeThreshold = 6.0

type candidate struct {
	c          color.Lab
	col, row   int
	population int
}

// AssembleSwatches turns a cluster model into swatches, merging clusters
// whose centroids are within tauMerge in ΔE*76, and returns them sorted by
// descending population (spec.md §4.7).
func AssembleSwatches(model segment.Model, width, height int, tauMerge float64) []Swatch {
	if len(model.Cluster) == 0 {
		return nil
	}

	candidates := make([]*candidate, len(model.Cluster))
	for i, c := range model.Cluster {
		col, row := segment.DenormalizePosition(c.Centroid, width, height)
		candidates[i] = &candidate{
			c:          color.Lab{L: c.Centroid.L, A: c.Centroid.A, B: c.Centroid.B},
			col:        col,
			row:        row,
			population: c.Population,
		}
	}

	merged := mergeCandidates(candidates, tauMerge)

	total := 0
	for _, c := range merged {
		total += c.population
	}

	swatches := make([]Swatch, len(merged))
	for i, c := range merged {
		ratio := 0.0
		if total > 0 {
			ratio = float64(c.population) / float64(total)
		}
		swatches[i] = Swatch{color: c.c, col: c.col, row: c.row, population: c.population, ratio: ratio}
	}

	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].population > swatches[j].population
	})

	return swatches
}

// mergeCandidates repeatedly merges the closest pair of remaining
// candidates while their ΔE is below tauMerge. A naive O(n^2) nearest-pair
// scan is used since the candidate count here is the (small) post-cluster
// count, not the pixel count.
func mergeCandidates(candidates []*candidate, tauMerge float64) []*candidate {
	for {
		if len(candidates) < 2 {
			return candidates
		}

		bestI, bestJ := -1, -1
		bestD := tauMerge

		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				d := color.DeltaE76(candidates[i].c, candidates[j].c)
				if d < bestD {
					bestD = d
					bestI, bestJ = i, j
				}
			}
		}

		if bestI < 0 {
			return candidates
		}

		merged := mergeTwo(candidates[bestI], candidates[bestJ])

		next := make([]*candidate, 0, len(candidates)-1)
		for i, c := range candidates {
			if i == bestI || i == bestJ {
				continue
			}
			next = append(next, c)
		}
		next = append(next, merged)
		candidates = next
	}
}

// mergeTwo combines two candidates: color is the population-weighted
// average of their Lab centroids, position is the more populous swatch's,
// population is the sum.
func mergeTwo(a, b *candidate) *candidate {
	total := a.population + b.population
	wa := float64(a.population) / float64(total)
	wb := float64(b.population) / float64(total)

	merged := &candidate{
		c: color.Lab{
			L: a.c.L*wa + b.c.L*wb,
			A: a.c.A*wa + b.c.A*wb,
			B: a.c.B*wa + b.c.B*wb,
		},
		population: total,
	}

	if a.population >= b.population {
		merged.col, merged.row = a.col, a.row
	} else {
		merged.col, merged.row = b.col, b.row
	}

	return merged
}
