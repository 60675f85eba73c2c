package palette

import "github.com/autopalette-go/autopalette/pkg/color"

// selectDiverse runs weighted farthest-point sampling over candidates:
// pick the highest-score candidate first, then repeatedly pick the one
// maximizing score * min-distance-to-chosen, per spec.md §4.9. weightOf
// abstracts the "score" — either a theme score or, for the un-themed
// selector, raw population.
func selectDiverse(candidates []Swatch, n int, weightOf func(Swatch) float64, applyFloor bool) []Swatch {
	type scored struct {
		s Swatch
		w float64
	}

	pool := make([]scored, 0, len(candidates))
	for _, s := range candidates {
		w := weightOf(s)
		if applyFloor && w < scoreFloor {
			continue
		}
		pool = append(pool, scored{s, w})
	}

	if len(pool) == 0 || n <= 0 {
		return nil
	}

	chosen := make([]Swatch, 0, n)

	firstIdx := 0
	for i := 1; i < len(pool); i++ {
		if pool[i].w > pool[firstIdx].w {
			firstIdx = i
		}
	}
	chosen = append(chosen, pool[firstIdx].s)
	pool = append(pool[:firstIdx], pool[firstIdx+1:]...)

	for len(chosen) < n && len(pool) > 0 {
		bestIdx := -1
		bestScore := -1.0

		for i, cand := range pool {
			minDist := minDeltaEToChosen(cand.s, chosen)
			combined := cand.w * minDist
			if combined > bestScore {
				bestScore = combined
				bestIdx = i
			}
		}

		chosen = append(chosen, pool[bestIdx].s)
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	return chosen
}

func minDeltaEToChosen(s Swatch, chosen []Swatch) float64 {
	min := -1.0
	for _, c := range chosen {
		d := color.DeltaE76(s.Color(), c.Color())
		if min < 0 || d < min {
			min = d
		}
	}
	if min < 0 {
		return 0
	}
	return min
}
