package palette

// Palette is an ordered collection of swatches for one image, sorted by
// descending population (stable tie-break on insertion order). Selection
// operations produce new, shorter lists without mutating the palette.
type Palette struct {
	swatches []Swatch
}

// Swatches returns the full, unordered-by-theme swatch list (already sorted
// by descending population).
func (p *Palette) Swatches() []Swatch {
	out := make([]Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int { return len(p.swatches) }

// FindSwatches returns up to n swatches via un-themed, population-weighted
// diversity sampling (spec.md §6, §4.9). Never returns more than
// min(n, p.Len()) swatches, never duplicates.
func (p *Palette) FindSwatches(n int) []Swatch {
	return selectDiverse(p.swatches, n, func(s Swatch) float64 {
		return float64(s.Population())
	}, false)
}

// FindSwatchesWithTheme returns up to n swatches ranked by theme score and
// perceptual diversity (spec.md §4.9, §6). If every candidate scores below
// the floor, returns an empty list rather than falling back to
// un-themed selection (spec.md §9 open question, resolved).
func (p *Palette) FindSwatchesWithTheme(n int, theme Theme) []Swatch {
	return selectDiverse(p.swatches, n, func(s Swatch) float64 {
		return theme.Score(s.LCh())
	}, true)
}
