package palette

import "github.com/autopalette-go/autopalette/pkg/color"

// Theme is a closed sum type over the five named aesthetic themes; adding a
// theme means adding a variant and its scoring function below, per
// spec.md §9 ("theme as a function, not a subclass").
type Theme int

const (
	// Colorful favors mid-bright, chromatic swatches.
	Colorful Theme = iota
	// Vivid favors high-chroma swatches.
	Vivid
	// Muted favors low-chroma swatches at mid lightness.
	Muted
	// Light favors high-lightness swatches, ignoring chroma.
	Light
	// Dark favors low-lightness swatches, ignoring chroma.
	Dark
)

// String names the theme, used by CLI parsing/formatting.
func (t Theme) String() string {
	switch t {
	case Colorful:
		return "colorful"
	case Vivid:
		return "vivid"
	case Muted:
		return "muted"
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseTheme parses a theme name case-sensitively against the lowercase
// names above; returns ErrInvalidParameter on an unknown name.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "colorful":
		return Colorful, nil
	case "vivid":
		return Vivid, nil
	case "muted":
		return Muted, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return 0, ErrInvalidParameter
	}
}

// gaussianParam is a (mu, sigma) pair; the package-level values below hold
// the spec.md §4.8 table in one place rather than inline in Score.
type gaussianParam struct{ mu, sigma float64 }

var (
	colorfulL = gaussianParam{60, 25}
	colorfulC = gaussianParam{80, 40}
	vividL    = gaussianParam{55, 20}
	vividC    = gaussianParam{100, 30}
	mutedL    = gaussianParam{55, 20}
	mutedC    = gaussianParam{30, 20}
	lightL    = gaussianParam{85, 10}
	darkL     = gaussianParam{20, 12}
)

// Score computes a swatch's theme score in [0,1] from its LCh coordinates,
// per the Gaussian table in spec.md §4.8.
func (t Theme) Score(lch color.LCh) float64 {
	switch t {
	case Colorful:
		return color.MustGaussian(lch.L, colorfulL.mu, colorfulL.sigma) *
			color.MustGaussian(lch.C, colorfulC.mu, colorfulC.sigma)
	case Vivid:
		return color.MustGaussian(lch.L, vividL.mu, vividL.sigma) *
			color.MustGaussian(lch.C, vividC.mu, vividC.sigma)
	case Muted:
		return color.MustGaussian(lch.L, mutedL.mu, mutedL.sigma) *
			color.MustGaussian(lch.C, mutedC.mu, mutedC.sigma)
	case Light:
		return color.MustGaussian(lch.L, lightL.mu, lightL.sigma)
	case Dark:
		return color.MustGaussian(lch.L, darkL.mu, darkL.sigma)
	default:
		return 0
	}
}

// scoreFloor filters candidates whose score is visually irrelevant to the
// theme (spec.md §4.9 step 1).
const scoreFloor = 0.01
