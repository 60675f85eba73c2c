package palette

import (
	"github.com/autopalette-go/autopalette/pkg/color"
)

// Swatch is one extracted color together with its position, population, and
// ratio (spec.md §3). Immutable once constructed; owned by exactly one
// Palette.
type Swatch struct {
	color      color.Lab
	col, row   int
	population int
	ratio      float64
}

// Color returns the swatch's color in CIE L*a*b*.
func (s Swatch) Color() color.Lab { return s.color }

// Position returns the representative pixel coordinates, 0 <= col < width,
// 0 <= row < height.
func (s Swatch) Position() (col, row int) { return s.col, s.row }

// Population is the count of pixels this swatch's cluster represents.
func (s Swatch) Population() int { return s.population }

// Ratio is population / total_contributing_pixels, in (0,1].
func (s Swatch) Ratio() float64 { return s.ratio }

// RGB255 returns 8-bit sRGB components.
func (s Swatch) RGB255() (r, g, b uint8) { return s.color.RGB255() }

// Hex returns the "#rrggbb" form.
func (s Swatch) Hex() string { return s.color.Hex() }

// Packed returns the 0xRRGGBB packed integer form.
func (s Swatch) Packed() uint32 { return s.color.Packed() }

// HSL returns hue in degrees and saturation/lightness in [0,1].
func (s Swatch) HSL() (h, sat, l float64) { return s.color.HSL() }

// HSV returns hue in degrees and saturation/value in [0,1].
func (s Swatch) HSV() (h, sat, v float64) { return s.color.HSV() }

// CMYK returns components in [0,1].
func (s Swatch) CMYK() (c, m, y, k float64) { return s.color.CMYK() }

// LCh returns the polar form of the swatch's L*a*b* color.
func (s Swatch) LCh() color.LCh { return s.color.ToLCh() }

// Oklab returns Bjorn Ottosson's Oklab coordinates.
func (s Swatch) Oklab() (l, a, b float64) { return s.color.Oklab() }

// Oklch returns the polar form of Oklab.
func (s Swatch) Oklch() (l, c, h float64) { return s.color.Oklch() }

// ANSI16 returns the nearest of the 16 standard terminal color codes.
func (s Swatch) ANSI16() int { return s.color.ANSI16() }

// ANSI256 returns the nearest of the 256 xterm color codes.
func (s Swatch) ANSI256() int { return s.color.ANSI256() }
