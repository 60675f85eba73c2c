package color

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch colors are produced internally in L*a*b*; this file is the boundary
// layer spec.md §6 calls out as "color-space conversion between output
// encodings" — the part of the system that may lean on an external library.

func (l Lab) toColorful() colorful.Color {
	rgb := l.ToRGB()
	return colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}
}

// RGB255 returns 8-bit sRGB components.
func (l Lab) RGB255() (r, g, b uint8) {
	return l.toColorful().Clamped().RGB255()
}

// Hex returns the lowercase "#rrggbb" form.
func (l Lab) Hex() string {
	return l.toColorful().Clamped().Hex()
}

// Packed returns the 0xRRGGBB packed integer form.
func (l Lab) Packed() uint32 {
	r, g, b := l.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// HSL returns hue in degrees [0,360), saturation and lightness in [0,1].
func (l Lab) HSL() (h, s, ll float64) {
	return l.toColorful().Clamped().Hsl()
}

// HSV returns hue in degrees [0,360), saturation and value in [0,1].
func (l Lab) HSV() (h, s, v float64) {
	return l.toColorful().Clamped().Hsv()
}

// CMYK returns components in [0,1].
func (l Lab) CMYK() (c, m, y, k float64) {
	r, g, b := l.toColorful().Clamped().RGB255()
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	k = 1 - math.Max(rf, math.Max(gf, bf))
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - rf - k) / (1 - k)
	m = (1 - gf - k) / (1 - k)
	y = (1 - bf - k) / (1 - k)
	return
}

// Oklab constants, Bjorn Ottosson's formulation.
var (
	oklabM1 = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	oklabM2 = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
)

// Oklab returns (L, a, b) in Bjorn Ottosson's Oklab space, not this
// package's CIE L*a*b*.
func (l Lab) Oklab() (L, a, b float64) {
	rgb := l.ToRGB()
	lr := srgbToLinear(rgb.R)
	lg := srgbToLinear(rgb.G)
	lb := srgbToLinear(rgb.B)

	lc := oklabM1[0][0]*lr + oklabM1[0][1]*lg + oklabM1[0][2]*lb
	mc := oklabM1[1][0]*lr + oklabM1[1][1]*lg + oklabM1[1][2]*lb
	sc := oklabM1[2][0]*lr + oklabM1[2][1]*lg + oklabM1[2][2]*lb

	lc, mc, sc = math.Cbrt(lc), math.Cbrt(mc), math.Cbrt(sc)

	L = oklabM2[0][0]*lc + oklabM2[0][1]*mc + oklabM2[0][2]*sc
	a = oklabM2[1][0]*lc + oklabM2[1][1]*mc + oklabM2[1][2]*sc
	b = oklabM2[2][0]*lc + oklabM2[2][1]*mc + oklabM2[2][2]*sc
	return
}

// Oklch returns the polar form of Oklab.
func (l Lab) Oklch() (L, c, h float64) {
	ol, oa, ob := l.Oklab()
	c = math.Hypot(oa, ob)
	h = math.Atan2(ob, oa)
	if h < 0 {
		h += 2 * math.Pi
	}
	return ol, c, h
}

// ansi16Palette holds the 16 standard ANSI colors in sRGB.
var ansi16Palette = [16]RGB{
	{0, 0, 0}, {0.5, 0, 0}, {0, 0.5, 0}, {0.5, 0.5, 0},
	{0, 0, 0.5}, {0.5, 0, 0.5}, {0, 0.5, 0.5}, {0.75, 0.75, 0.75},
	{0.5, 0.5, 0.5}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// ANSI16 returns the nearest of the 16 standard terminal color codes.
func (l Lab) ANSI16() int {
	return nearestPaletteIndex(l, ansi16Palette[:])
}

// ANSI256 returns the nearest of the 256 xterm color codes (16 standard +
// 216-cube + 24-grayscale).
func (l Lab) ANSI256() int {
	best := -1
	bestD := math.Inf(1)
	for i := 0; i < 256; i++ {
		c := ansi256Color(i)
		d := DeltaE76(l, c.ToLab())
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

func nearestPaletteIndex(l Lab, palette []RGB) int {
	best := -1
	bestD := math.Inf(1)
	target := l
	for i, c := range palette {
		d := DeltaE76(target, c.ToLab())
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

func ansi256Color(i int) RGB {
	if i < 16 {
		return ansi16Palette[i]
	}
	if i < 232 {
		i -= 16
		levels := [6]float64{0, 95.0 / 255, 135.0 / 255, 175.0 / 255, 215.0 / 255, 1}
		r := levels[(i/36)%6]
		g := levels[(i/6)%6]
		b := levels[i%6]
		return RGB{r, g, b}
	}
	gray := 8 + (i-232)*10
	v := float64(gray) / 255
	return RGB{v, v, v}
}

// ParseHex parses a "#rrggbb" or "rrggbb" string into Lab.
func ParseHex(s string) (Lab, error) {
	c, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return Lab{}, fmt.Errorf("color: %w", err)
	}
	return RGB{R: c.R, G: c.G, B: c.B}.ToLab(), nil
}

func normalizeHex(s string) string {
	if len(s) > 0 && s[0] != '#' {
		return "#" + s
	}
	return s
}
