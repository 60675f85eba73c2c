// Package color implements the sRGB -> linear RGB -> CIE XYZ -> CIE L*a*b*
// conversion chain used inside the extraction pipeline, plus the boundary
// conversions a Swatch exposes to callers.
package color

import "math"

// D65 reference white point, 2-degree observer.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

const (
	gammaBreak = 0.04045
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Lab is a CIE L*a*b* color under D65. L is in [0,100]; a and b are
// approximately in [-128,127].
type Lab struct {
	L, A, B float64
}

// LCh is the polar form of Lab.
type LCh struct {
	L, C, H float64
}

// RGB is sRGB with components in [0,1].
type RGB struct {
	R, G, B float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func srgbToLinear(c float64) float64 {
	c = clamp01(c)
	if c <= gammaBreak {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		c = c * 12.92
	} else {
		c = 1.055*math.Pow(c, 1.0/2.4) - 0.055
	}
	return clamp01(c)
}

// toXYZ converts sRGB (linearized internally) to CIE XYZ under D65.
func (c RGB) toXYZ() (x, y, z float64) {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	x = (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100
	y = (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100
	z = (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100
	return
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// ToLab converts an sRGB color (components in [0,1], clamped on entry) to
// CIE L*a*b* under D65.
func (c RGB) ToLab() Lab {
	x, y, z := c.toXYZ()

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// ToRGB converts L*a*b* back to sRGB, clamping the result to [0,1].
func (l Lab) ToRGB() RGB {
	fy := (l.L + 16) / 116
	fx := fy + l.A/500
	fz := fy - l.B/200

	x := labFInv(fx) * refX
	y := labFInv(fy) * refY
	z := labFInv(fz) * refZ

	x /= 100
	y /= 100
	z /= 100

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: linearToSrgb(r),
		G: linearToSrgb(g),
		B: linearToSrgb(b),
	}
}

// ToLCh converts L*a*b* to its polar form, normalizing hue to [0, 2*pi).
func (l Lab) ToLCh() LCh {
	c := math.Hypot(l.A, l.B)
	h := math.Atan2(l.B, l.A)
	if h < 0 {
		h += 2 * math.Pi
	}
	return LCh{L: l.L, C: c, H: h}
}

// ToLab converts LCh back to Cartesian L*a*b*.
func (lch LCh) ToLab() Lab {
	return Lab{
		L: lch.L,
		A: lch.C * math.Cos(lch.H),
		B: lch.C * math.Sin(lch.H),
	}
}

// DeltaE76 is the Euclidean distance in L*a*b*, used throughout the core
// pipeline as the merge criterion and inside DBSCAN's epsilon.
func DeltaE76(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// SrgbToLab is a convenience wrapper matching spec.md's srgb_to_lab(r,g,b)
// contract: inputs outside [0,1] are clamped, never rejected.
func SrgbToLab(r, g, b float64) Lab {
	return RGB{R: r, G: g, B: b}.ToLab()
}
