package segment

import "github.com/autopalette-go/autopalette/pkg/color"

// Encode turns a row-major RGBA pixel buffer into the sequence of Point5D
// for every pixel the filter accepts. Pixel (col,row) with RGBA (R,G,B,A)
// becomes (L,a,b,(col+1)/width,(row+1)/height); (L,a,b) = srgb_to_lab(R/255,
// G/255, B/255). Downscaling (if any) happens before this call, at the
// pkg/imagedata layer; Encode always works against whatever width/height and
// pixels it is given and reports positions in that space.
func Encode(width, height int, pixels []byte, filter Filter) []Point5D {
	if filter == nil {
		filter = DefaultFilter
	}

	points := make([]Point5D, 0, width*height)

	for row := 0; row < height; row++ {
		base := row * width * 4
		for col := 0; col < width; col++ {
			off := base + col*4
			r, g, b, a := pixels[off], pixels[off+1], pixels[off+2], pixels[off+3]
			if !filter(r, g, b, a) {
				continue
			}

			lab := color.SrgbToLab(float64(r)/255, float64(g)/255, float64(b)/255)
			points = append(points, Point5D{
				L: lab.L,
				A: lab.A,
				B: lab.B,
				X: float64(col+1) / float64(width),
				Y: float64(row+1) / float64(height),
			})
		}
	}

	return points
}

// DenormalizePosition converts a point's normalized (x,y) back to integer
// pixel coordinates in an image of the given width/height, per spec.md
// §4.7: col = round(x*width) - 1, clamped to [0,width-1] (symmetric for
// row).
func DenormalizePosition(p Point5D, width, height int) (col, row int) {
	col = clampInt(roundInt(p.X*float64(width))-1, 0, width-1)
	row = clampInt(roundInt(p.Y*float64(height))-1, 0, height-1)
	return
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
