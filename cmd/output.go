package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/autopalette-go/autopalette/pkg/palette"
)

// swatchView is the CLI's rendering of one swatch, independent of the
// pipeline's internal Swatch type, so JSON field names are a stable
// contract regardless of library-side refactors.
type swatchView struct {
	Color      string  `json:"color"`
	Col        int     `json:"col"`
	Row        int     `json:"row"`
	Population int     `json:"population"`
	Ratio      float64 `json:"ratio"`
}

func formatColor(s palette.Swatch, colorSpace string) string {
	switch colorSpace {
	case "rgb":
		r, g, b := s.RGB255()
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	case "hsl":
		h, sat, l := s.HSL()
		return fmt.Sprintf("hsl(%.1f,%.1f%%,%.1f%%)", h, sat*100, l*100)
	case "hsv":
		h, sat, v := s.HSV()
		return fmt.Sprintf("hsv(%.1f,%.1f%%,%.1f%%)", h, sat*100, v*100)
	case "cmyk":
		c, m, y, k := s.CMYK()
		return fmt.Sprintf("cmyk(%.1f%%,%.1f%%,%.1f%%,%.1f%%)", c*100, m*100, y*100, k*100)
	case "lab":
		l := s.Color()
		return fmt.Sprintf("lab(%.2f,%.2f,%.2f)", l.L, l.A, l.B)
	case "lch":
		lch := s.LCh()
		return fmt.Sprintf("lch(%.2f,%.2f,%.2f)", lch.L, lch.C, lch.H)
	case "oklab":
		l, a, b := s.Oklab()
		return fmt.Sprintf("oklab(%.4f,%.4f,%.4f)", l, a, b)
	case "oklch":
		l, c, h := s.Oklch()
		return fmt.Sprintf("oklch(%.4f,%.4f,%.4f)", l, c, h)
	case "ansi16":
		return fmt.Sprintf("%d", s.ANSI16())
	case "ansi256":
		return fmt.Sprintf("%d", s.ANSI256())
	case "packed":
		return fmt.Sprintf("0x%06X", s.Packed())
	default: // hex
		return s.Hex()
	}
}

func writeSwatches(out io.Writer, swatches []palette.Swatch, colorSpace, format string) error {
	views := make([]swatchView, len(swatches))
	for i, s := range swatches {
		col, row := s.Position()
		views[i] = swatchView{
			Color:      formatColor(s, colorSpace),
			Col:        col,
			Row:        row,
			Population: s.Population(),
			Ratio:      s.Ratio(),
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "table":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "COLOR\tPOSITION\tPOPULATION\tRATIO")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t(%d,%d)\t%d\t%.4f\n", v.Color, v.Col, v.Row, v.Population, v.Ratio)
		}
		return tw.Flush()
	default: // text
		for _, v := range views {
			fmt.Fprintf(out, "%s (%d,%d) population=%d ratio=%.4f\n", v.Color, v.Col, v.Row, v.Population, v.Ratio)
		}
		return nil
	}
}
