package cmd

import (
	"github.com/spf13/cobra"

	"github.com/autopalette-go/autopalette/internal/loader"
	"github.com/autopalette-go/autopalette/pkg/palette"
	"github.com/autopalette-go/autopalette/pkg/paletteconfig"
)

func init() {
	extractCmd.Flags().StringP("algorithm", "a", "dbscan", "segmentation algorithm: dbscan, dbscan++, kmeans, slic, snic")
	extractCmd.Flags().StringP("theme", "t", "", "aesthetic theme: colorful, vivid, muted, light, dark (default: un-themed)")
	extractCmd.Flags().IntP("count", "n", 5, "number of swatches to return")
	extractCmd.Flags().StringP("color-space", "c", "hex", "output color space: hex, rgb, hsl, hsv, cmyk, lab, lch, oklab, oklch, ansi16, ansi256, packed")
	extractCmd.Flags().StringP("output-format", "o", "text", "output format: text, json, table")
	extractCmd.Flags().Bool("no-resize", false, "disable downscaling large images before extraction")
	extractCmd.Flags().Bool("clipboard", false, "read image bytes from the clipboard")

	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <path>",
	Short: "Extracts a ranked palette of prominent colors from an image",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	fromClipboard, _ := cmd.Flags().GetBool("clipboard")
	if fromClipboard {
		return fail(13, "clipboard input is not implemented")
	}

	if len(args) != 1 {
		return fail(10, "exactly one image path is required")
	}

	algoName, _ := cmd.Flags().GetString("algorithm")
	algo, err := palette.ParseAlgorithm(algoName)
	if err != nil {
		return fail(11, "unknown algorithm %q: %w", algoName, err)
	}

	themeName, _ := cmd.Flags().GetString("theme")
	noResize, _ := cmd.Flags().GetBool("no-resize")
	count, _ := cmd.Flags().GetInt("count")
	colorSpace, _ := cmd.Flags().GetString("color-space")
	outputFormat, _ := cmd.Flags().GetString("output-format")

	tunables, err := paletteconfig.Load(configPath)
	if err != nil {
		return fail(12, "unable to load configuration: %w", err)
	}

	opts := palette.DefaultOptions()
	tunables.Apply(&opts)
	opts.Algorithm = algo
	opts.Resize = !noResize

	p, err := loader.ExtractPalette(args[0], opts)
	if err != nil {
		return fail(14, err)
	}

	var swatches []palette.Swatch
	if themeName == "" {
		swatches = p.FindSwatches(count)
	} else {
		theme, err := palette.ParseTheme(themeName)
		if err != nil {
			return fail(15, "unknown theme %q: %w", themeName, err)
		}
		swatches = p.FindSwatchesWithTheme(count, theme)
	}

	return writeSwatches(cmd.OutOrStdout(), swatches, colorSpace, outputFormat)
}
