package palette

import (
	"sort"

	"github.com/autopalette-go/autopalette/pkg/imagedata"
	"github.com/autopalette-go/autopalette/pkg/segment"
)

// defaultResizeMaxDim caps the longest edge fed to the encoder when
// Options.Resize is true, matching spec.md §4.2's "encoder MAY downscale
// large images before encoding."
const defaultResizeMaxDim = 512

// Extract runs the full pipeline (spec.md §2 data flow): FeatureEncoder ->
// segmentation algorithm -> ClusterModel -> SwatchAssembler -> Palette.
// It never panics on well-formed input and never returns EmptyInput as an
// error: zero contributing points yields an empty, valid Palette.
func Extract(img *imagedata.ImageData, opts Options) (*Palette, error) {
	working := img
	if opts.Resize {
		working = img.Resize(defaultResizeMaxDim)
	}

	filter := opts.Filter
	if filter == nil {
		filter = segment.DefaultFilter
	}

	tauMerge := opts.MergeThreshold
	if tauMerge <= 0 {
		tauMerge = DefaultMergeThreshold
	}

	var model segment.Model

	switch opts.Algorithm {
	case DBSCAN:
		if opts.DBSCAN.Epsilon <= 0 {
			return nil, ErrInvalidParameter
		}
		points := segment.Encode(working.Width, working.Height, working.Pixels, filter)
		if len(points) == 0 {
			return &Palette{}, nil
		}
		model = segment.DBSCAN(points, opts.DBSCAN)
	case DBSCANPP:
		if opts.DBSCANPP.Epsilon <= 0 {
			return nil, ErrInvalidParameter
		}
		points := segment.Encode(working.Width, working.Height, working.Pixels, filter)
		if len(points) == 0 {
			return &Palette{}, nil
		}
		model = segment.DBSCANPP(points, opts.DBSCANPP)
	case KMeans:
		points := segment.Encode(working.Width, working.Height, working.Pixels, filter)
		if len(points) == 0 {
			return &Palette{}, nil
		}
		model = segment.KMeans(points, opts.KMeans)
	case SLIC:
		model = segment.SLIC(working.Width, working.Height, working.Pixels, filter, opts.SLIC)
	case SNIC:
		model = segment.SNIC(working.Width, working.Height, working.Pixels, filter, opts.SNIC)
	default:
		return nil, ErrInvalidParameter
	}

	// Point5D's x,y are fractional positions in (0,1], invariant to the
	// encoder's working dimensions; denormalizing against the *original*
	// width/height is what keeps spec.md §4.2's "positions always within
	// the original dimensions" contract even when Resize downscaled.
	swatches := AssembleSwatches(model, img.Width, img.Height, tauMerge)

	if opts.MaxSwatches > 0 && len(swatches) > opts.MaxSwatches {
		sort.SliceStable(swatches, func(i, j int) bool {
			return swatches[i].Population() > swatches[j].Population()
		})
		swatches = swatches[:opts.MaxSwatches]
	}

	return &Palette{swatches: swatches}, nil
}
