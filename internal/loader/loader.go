// Package loader decodes an on-disk image and runs the extraction pipeline
// against it, the role internal/image_matcher/image_matcher.go played in
// the teacher before prominentcolor was superseded by pkg/palette.
package loader

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/autopalette-go/autopalette/pkg/imagedata"
	"github.com/autopalette-go/autopalette/pkg/palette"
)

// Load decodes the file at pathname into an ImageData.
func Load(pathname string) (*imagedata.ImageData, error) {
	raw, err := os.ReadFile(pathname)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read %s", pathname)
	}

	img, err := imagedata.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "can't decode %s", pathname)
	}

	return img, nil
}

// ExtractPalette loads pathname and runs the extraction pipeline against
// it, returning the resulting Palette.
func ExtractPalette(pathname string, opts palette.Options) (*palette.Palette, error) {
	img, err := Load(pathname)
	if err != nil {
		return nil, err
	}

	p, err := palette.Extract(img, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "can't extract palette from %s", pathname)
	}

	return p, nil
}
