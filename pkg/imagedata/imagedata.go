// Package imagedata wraps a decoded raster image as the RGBA byte buffer
// the extraction pipeline consumes, matching spec.md §6's
// ImageData.new(width, height, rgba_bytes) contract.
package imagedata

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrInvalidDimensions is returned when width/height do not match the
// buffer length, or either is zero.
var ErrInvalidDimensions = errors.New("imagedata: invalid dimensions")

// ErrUnsupportedFormat is returned when the byte stream could not be
// decoded as any registered raster format.
var ErrUnsupportedFormat = errors.New("imagedata: unsupported format")

// ImageData is validated width/height plus a row-major RGBA byte buffer
// (len == width*height*4).
type ImageData struct {
	Width, Height int
	Pixels        []byte
}

// New validates and wraps a pre-decoded RGBA buffer.
func New(width, height int, pixels []byte) (*ImageData, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, ErrInvalidDimensions
	}
	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// Decode reads and decodes an image from r, trying every format this module
// registers (PNG/JPEG/GIF plus BMP/TIFF via golang.org/x/image).
func Decode(r *bytes.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedFormat, err.Error())
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image.Image into row-major RGBA bytes.
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &ImageData{Width: width, Height: height, Pixels: rgba.Pix}
}

// Resize downscales the image so max(width,height) <= maxDim, preserving
// aspect ratio, and returns a new ImageData. Callers that denormalize
// fractional positions computed against this resized copy must do so
// against the original dimensions, not these — resizing changes encoding
// precision/cost, not the coordinate space positions are reported in.
func (d *ImageData) Resize(maxDim uint) *ImageData {
	if maxDim == 0 {
		return d
	}
	if uint(d.Width) <= maxDim && uint(d.Height) <= maxDim {
		return d
	}

	img := &image.RGBA{
		Pix:    d.Pixels,
		Stride: d.Width * 4,
		Rect:   image.Rect(0, 0, d.Width, d.Height),
	}

	var targetW, targetH uint
	if d.Width >= d.Height {
		targetW = maxDim
	} else {
		targetH = maxDim
	}

	resized := resize.Resize(targetW, targetH, img, resize.Lanczos3)
	return FromImage(resized)
}

func init() {
	// Register the extra decoders spec.md leaves as an external
	// collaborator's concern; PNG/JPEG/GIF are already registered by their
	// stdlib packages' own init().
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}
