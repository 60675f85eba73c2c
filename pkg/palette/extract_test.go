package palette

import (
	"math"
	"testing"

	"github.com/autopalette-go/autopalette/pkg/imagedata"
)

func solidImage(w, h int, r, g, b, a byte) *imagedata.ImageData {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3] = r, g, b, a
	}
	img, err := imagedata.New(w, h, buf)
	if err != nil {
		panic(err)
	}
	return img
}

func quadrantImage() *imagedata.ImageData {
	w, h := 64, 64
	buf := make([]byte, w*h*4)
	colors := map[[2]bool][4]byte{
		{false, false}: {0xFF, 0, 0, 0xFF},    // TL red
		{true, false}:  {0, 0xFF, 0, 0xFF},    // TR green
		{false, true}:  {0, 0, 0xFF, 0xFF},    // BL blue
		{true, true}:   {0xFF, 0xFF, 0, 0xFF}, // BR yellow
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			key := [2]bool{col >= w/2, row >= h/2}
			c := colors[key]
			off := (row*w + col) * 4
			buf[off], buf[off+1], buf[off+2], buf[off+3] = c[0], c[1], c[2], c[3]
		}
	}
	img, _ := imagedata.New(w, h, buf)
	return img
}

func TestExtractSolidRed4x4(t *testing.T) {
	img := solidImage(4, 4, 0xFF, 0, 0, 0xFF)
	opts := DefaultOptions()
	opts.Resize = false

	p, err := Extract(img, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("expected 1 swatch, got %d", p.Len())
	}

	s := p.Swatches()[0]
	if s.Population() != 16 {
		t.Errorf("expected population 16, got %d", s.Population())
	}
	if math.Abs(s.Ratio()-1.0) > 1e-6 {
		t.Errorf("expected ratio ~1.0, got %f", s.Ratio())
	}

	lab := s.Color()
	if math.Abs(lab.L-53.24) > 1.5 || math.Abs(lab.A-80.09) > 1.5 || math.Abs(lab.B-67.20) > 1.5 {
		t.Errorf("unexpected Lab for pure red: %+v", lab)
	}
}

func TestExtractFourQuadrants(t *testing.T) {
	img := quadrantImage()
	opts := DefaultOptions()
	opts.Resize = false

	p, err := Extract(img, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("expected 4 swatches, got %d", p.Len())
	}

	for _, s := range p.Swatches() {
		if s.Population() != 1024 {
			t.Errorf("expected population 1024, got %d", s.Population())
		}
		if math.Abs(s.Ratio()-0.25) > 1e-6 {
			t.Errorf("expected ratio ~0.25, got %f", s.Ratio())
		}
	}
}

func TestExtractAlphaFilterScenario(t *testing.T) {
	w, h := 100, 100
	buf := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			off := (row*w + col) * 4
			if col < w/2 {
				// transparent left half
				continue
			}
			buf[off], buf[off+1], buf[off+2], buf[off+3] = 0x5E, 0xCC, 0xFD, 0xFF
		}
	}
	img, _ := imagedata.New(w, h, buf)

	opts := DefaultOptions()
	opts.Resize = false
	p, err := Extract(img, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("expected 1 swatch, got %d", p.Len())
	}
	s := p.Swatches()[0]
	if s.Population() != 5000 {
		t.Errorf("expected population 5000, got %d", s.Population())
	}
	if s.Hex() != "#5eccfd" {
		t.Errorf("expected #5eccfd, got %s", s.Hex())
	}
}

func TestExtractFullyTransparentYieldsEmptyPalette(t *testing.T) {
	img := solidImage(4, 4, 0, 0, 0, 0)
	opts := DefaultOptions()
	opts.Resize = false

	p, err := Extract(img, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("expected empty palette, got %d swatches", p.Len())
	}
	if got := p.FindSwatches(5); len(got) != 0 {
		t.Errorf("expected FindSwatches(5) to be empty, got %d", len(got))
	}
}

func TestExtract1x1Image(t *testing.T) {
	img := solidImage(1, 1, 10, 20, 30, 255)
	opts := DefaultOptions()
	opts.Resize = false

	p, err := Extract(img, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("expected exactly 1 swatch, got %d", p.Len())
	}
}

func TestFindSwatchesNeverExceedsRequestOrPaletteSize(t *testing.T) {
	img := quadrantImage()
	opts := DefaultOptions()
	opts.Resize = false
	p, _ := Extract(img, opts)

	got := p.FindSwatches(2)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}

	got = p.FindSwatches(100)
	if len(got) != p.Len() {
		t.Fatalf("expected %d, got %d", p.Len(), len(got))
	}
}

func TestFindSwatchesFirstResultIsHighestPopulation(t *testing.T) {
	img := quadrantImage()
	opts := DefaultOptions()
	opts.Resize = false
	p, _ := Extract(img, opts)

	got := p.FindSwatches(4)
	for _, s := range got[1:] {
		if s.Population() > got[0].Population() {
			t.Errorf("expected first result to have highest population")
		}
	}
}

func TestThemeLightAndDarkSelection(t *testing.T) {
	w, h := 5, 1
	hexes := []string{"#6DE1D2", "#F7CFD8", "#FF6F61", "#3F4F44", "#210F37"}
	buf := make([]byte, w*h*4)
	for i, hx := range hexes {
		var r, g, b uint8
		switch hx {
		case "#6DE1D2":
			r, g, b = 0x6D, 0xE1, 0xD2
		case "#F7CFD8":
			r, g, b = 0xF7, 0xCF, 0xD8
		case "#FF6F61":
			r, g, b = 0xFF, 0x6F, 0x61
		case "#3F4F44":
			r, g, b = 0x3F, 0x4F, 0x44
		case "#210F37":
			r, g, b = 0x21, 0x0F, 0x37
		}
		off := i * 4
		buf[off], buf[off+1], buf[off+2], buf[off+3] = r, g, b, 0xFF
	}
	img, _ := imagedata.New(w, h, buf)

	opts := DefaultOptions()
	opts.Resize = false
	opts.Algorithm = KMeans
	opts.KMeans.K = 5
	p, err := Extract(img, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	light := p.FindSwatchesWithTheme(3, Light)
	if len(light) == 0 {
		t.Fatal("expected non-empty light theme result")
	}

	dark := p.FindSwatchesWithTheme(3, Dark)
	if len(dark) == 0 {
		t.Fatal("expected non-empty dark theme result")
	}

	if light[0].Color().L < dark[0].Color().L {
		t.Errorf("expected light theme's first pick to have higher L than dark's: %f vs %f",
			light[0].Color().L, dark[0].Color().L)
	}
}
