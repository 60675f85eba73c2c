package segment

import "testing"

func solidPixels(w, h int, r, g, b, a byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = a
	}
	return buf
}

func TestEncodeSolidColor(t *testing.T) {
	pixels := solidPixels(4, 4, 0xFF, 0, 0, 0xFF)
	pts := Encode(4, 4, pixels, nil)

	if len(pts) != 16 {
		t.Fatalf("expected 16 points, got %d", len(pts))
	}
	for _, p := range pts {
		if p.L < 52 || p.L > 54 {
			t.Errorf("unexpected L for pure red: %f", p.L)
		}
	}
}

func TestEncodeDefaultFilterDropsTransparent(t *testing.T) {
	pixels := solidPixels(2, 2, 0, 0, 0, 0)
	pts := Encode(2, 2, pixels, nil)
	if len(pts) != 0 {
		t.Fatalf("expected 0 points, got %d", len(pts))
	}
}

func TestEncodeSpatialCoordinatesAreOneIndexed(t *testing.T) {
	pixels := solidPixels(2, 2, 10, 10, 10, 255)
	pts := Encode(2, 2, pixels, nil)

	first := pts[0]
	if first.X != 0.5 || first.Y != 0.5 {
		t.Errorf("expected (0.5,0.5) for pixel (0,0) in 2x2, got (%f,%f)", first.X, first.Y)
	}

	last := pts[len(pts)-1]
	if last.X != 1.0 || last.Y != 1.0 {
		t.Errorf("expected (1,1) for last pixel, got (%f,%f)", last.X, last.Y)
	}
}

func TestDenormalizePositionRoundTrip(t *testing.T) {
	pixels := solidPixels(10, 10, 5, 5, 5, 255)
	pts := Encode(10, 10, pixels, nil)

	for i, p := range pts {
		col, row := DenormalizePosition(p, 10, 10)
		wantCol := i % 10
		wantRow := i / 10
		if col != wantCol || row != wantRow {
			t.Errorf("point %d: got (%d,%d), want (%d,%d)", i, col, row, wantCol, wantRow)
		}
	}
}
