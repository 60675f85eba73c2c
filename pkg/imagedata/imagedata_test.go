package imagedata

import "testing"

func TestNewValidatesDimensions(t *testing.T) {
	t.Run("mismatched length", func(t *testing.T) {
		_, err := New(2, 2, make([]byte, 10))
		if err != ErrInvalidDimensions {
			t.Errorf("expected ErrInvalidDimensions, got %v", err)
		}
	})

	t.Run("zero width", func(t *testing.T) {
		_, err := New(0, 2, nil)
		if err != ErrInvalidDimensions {
			t.Errorf("expected ErrInvalidDimensions, got %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		img, err := New(2, 2, make([]byte, 16))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Width != 2 || img.Height != 2 {
			t.Errorf("unexpected dimensions: %+v", img)
		}
	})
}

func TestResizeNoopWhenSmall(t *testing.T) {
	img, _ := New(4, 4, make([]byte, 4*4*4))
	resized := img.Resize(100)
	if resized != img {
		t.Errorf("expected same instance when already within bounds")
	}
}

func TestResizeZeroMaxDimIsNoop(t *testing.T) {
	img, _ := New(4, 4, make([]byte, 4*4*4))
	resized := img.Resize(0)
	if resized != img {
		t.Errorf("expected same instance when maxDim is 0")
	}
}
