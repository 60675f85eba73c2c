package kdtree

import (
	"math"
	"sort"
	"testing"
)

func TestBuildEmpty(t *testing.T) {
	tr := Build(nil)
	if got := tr.Within(Point{0, 0}, 1); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := tr.Nearest(Point{0, 0}); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestWithinRadius(t *testing.T) {
	pts := []Point{
		{0, 0}, {1, 0}, {0, 1}, {5, 5}, {5, 6},
	}
	tr := Build(pts)

	got := tr.Within(Point{0, 0}, 1.5)
	sort.Ints(got)
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestNearest(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}, {2, 2}}
	tr := Build(pts)
	idx := tr.Nearest(Point{1, 1})
	if idx != 0 && idx != 2 {
		t.Errorf("expected nearest to be 0 or 2, got %d", idx)
	}
	got := tr.Point(idx)
	d := math.Hypot(got[0]-1, got[1]-1)
	if d > math.Sqrt(2) {
		t.Errorf("nearest point too far: %v", got)
	}
}

func TestKNearest(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {2, 0}, {10, 10}}
	tr := Build(pts)
	got := tr.KNearest(Point{0, 0}, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0] != 0 {
		t.Errorf("expected closest first to be index 0, got %d", got[0])
	}
}

func TestKNearestMoreThanAvailable(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	tr := Build(pts)
	got := tr.KNearest(Point{0, 0}, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}
