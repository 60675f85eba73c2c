package segment

import "testing"

func fourCorners() []Point5D {
	return []Point5D{
		{L: 0, A: 0, B: 0, X: 0.1, Y: 0.1},
		{L: 0, A: 0, B: 0, X: 0.11, Y: 0.11},
		{L: 0, A: 0, B: 0, X: 0.12, Y: 0.09},
		{L: 0, A: 0, B: 0, X: 0.09, Y: 0.12},

		{L: 100, A: 0, B: 0, X: 0.9, Y: 0.9},
		{L: 100, A: 0, B: 0, X: 0.91, Y: 0.91},
		{L: 100, A: 0, B: 0, X: 0.92, Y: 0.89},
		{L: 100, A: 0, B: 0, X: 0.89, Y: 0.92},
	}
}

func TestDBSCANSeparatesClusters(t *testing.T) {
	pts := fourCorners()
	model := DBSCAN(pts, DBSCANParams{Epsilon: 5, MinPoints: 3})

	if len(model.Cluster) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(model.Cluster))
	}
	for _, c := range model.Cluster {
		if c.Population != 4 {
			t.Errorf("expected population 4, got %d", c.Population)
		}
	}
}

func TestDBSCANAllNoise(t *testing.T) {
	pts := []Point5D{
		{L: 0, A: 0, B: 0, X: 0.1, Y: 0.1},
		{L: 50, A: 0, B: 0, X: 0.5, Y: 0.5},
		{L: 100, A: 0, B: 0, X: 0.9, Y: 0.9},
	}
	model := DBSCAN(pts, DBSCANParams{Epsilon: 1, MinPoints: 3})
	if len(model.Cluster) != 0 {
		t.Fatalf("expected 0 clusters, got %d", len(model.Cluster))
	}
}

func TestDBSCANEmpty(t *testing.T) {
	model := DBSCAN(nil, DefaultDBSCANParams())
	if len(model.Cluster) != 0 {
		t.Fatalf("expected empty model, got %d clusters", len(model.Cluster))
	}
}

func TestDBSCANPPMatchesDBSCANStructure(t *testing.T) {
	pts := fourCorners()
	model := DBSCANPP(pts, DBSCANPPParams{DBSCANParams: DBSCANParams{Epsilon: 5, MinPoints: 3}, Rho: 1.0})
	if len(model.Cluster) != 2 {
		t.Fatalf("expected 2 clusters with rho=1.0, got %d", len(model.Cluster))
	}
}
