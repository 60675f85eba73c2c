package segment

import "testing"

func TestKMeansTwoObviousClusters(t *testing.T) {
	pts := fourCorners()
	model := KMeans(pts, KMeansParams{K: 2, MaxIterations: 10, ShiftThreshold: 1e-6})

	if len(model.Cluster) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(model.Cluster))
	}
	total := 0
	for _, c := range model.Cluster {
		total += c.Population
	}
	if total != len(pts) {
		t.Errorf("expected population to sum to %d, got %d", len(pts), total)
	}
}

func TestKMeansEmpty(t *testing.T) {
	model := KMeans(nil, DefaultKMeansParams())
	if len(model.Cluster) != 0 {
		t.Fatalf("expected empty model, got %d clusters", len(model.Cluster))
	}
}

func TestKMeansKLargerThanPoints(t *testing.T) {
	pts := []Point5D{{L: 0, A: 0, B: 0, X: 0.1, Y: 0.1}}
	model := KMeans(pts, KMeansParams{K: 5, MaxIterations: 5})
	if len(model.Cluster) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(model.Cluster))
	}
}
