package geo

import "testing"

func TestPolygonIsValid(t *testing.T) {
	if (Polygon{}).IsValid() {
		t.Error("empty polygon reported valid")
	}
	if (Polygon{{Lat: 1, Lon: 103}, {Lat: 2, Lon: 104}}).IsValid() {
		t.Error("two-vertex polygon reported valid")
	}
	if !(Polygon{{Lat: 1, Lon: 103}, {Lat: 2, Lon: 104}, {Lat: 1, Lon: 105}}).IsValid() {
		t.Error("triangle reported invalid")
	}
}

func TestPolygonContains(t *testing.T) {
	// Rectangular corridor roughly over the Singapore strait.
	corridor := Polygon{
		{Lat: 1.0, Lon: 103.5},
		{Lat: 1.5, Lon: 103.5},
		{Lat: 1.5, Lon: 104.0},
		{Lat: 1.0, Lon: 104.0},
	}

	// L-shaped corridor with a notch in the upper right.
	lShape := Polygon{
		{Lat: 0, Lon: 0},
		{Lat: 4, Lon: 0},
		{Lat: 4, Lon: 2},
		{Lat: 2, Lon: 2},
		{Lat: 2, Lon: 4},
		{Lat: 0, Lon: 4},
	}

	tests := []struct {
		name    string
		polygon Polygon
		pt      Point
		want    bool
	}{
		{
			name:    "inside corridor",
			polygon: corridor,
			pt:      Point{Lat: 1.25, Lon: 103.75},
			want:    true,
		},
		{
			name:    "outside corridor",
			polygon: corridor,
			pt:      Point{Lat: 2.0, Lon: 103.75},
			want:    false,
		},
		{
			name:    "on boundary edge",
			polygon: corridor,
			pt:      Point{Lat: 1.25, Lon: 103.5},
			want:    true,
		},
		{
			name:    "on vertex",
			polygon: corridor,
			pt:      Point{Lat: 1.0, Lon: 103.5},
			want:    true,
		},
		{
			name:    "inside concave arm",
			polygon: lShape,
			pt:      Point{Lat: 3, Lon: 1},
			want:    true,
		},
		{
			name:    "in concave notch",
			polygon: lShape,
			pt:      Point{Lat: 3, Lon: 3},
			want:    false,
		},
		{
			name:    "degenerate polygon",
			polygon: Polygon{{Lat: 1, Lon: 103}, {Lat: 2, Lon: 104}},
			pt:      Point{Lat: 1.5, Lon: 103.5},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.polygon.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}
