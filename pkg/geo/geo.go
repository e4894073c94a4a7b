// Package geo provides minimal planar geometry for route corridor checks.
package geo

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Polygon is a closed ring of vertices describing a route corridor.
// The closing edge from the last vertex back to the first is implicit.
type Polygon []Point

// IsValid reports whether the polygon has enough vertices to enclose area.
func (p Polygon) IsValid() bool {
	return len(p) >= 3
}

// Contains reports whether pt lies inside the polygon using the even-odd
// ray casting rule. Points exactly on an edge count as inside, so a shipment
// riding the corridor boundary does not trip the geofence.
func (p Polygon) Contains(pt Point) bool {
	if !p.IsValid() {
		return false
	}

	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p[i], p[j]

		if onSegment(pt, vi, vj) {
			return true
		}

		intersects := (vi.Lat > pt.Lat) != (vj.Lat > pt.Lat) &&
			pt.Lon < (vj.Lon-vi.Lon)*(pt.Lat-vi.Lat)/(vj.Lat-vi.Lat)+vi.Lon
		if intersects {
			inside = !inside
		}
	}
	return inside
}

const segmentEpsilon = 1e-9

// onSegment reports whether pt lies on the segment between a and b.
func onSegment(pt, a, b Point) bool {
	cross := (b.Lon-a.Lon)*(pt.Lat-a.Lat) - (b.Lat-a.Lat)*(pt.Lon-a.Lon)
	if cross > segmentEpsilon || cross < -segmentEpsilon {
		return false
	}

	if pt.Lon < min(a.Lon, b.Lon)-segmentEpsilon || pt.Lon > max(a.Lon, b.Lon)+segmentEpsilon {
		return false
	}
	if pt.Lat < min(a.Lat, b.Lat)-segmentEpsilon || pt.Lat > max(a.Lat, b.Lat)+segmentEpsilon {
		return false
	}
	return true
}
