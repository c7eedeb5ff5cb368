package geom

import "math"

// Polygon is a read-only view of an ordered vertex list. Polygons are assumed
// simple and wound counter-clockwise; the vertex slice usually points into a
// static content table and is never modified here.
type Polygon struct {
	Vertices []Vector
}

// Poly builds a polygon over the given vertices.
func Poly(vertices ...Vector) Polygon {
	return Polygon{Vertices: vertices}
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.Vertices) }

// Edge returns the i-th edge, from vertex i to vertex i+1 (wrapping).
func (p Polygon) Edge(i int) (a, b Vector) {
	n := len(p.Vertices)
	return p.Vertices[i], p.Vertices[(i+1)%n]
}

// edgeNormal returns the outward unit normal of edge a->b for a CCW polygon.
// Degenerate edges report false.
func edgeNormal(a, b Vector) (Vector, bool) {
	e := b.Sub(a)
	n := e.Norm()
	if n == 0 {
		return Zero, false
	}
	return Vector{e.Y / n, -e.X / n}, true
}

// Contains is a ray-casting parity test, correct for concave simple polygons.
// The boundary is half-open: points on edges facing -X or -Y count as
// inside, points on edges facing +X or +Y do not.
func (p Polygon) Contains(point Vector) bool {
	inside := false
	vs := p.Vertices
	n := len(vs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := vs[i], vs[j]
		if (a.Y > point.Y) != (b.Y > point.Y) &&
			point.X < (b.X-a.X)*(point.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// ConvexContains is a half-plane test. The caller guarantees the polygon is
// convex and wound counter-clockwise. Points on an edge count as inside, so
// it matches Contains only off the boundary.
func (p Polygon) ConvexContains(point Vector) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if b.Sub(a).Cross(point.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

// ContainsTrans tests a world point against the polygon placed by xf.
func (p Polygon) ContainsTrans(xf Transform, point Vector) bool {
	return p.Contains(xf.ToLocal(point))
}

// BoundingRadius is the distance from the local origin to the farthest vertex.
func (p Polygon) BoundingRadius() float64 {
	r := 0.0
	for _, v := range p.Vertices {
		r = math.Max(r, v.Norm())
	}
	return r
}

// Centroid returns the vertex average. For convex polygons it lies inside.
func (p Polygon) Centroid() Vector {
	if len(p.Vertices) == 0 {
		return Zero
	}
	var sum Vector
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(p.Vertices)))
}

// SegmentDist returns the distance from point to segment a-b.
func SegmentDist(point, a, b Vector) float64 {
	e := b.Sub(a)
	l := e.NormSq()
	if l == 0 {
		return Dist(point, a)
	}
	t := math.Max(0, math.Min(1, point.Sub(a).Dot(e)/l))
	return Dist(point, a.Add(e.Mul(t)))
}

// CircleTouchesPolygon reports whether a circle overlaps the polygon.
func CircleTouchesPolygon(p Polygon, radius float64, center Vector) bool {
	if p.Contains(center) {
		return true
	}
	for i := range p.Vertices {
		a, b := p.Edge(i)
		if SegmentDist(center, a, b) <= radius {
			return true
		}
	}
	return false
}

// CircleTouchesPolygonTrans is CircleTouchesPolygon with the polygon placed by xf.
func CircleTouchesPolygonTrans(p Polygon, xf Transform, radius float64, center Vector) bool {
	return CircleTouchesPolygon(p, radius, xf.ToLocal(center))
}
