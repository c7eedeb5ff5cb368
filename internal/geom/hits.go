package geom

import "math"

// Hit describes the first contact of a moving ray, circle or polygon with a
// stationary shape.
//
// For linear travel T is the fraction of delta travelled at contact. For arc
// travel Angle is the signed angle swept at contact and T is |Angle/spin|.
type Hit struct {
	T       float64
	Angle   float64
	Pos     Vector // mover's reference point at contact
	Contact Vector // the literal point of contact
	Normal  Vector // unit normal pointing away from the stationary shape
}

// Ties between candidates at equal T keep the first one found. Edges are
// visited in index order before vertices, also in index order.
func better(found bool, best Hit, t float64) bool {
	return !found || t < best.T
}

// raySegment returns the parameter t in [0,1] at which start+t*delta crosses
// segment a-b. Parallel and zero-length rays never hit.
func raySegment(start, delta, a, b Vector) (float64, bool) {
	e := b.Sub(a)
	denom := delta.Cross(e)
	if denom == 0 {
		return 0, false
	}
	w := a.Sub(start)
	t := w.Cross(e) / denom
	s := w.Cross(delta) / denom
	if t < 0 || t > 1 || s < 0 || s > 1 {
		return 0, false
	}
	return t, true
}

// rayCircleRoots solves |start + t*delta - center| = radius.
func rayCircleRoots(start, delta, center Vector, radius float64) (t0, t1 float64, ok bool) {
	a := delta.NormSq()
	if a == 0 || radius <= 0 {
		return 0, 0, false
	}
	f := start.Sub(center)
	b := 2 * f.Dot(delta)
	c := f.NormSq() - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}

// rayCircleEntry returns the entry parameter of a ray approaching a circle.
// Rays that start inside the circle do not enter it.
func rayCircleEntry(start, delta, center Vector, radius float64) (float64, bool) {
	t0, _, ok := rayCircleRoots(start, delta, center, radius)
	if !ok || t0 < 0 || t0 > 1 {
		return 0, false
	}
	if start.Sub(center).Dot(delta) >= 0 {
		return 0, false
	}
	return t0, true
}

// --- Ray tests ---

// RayHitsSegment tests a ray against a single segment. The normal faces the
// side the ray came from.
func RayHitsSegment(a, b, start, delta Vector) (Hit, bool) {
	t, ok := raySegment(start, delta, a, b)
	if !ok {
		return Hit{}, false
	}
	n, ok := edgeNormal(a, b)
	if !ok {
		return Hit{}, false
	}
	if n.Dot(delta) > 0 {
		n = n.Neg()
	}
	p := start.Add(delta.Mul(t))
	return Hit{T: t, Pos: p, Contact: p, Normal: n}, true
}

// RayHitsCircle returns the first boundary crossing of the ray with a circle.
// A ray starting inside reports where it exits.
func RayHitsCircle(radius float64, center, start, delta Vector) (Hit, bool) {
	t0, t1, ok := rayCircleRoots(start, delta, center, radius)
	if !ok {
		return Hit{}, false
	}
	t := t0
	if t < 0 {
		t = t1
	}
	if t < 0 || t > 1 {
		return Hit{}, false
	}
	p := start.Add(delta.Mul(t))
	return Hit{T: t, Pos: p, Contact: p, Normal: p.Sub(center).Unit()}, true
}

// RayHitsPolygon returns the minimum-t crossing of the ray segment
// start + t*delta, t in [0,1], with any edge of the polygon.
func RayHitsPolygon(p Polygon, start, delta Vector) (Hit, bool) {
	return rayEdges(p, start, delta, false)
}

// RayHitsPolygonTrans is RayHitsPolygon with the polygon placed by xf. The ray
// is moved into polygon-local space rather than moving every vertex.
func RayHitsPolygonTrans(p Polygon, xf Transform, start, delta Vector) (Hit, bool) {
	h, ok := RayHitsPolygon(p, xf.ToLocal(start), xf.ToLocalDir(delta))
	if !ok {
		return Hit{}, false
	}
	return xf.hitToWorld(h), true
}

func rayEdges(p Polygon, start, delta Vector, approachOnly bool) (Hit, bool) {
	var best Hit
	found := false
	for i := range p.Vertices {
		a, b := p.Edge(i)
		n, ok := edgeNormal(a, b)
		if !ok {
			continue
		}
		if approachOnly && delta.Dot(n) >= 0 {
			continue
		}
		t, ok := raySegment(start, delta, a, b)
		if !ok || !better(found, best, t) {
			continue
		}
		pt := start.Add(delta.Mul(t))
		best = Hit{T: t, Pos: pt, Contact: pt, Normal: n}
		found = true
	}
	return best, found
}

// --- Swept circle tests ---

// CircleHitsCircle sweeps a circle of moverRadius along delta against a
// stationary circle. Only approaching contact counts.
func CircleHitsCircle(moverRadius, radius float64, center, start, delta Vector) (Hit, bool) {
	if moverRadius < 0 {
		return Hit{}, false
	}
	t, ok := rayCircleEntry(start, delta, center, moverRadius+radius)
	if !ok {
		return Hit{}, false
	}
	p := start.Add(delta.Mul(t))
	n := p.Sub(center).Unit()
	return Hit{T: t, Pos: p, Contact: center.Add(n.Mul(radius)), Normal: n}, true
}

// CircleHitsPolygon sweeps a circle along delta against a polygon. Edges are
// pushed outward by the radius and tested as a ray; vertices are enlarged into
// circles to catch corners. Only contact while moving toward a surface counts,
// so a circle already touching can slide or back away freely.
func CircleHitsPolygon(p Polygon, radius float64, start, delta Vector) (Hit, bool) {
	if radius <= 0 || delta == Zero {
		return Hit{}, false
	}
	var best Hit
	found := false
	for i := range p.Vertices {
		a, b := p.Edge(i)
		n, ok := edgeNormal(a, b)
		if !ok || delta.Dot(n) >= 0 {
			continue
		}
		off := n.Mul(radius)
		t, ok := raySegment(start, delta, a.Add(off), b.Add(off))
		if !ok || !better(found, best, t) {
			continue
		}
		pos := start.Add(delta.Mul(t))
		best = Hit{T: t, Pos: pos, Contact: pos.Sub(off), Normal: n}
		found = true
	}
	for _, v := range p.Vertices {
		t, ok := rayCircleEntry(start, delta, v, radius)
		if !ok || !better(found, best, t) {
			continue
		}
		pos := start.Add(delta.Mul(t))
		best = Hit{T: t, Pos: pos, Contact: v, Normal: pos.Sub(v).Unit()}
		found = true
	}
	return best, found
}

// CircleHitsPolygonTrans is CircleHitsPolygon with the polygon placed by xf.
func CircleHitsPolygonTrans(p Polygon, xf Transform, radius float64, start, delta Vector) (Hit, bool) {
	h, ok := CircleHitsPolygon(p, radius, xf.ToLocal(start), xf.ToLocalDir(delta))
	if !ok {
		return Hit{}, false
	}
	return xf.hitToWorld(h), true
}
