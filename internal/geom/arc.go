package geom

import "math"

// Arc variants move the mover's reference point around spinCenter by
// spinAngle radians (positive is counter-clockwise) instead of along a
// straight delta. Hits report the signed angle swept at contact.

// sweptAngle returns the angle from a to b (both relative to the spin centre)
// measured in the direction of spin.
func sweptAngle(a, b Vector, spin float64) float64 {
	ang := math.Atan2(a.Cross(b), a.Dot(b))
	if spin > 0 {
		return Mod2PiNonNeg(ang)
	}
	return Mod2PiNonPos(ang)
}

// arcTangent is the direction of travel at q.
func arcTangent(q, center Vector, spin float64) Vector {
	t := q.Sub(center).RotLeft90()
	if spin < 0 {
		return t.Neg()
	}
	return t
}

type arcPath struct {
	start  Vector
	center Vector
	spin   float64
	radius float64
}

func newArcPath(start, center Vector, spin float64) (arcPath, bool) {
	r := Dist(start, center)
	if spin == 0 || r == 0 {
		return arcPath{}, false
	}
	return arcPath{start: start, center: center, spin: spin, radius: r}, true
}

// accept checks that q lies within the sweep and returns the swept angle.
func (ap arcPath) accept(q Vector) (float64, bool) {
	ang := sweptAngle(ap.start.Sub(ap.center), q.Sub(ap.center), ap.spin)
	if math.Abs(ang) > math.Abs(ap.spin) {
		return 0, false
	}
	return ang, true
}

func (ap arcPath) fraction(angle float64) float64 {
	return math.Abs(angle / ap.spin)
}

// segment intersects the path circle with segment a-b. If approachNormal is
// nonzero, only crossings moving against it count.
func (ap arcPath) segment(a, b, approachNormal Vector) (float64, Vector, bool) {
	e := b.Sub(a)
	qa := e.NormSq()
	if qa == 0 {
		return 0, Zero, false
	}
	f := a.Sub(ap.center)
	qb := 2 * f.Dot(e)
	qc := f.NormSq() - ap.radius*ap.radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, Zero, false
	}
	sq := math.Sqrt(disc)
	bestAng, bestQ, found := 0.0, Zero, false
	for _, s := range [2]float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if s < 0 || s > 1 {
			continue
		}
		q := a.Add(e.Mul(s))
		if approachNormal != Zero && arcTangent(q, ap.center, ap.spin).Dot(approachNormal) >= 0 {
			continue
		}
		ang, ok := ap.accept(q)
		if !ok || (found && math.Abs(ang) >= math.Abs(bestAng)) {
			continue
		}
		bestAng, bestQ, found = ang, q, true
	}
	return bestAng, bestQ, found
}

// circle intersects the path circle with a circle at c of radius r. With
// approach set, only points where the mover heads into the circle count.
func (ap arcPath) circle(c Vector, r float64, approach bool) (float64, Vector, bool) {
	if r <= 0 {
		return 0, Zero, false
	}
	axis := c.Sub(ap.center)
	d := axis.Norm()
	if d == 0 || d > ap.radius+r || d < math.Abs(ap.radius-r) {
		return 0, Zero, false
	}
	a := (ap.radius*ap.radius - r*r + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, ap.radius*ap.radius-a*a))
	u := axis.Mul(1 / d)
	mid := ap.center.Add(u.Mul(a))
	perp := u.RotLeft90().Mul(h)
	bestAng, bestQ, found := 0.0, Zero, false
	for _, q := range [2]Vector{mid.Add(perp), mid.Sub(perp)} {
		if approach && arcTangent(q, ap.center, ap.spin).Dot(q.Sub(c)) >= 0 {
			continue
		}
		ang, ok := ap.accept(q)
		if !ok || (found && math.Abs(ang) >= math.Abs(bestAng)) {
			continue
		}
		bestAng, bestQ, found = ang, q, true
	}
	return bestAng, bestQ, found
}

// ArcRayHitsCircle tests a point travelling along an arc against a circle.
func ArcRayHitsCircle(radius float64, center, start, spinCenter Vector, spinAngle float64) (Hit, bool) {
	ap, ok := newArcPath(start, spinCenter, spinAngle)
	if !ok {
		return Hit{}, false
	}
	ang, q, ok := ap.circle(center, radius, false)
	if !ok {
		return Hit{}, false
	}
	return Hit{T: ap.fraction(ang), Angle: ang, Pos: q, Contact: q, Normal: q.Sub(center).Unit()}, true
}

// ArcCircleHitsCircle sweeps a circle along an arc against a stationary circle.
func ArcCircleHitsCircle(moverRadius, radius float64, center, start, spinCenter Vector, spinAngle float64) (Hit, bool) {
	ap, ok := newArcPath(start, spinCenter, spinAngle)
	if !ok || moverRadius < 0 {
		return Hit{}, false
	}
	ang, q, ok := ap.circle(center, moverRadius+radius, true)
	if !ok {
		return Hit{}, false
	}
	n := q.Sub(center).Unit()
	return Hit{T: ap.fraction(ang), Angle: ang, Pos: q, Contact: center.Add(n.Mul(radius)), Normal: n}, true
}

// ArcRayHitsPolygon tests a point travelling along an arc against every edge.
func ArcRayHitsPolygon(p Polygon, start, spinCenter Vector, spinAngle float64) (Hit, bool) {
	ap, ok := newArcPath(start, spinCenter, spinAngle)
	if !ok {
		return Hit{}, false
	}
	var best Hit
	found := false
	for i := range p.Vertices {
		a, b := p.Edge(i)
		n, ok := edgeNormal(a, b)
		if !ok {
			continue
		}
		ang, q, ok := ap.segment(a, b, Zero)
		if !ok || !better(found, best, ap.fraction(ang)) {
			continue
		}
		best = Hit{T: ap.fraction(ang), Angle: ang, Pos: q, Contact: q, Normal: n}
		found = true
	}
	return best, found
}

// ArcCircleHitsPolygon sweeps a circle along an arc against a polygon, using
// the same edge-offset and vertex-circle decomposition as CircleHitsPolygon.
func ArcCircleHitsPolygon(p Polygon, radius float64, start, spinCenter Vector, spinAngle float64) (Hit, bool) {
	ap, ok := newArcPath(start, spinCenter, spinAngle)
	if !ok || radius <= 0 {
		return Hit{}, false
	}
	var best Hit
	found := false
	for i := range p.Vertices {
		a, b := p.Edge(i)
		n, ok := edgeNormal(a, b)
		if !ok {
			continue
		}
		off := n.Mul(radius)
		ang, q, ok := ap.segment(a.Add(off), b.Add(off), n)
		if !ok || !better(found, best, ap.fraction(ang)) {
			continue
		}
		best = Hit{T: ap.fraction(ang), Angle: ang, Pos: q, Contact: q.Sub(off), Normal: n}
		found = true
	}
	for _, v := range p.Vertices {
		ang, q, ok := ap.circle(v, radius, true)
		if !ok || !better(found, best, ap.fraction(ang)) {
			continue
		}
		best = Hit{T: ap.fraction(ang), Angle: ang, Pos: q, Contact: v, Normal: q.Sub(v).Unit()}
		found = true
	}
	return best, found
}

// ArcRayHitsPolygonTrans is ArcRayHitsPolygon with the polygon placed by xf.
func ArcRayHitsPolygonTrans(p Polygon, xf Transform, start, spinCenter Vector, spinAngle float64) (Hit, bool) {
	h, ok := ArcRayHitsPolygon(p, xf.ToLocal(start), xf.ToLocal(spinCenter), spinAngle)
	if !ok {
		return Hit{}, false
	}
	return xf.hitToWorld(h), true
}

// ArcCircleHitsPolygonTrans is ArcCircleHitsPolygon with the polygon placed by xf.
func ArcCircleHitsPolygonTrans(p Polygon, xf Transform, radius float64, start, spinCenter Vector, spinAngle float64) (Hit, bool) {
	h, ok := ArcCircleHitsPolygon(p, radius, xf.ToLocal(start), xf.ToLocal(spinCenter), spinAngle)
	if !ok {
		return Hit{}, false
	}
	return xf.hitToWorld(h), true
}
