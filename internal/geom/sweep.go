package geom

// PolygonHitsPolygon sweeps a polygon placed by moverXf along delta against a
// stationary polygon placed by targetXf. The mover's vertices are tested as
// rays against the target's edges, then the target's vertices are tested as
// reversed rays against the mover's edges. Hit.Pos is where moverXf.Pos sits
// at first contact; Hit.Normal points away from the target.
//
// Ties at equal T keep the first candidate: mover vertices in index order,
// then target vertices in index order.
func PolygonHitsPolygon(mover Polygon, moverXf Transform, delta Vector, target Polygon, targetXf Transform) (Hit, bool) {
	if delta == Zero {
		return Hit{}, false
	}
	var best Hit
	found := false

	localDelta := targetXf.ToLocalDir(delta)
	for _, v := range mover.Vertices {
		start := targetXf.ToLocal(moverXf.ToWorld(v))
		h, ok := rayEdges(target, start, localDelta, true)
		if !ok || !better(found, best, h.T) {
			continue
		}
		best = Hit{
			T:       h.T,
			Pos:     moverXf.Pos.Add(delta.Mul(h.T)),
			Contact: targetXf.ToWorld(h.Contact),
			Normal:  targetXf.ToWorldDir(h.Normal),
		}
		found = true
	}

	reversed := moverXf.ToLocalDir(delta.Neg())
	for _, q := range target.Vertices {
		wq := targetXf.ToWorld(q)
		h, ok := rayEdges(mover, moverXf.ToLocal(wq), reversed, true)
		if !ok || !better(found, best, h.T) {
			continue
		}
		best = Hit{
			T:       h.T,
			Pos:     moverXf.Pos.Add(delta.Mul(h.T)),
			Contact: wq,
			Normal:  moverXf.ToWorldDir(h.Normal).Neg(),
		}
		found = true
	}
	return best, found
}
