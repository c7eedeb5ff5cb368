package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform places a shape in the world: rotate by Angle about the shape's
// origin, then translate by Pos.
type Transform struct {
	Pos   Vector
	Angle float64
}

// Identity leaves shapes where they are.
var Identity = Transform{}

// Place returns a transform at pos rotated by angle.
func Place(pos Vector, angle float64) Transform {
	return Transform{Pos: pos, Angle: angle}
}

func toMgl(v Vector) mgl64.Vec2   { return mgl64.Vec2{v.X, v.Y} }
func fromMgl(v mgl64.Vec2) Vector { return Vector{X: v[0], Y: v[1]} }

func (xf Transform) rot() mgl64.Mat2 { return mgl64.Rotate2D(xf.Angle) }

// ToWorld maps a point from shape-local space to world space.
func (xf Transform) ToWorld(p Vector) Vector {
	return fromMgl(xf.rot().Mul2x1(toMgl(p))).Add(xf.Pos)
}

// ToWorldDir maps a direction (no translation) to world space.
func (xf Transform) ToWorldDir(d Vector) Vector {
	return fromMgl(xf.rot().Mul2x1(toMgl(d)))
}

// ToLocal maps a world point into shape-local space.
func (xf Transform) ToLocal(p Vector) Vector {
	return fromMgl(xf.rot().Transpose().Mul2x1(toMgl(p.Sub(xf.Pos))))
}

// ToLocalDir maps a world direction into shape-local space.
func (xf Transform) ToLocalDir(d Vector) Vector {
	return fromMgl(xf.rot().Transpose().Mul2x1(toMgl(d)))
}

// Compose returns the world transform of a child placed by local inside xf.
func (xf Transform) Compose(local Transform) Transform {
	return Transform{
		Pos:   xf.ToWorld(local.Pos),
		Angle: Mod2Pi(xf.Angle + local.Angle),
	}
}

// hitToWorld maps a local-space hit back into world space.
func (xf Transform) hitToWorld(h Hit) Hit {
	h.Pos = xf.ToWorld(h.Pos)
	h.Contact = xf.ToWorld(h.Contact)
	h.Normal = xf.ToWorldDir(h.Normal)
	return h
}
