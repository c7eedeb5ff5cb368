package geom

import (
	"fmt"
	"math"
)

// Vector is a 2D vector or point in world units.
type Vector struct {
	X float64
	Y float64
}

// Zero is the zero vector.
var Zero = Vector{}

// V constructs a vector. Non-finite components are a programming error.
func V(x, y float64) Vector {
	v := Vector{X: x, Y: y}
	mustFinite(v)
	return v
}

// Polar constructs a vector from a magnitude and an angle in radians.
func Polar(magnitude, theta float64) Vector {
	return V(magnitude*math.Cos(theta), magnitude*math.Sin(theta))
}

// IsFinite reports whether both components are finite.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func mustFinite(v Vector) {
	if !v.IsFinite() {
		panic(fmt.Sprintf("geom: non-finite vector (%g, %g)", v.X, v.Y))
	}
}

func mustNonZero(d float64, op string) {
	if d == 0 {
		panic("geom: division by zero in " + op)
	}
}

// --- Arithmetic ---

func (v Vector) Add(u Vector) Vector { return Vector{v.X + u.X, v.Y + u.Y} }
func (v Vector) Sub(u Vector) Vector { return Vector{v.X - u.X, v.Y - u.Y} }
func (v Vector) Neg() Vector         { return Vector{-v.X, -v.Y} }
func (v Vector) Mul(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div divides by a nonzero scalar.
func (v Vector) Div(s float64) Vector {
	mustNonZero(s, "Vector.Div")
	return Vector{v.X / s, v.Y / s}
}

func (v Vector) Dot(u Vector) float64 { return v.X*u.X + v.Y*u.Y }

// Cross returns the z component of the 3D cross product.
func (v Vector) Cross(u Vector) float64 { return v.X*u.Y - v.Y*u.X }

func (v Vector) Norm() float64   { return math.Hypot(v.X, v.Y) }
func (v Vector) NormSq() float64 { return v.X*v.X + v.Y*v.Y }

// Theta returns the angle of the vector in (-pi, pi].
func (v Vector) Theta() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return Mod2Pi(math.Atan2(v.Y, v.X))
}

// Unit returns the vector scaled to length one. The zero vector has no direction.
func (v Vector) Unit() Vector {
	n := v.Norm()
	mustNonZero(n, "Vector.Unit")
	return Vector{v.X / n, v.Y / n}
}

// WithNorm returns a vector in the same direction with the given length.
func (v Vector) WithNorm(length float64) Vector {
	return v.Unit().Mul(length)
}

// Rotate rotates counter-clockwise by theta radians.
func (v Vector) Rotate(theta float64) Vector {
	c, s := math.Cos(theta), math.Sin(theta)
	return Vector{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

func (v Vector) RotLeft90() Vector  { return Vector{-v.Y, v.X} }
func (v Vector) RotRight90() Vector { return Vector{v.Y, -v.X} }

// Project returns the projection of v onto axis.
func (v Vector) Project(axis Vector) Vector {
	d := axis.NormSq()
	mustNonZero(d, "Vector.Project")
	return axis.Mul(v.Dot(axis) / d)
}

// Reflect mirrors v across the line through the origin along axis.
func (v Vector) Reflect(axis Vector) Vector {
	return v.Project(axis).Mul(2).Sub(v)
}

// Bounce reflects a velocity off a surface with the given normal, scaling the
// normal component by elasticity (1 = perfectly elastic).
func (v Vector) Bounce(normal Vector, elasticity float64) Vector {
	along := v.Project(normal)
	if along.Dot(normal) >= 0 {
		return v
	}
	return v.Sub(along.Mul(1 + elasticity))
}

// --- Distance predicates ---

// Dist returns the distance between two points.
func Dist(a, b Vector) float64 { return a.Sub(b).Norm() }

// WithinDist reports whether a and b are at most dist apart.
func WithinDist(a, b Vector, dist float64) bool {
	return a.Sub(b).NormSq() <= dist*dist
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Mul(t))
}
