package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is an immutable 2D vector. Every operation returns a new value.
type Vector struct {
	X, Y float64
}

// Add returns the componentwise sum of v and o
func (v Vector) Add(o Vector) Vector {
	return Vector(r2.Add(r2.Vec(v), r2.Vec(o)))
}

// Scale multiplies both components by m
func (v Vector) Scale(m float64) Vector {
	return Vector(r2.Scale(m, r2.Vec(v)))
}

// Negate flips the sign of both components
func (v Vector) Negate() Vector {
	return v.Scale(-1)
}

// SquaredDistance returns (o.X-v.X)² + (o.Y-v.Y)². No square root is taken.
func (v Vector) SquaredDistance(o Vector) float64 {
	return r2.Norm2(r2.Sub(r2.Vec(o), r2.Vec(v)))
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
