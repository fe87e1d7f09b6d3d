// Package spatial provides the rigid-body math primitives the kinematic
// chain and joint packages build on: 3D vectors, 3x3 matrices, rigid
// frames, and 6D spatial vectors/inertias in the angular-first convention
// used throughout roki.
package spatial

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is a 3D vector. It is a plain alias of r3.Vector so callers get all
// of geo's vector arithmetic (Add, Sub, Mul, Dot, Cross, Norm, Normalize)
// for free.
type Vec3 = r3.Vector

// ZeroVec3 is the additive identity.
var ZeroVec3 = Vec3{}

// NewVec3 constructs a vector from components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// IsTinyVec3 reports whether every component of v is within tol of zero.
func IsTinyVec3(v Vec3, tol float64) bool {
	return math.Abs(v.X) <= tol && math.Abs(v.Y) <= tol && math.Abs(v.Z) <= tol
}

// DefaultTol is the default numeric tolerance used by "is this tiny/neutral"
// checks across the package.
const DefaultTol = 1e-10

// IsTiny reports whether f is within DefaultTol of zero.
func IsTiny(f float64) bool {
	return math.Abs(f) <= DefaultTol
}
