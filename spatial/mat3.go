package spatial

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat3 is a 3x3 matrix, used for rotation/attitude matrices and inertia
// tensors. It is backed by gonum's mat.Dense so the rest of the domain
// (notably the joint-space inertia matrix in the chain package) shares one
// linear-algebra implementation.
type Mat3 struct {
	d *mat.Dense
}

// NewMat3 builds a Mat3 from nine row-major entries.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Mat3 {
	return Mat3{d: mat.NewDense(3, 3, []float64{m00, m01, m02, m10, m11, m12, m20, m21, m22})}
}

// IdentityMat3 returns the 3x3 identity matrix.
func IdentityMat3() Mat3 {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	return Mat3{d: m}
}

// ZeroMat3 returns the 3x3 zero matrix.
func ZeroMat3() Mat3 {
	return Mat3{d: mat.NewDense(3, 3, nil)}
}

func (m Mat3) ensure() *mat.Dense {
	if m.d == nil {
		return mat.NewDense(3, 3, nil)
	}
	return m.d
}

// At returns the (i,j) entry.
func (m Mat3) At(i, j int) float64 {
	return m.ensure().At(i, j)
}

// Set mutates the (i,j) entry in place.
func (m Mat3) Set(i, j int, v float64) {
	m.ensure().Set(i, j, v)
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 {
	return NewVec3(m.At(i, 0), m.At(i, 1), m.At(i, 2))
}

// Col returns column j as a vector.
func (m Mat3) Col(j int) Vec3 {
	return NewVec3(m.At(0, j), m.At(1, j), m.At(2, j))
}

// T returns the transpose.
func (m Mat3) T() Mat3 {
	out := mat.NewDense(3, 3, nil)
	out.CloneFrom(m.ensure().T())
	return Mat3{d: out}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	out := mat.NewDense(3, 3, nil)
	out.Mul(m.ensure(), o.ensure())
	return Mat3{d: out}
}

// Add returns m + o.
func (m Mat3) Add(o Mat3) Mat3 {
	out := mat.NewDense(3, 3, nil)
	out.Add(m.ensure(), o.ensure())
	return Mat3{d: out}
}

// Scale returns k*m.
func (m Mat3) Scale(k float64) Mat3 {
	out := mat.NewDense(3, 3, nil)
	out.Scale(k, m.ensure())
	return Mat3{d: out}
}

// MulVec3 returns m*v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	d := m.ensure()
	return NewVec3(
		d.At(0, 0)*v.X+d.At(0, 1)*v.Y+d.At(0, 2)*v.Z,
		d.At(1, 0)*v.X+d.At(1, 1)*v.Y+d.At(1, 2)*v.Z,
		d.At(2, 0)*v.X+d.At(2, 1)*v.Y+d.At(2, 2)*v.Z,
	)
}

// MulTVec3 returns m^T*v, i.e. the inverse rotation when m is orthonormal.
func (m Mat3) MulTVec3(v Vec3) Vec3 {
	d := m.ensure()
	return NewVec3(
		d.At(0, 0)*v.X+d.At(1, 0)*v.Y+d.At(2, 0)*v.Z,
		d.At(0, 1)*v.X+d.At(1, 1)*v.Y+d.At(2, 1)*v.Z,
		d.At(0, 2)*v.X+d.At(1, 2)*v.Y+d.At(2, 2)*v.Z,
	)
}

// Skew returns the skew-symmetric cross-product matrix of v, such that
// Skew(v).MulVec3(u) == v.Cross(u).
func Skew(v Vec3) Mat3 {
	return NewMat3(
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	)
}

// Outer returns the outer product a*b^T.
func Outer(a, b Vec3) Mat3 {
	return NewMat3(
		a.X*b.X, a.X*b.Y, a.X*b.Z,
		a.Y*b.X, a.Y*b.Y, a.Y*b.Z,
		a.Z*b.X, a.Z*b.Y, a.Z*b.Z,
	)
}

// FromAxisAngle builds a rotation matrix via Rodrigues' formula. The axis
// need not be normalized; a zero axis with nonzero angle is treated as no
// rotation.
func FromAxisAngle(axis Vec3, angle float64) Mat3 {
	n := axis.Norm()
	if IsTiny(n) || IsTiny(angle) {
		return IdentityMat3()
	}
	u := axis.Mul(1 / n)
	k := Skew(u)
	s, c := math.Sin(angle), math.Cos(angle)
	// R = I + sin(theta) K + (1-cos(theta)) K^2
	k2 := k.Mul(k)
	return IdentityMat3().Add(k.Scale(s)).Add(k2.Scale(1 - c))
}

// ToAxisAngle extracts an axis-angle representation from a rotation matrix.
// Returns a zero axis and zero angle for the identity (within tolerance).
func ToAxisAngle(r Mat3) (axis Vec3, angle float64) {
	trace := r.At(0, 0) + r.At(1, 1) + r.At(2, 2)
	cosTheta := (trace - 1) / 2
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	angle = math.Acos(cosTheta)
	if IsTiny(angle) {
		return ZeroVec3, 0
	}
	raw := NewVec3(r.At(2, 1)-r.At(1, 2), r.At(0, 2)-r.At(2, 0), r.At(1, 0)-r.At(0, 1))
	n := raw.Norm()
	if IsTiny(n) {
		// angle near pi: off-diagonal antisymmetric part vanishes; fall back
		// to extracting the axis from the symmetric part.
		axis = largestEigenAxisNearPi(r)
		return axis, angle
	}
	return raw.Mul(1 / n), angle
}

// FromRotVec builds a rotation matrix from a rotation vector (exponential-map
// encoding): direction is the axis, norm is the angle. Used by the
// Spherical and Free joint kinds to pack a 3-DOF attitude into a plain
// Vec3-shaped displacement.
func FromRotVec(v Vec3) Mat3 {
	return FromAxisAngle(v, v.Norm())
}

// ToRotVec is the inverse of FromRotVec.
func ToRotVec(r Mat3) Vec3 {
	axis, angle := ToAxisAngle(r)
	if IsTiny(angle) {
		return ZeroVec3
	}
	return axis.Mul(angle)
}

func largestEigenAxisNearPi(r Mat3) Vec3 {
	// (R + I)/2 = u u^T when angle == pi; take the largest-diagonal column.
	s := r.Add(IdentityMat3()).Scale(0.5)
	best := 0
	bestVal := s.At(0, 0)
	for i := 1; i < 3; i++ {
		if s.At(i, i) > bestVal {
			bestVal = s.At(i, i)
			best = i
		}
	}
	col := s.Col(best)
	if n := col.Norm(); !IsTiny(n) {
		return col.Mul(1 / n)
	}
	return NewVec3(0, 0, 1)
}
