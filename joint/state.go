// Package joint implements the closed set of joint kinds (fixed, revolute,
// prismatic, cylindrical, universal, spherical, free, brake) behind one
// uniform capability interface, dispatched by a tag rather than a type
// switch — one implementation per kind, matching a manually built
// virtual-method table without runtime allocation in the hot path.
package joint

// MaxDOF is the largest degree-of-freedom count any joint kind has (free,
// DOF 6). State buffers are fixed at this size so every kind shares one
// representation.
const MaxDOF = 6

// State holds one joint's generalized displacement, velocity, acceleration
// and torque/force, each a length-MaxDOF array of which only the first
// Kind.DOF() entries are meaningful. The geometry of the entries is
// kind-specific (e.g. Spherical packs a rotation vector into Q[0:3]).
type State struct {
	Q   [MaxDOF]float64
	Dq  [MaxDOF]float64
	Ddq [MaxDOF]float64
	Trq [MaxDOF]float64
}
