package joint

import "github.com/sugihara-lab/roki/spatial"

// sphericalOps implements the Spherical (ball) joint kind: 3 rotational
// DOF with no fixed axis. Displacement is stored as a rotation vector
// (exponential-map encoding, Q[0:3]); velocity/acceleration/torque are the
// angular rate/acceleration/torque expressed directly in the joint's own
// frame, generalizing revolute's z*qdot pattern to an unconstrained
// 3-vector.
type sphericalOps struct{}

func (sphericalOps) DOF() int { return 3 }

func vec3From(a []float64) spatial.Vec3 { return spatial.NewVec3(a[0], a[1], a[2]) }

func putVec3(out []float64, v spatial.Vec3) { out[0], out[1], out[2] = v.X, v.Y, v.Z }

func (sphericalOps) SetDis(s *State, q []float64) { s.Q[0], s.Q[1], s.Q[2] = q[0], q[1], q[2] }
func (sphericalOps) GetDis(s *State, q []float64) { q[0], q[1], q[2] = s.Q[0], s.Q[1], s.Q[2] }
// SetDisContinuous stores the rotation-vector representative of q nearest
// the previous displacement, so crossing the double cover (|q| passing
// through pi) never produces a discontinuous jump in the stored encoding.
func (sphericalOps) SetDisContinuous(s *State, q []float64, dt float64) {
	putVec3(s.Q[:], nearestRotVec(vec3From(q[:3]), vec3From(s.Q[:3])))
}

// CatDis composes a velocity step via the manifold's exponential map rather
// than flat addition: qOut <- Log(Exp(qOut) . Exp(k*dq)).
func (sphericalOps) CatDis(qOut []float64, k float64, dq []float64) {
	cur := spatial.FromRotVec(vec3From(qOut[:3]))
	step := spatial.FromRotVec(vec3From(dq[:3]).Mul(k))
	putVec3(qOut, spatial.ToRotVec(cur.Mul(step)))
}

// SubDis returns the rotation vector taking qB's orientation to qA's:
// Log(Exp(qB)^T . Exp(qA)).
func (sphericalOps) SubDis(qA, qB []float64, out []float64) {
	ra := spatial.FromRotVec(vec3From(qA[:3]))
	rb := spatial.FromRotVec(vec3From(qB[:3]))
	putVec3(out, spatial.ToRotVec(rb.T().Mul(ra)))
}

func (sphericalOps) SetVel(s *State, v []float64) { s.Dq[0], s.Dq[1], s.Dq[2] = v[0], v[1], v[2] }
func (sphericalOps) GetVel(s *State, v []float64) { v[0], v[1], v[2] = s.Dq[0], s.Dq[1], s.Dq[2] }
func (sphericalOps) SetAcc(s *State, a []float64) { s.Ddq[0], s.Ddq[1], s.Ddq[2] = a[0], a[1], a[2] }
func (sphericalOps) GetAcc(s *State, a []float64) { a[0], a[1], a[2] = s.Ddq[0], s.Ddq[1], s.Ddq[2] }
func (sphericalOps) SetTrq(s *State, tau []float64) {
	s.Trq[0], s.Trq[1], s.Trq[2] = tau[0], tau[1], tau[2]
}
func (sphericalOps) GetTrq(s *State, tau []float64) {
	tau[0], tau[1], tau[2] = s.Trq[0], s.Trq[1], s.Trq[2]
}

func (sphericalOps) JointTransform(s *State) spatial.Frame3D {
	return spatial.NewFrame3D(spatial.ZeroVec3, spatial.FromRotVec(vec3From(s.Q[:3])))
}

// Axis has no single answer for a ball joint; callers needing a
// direction (e.g. joint-limit display) should use the full orientation.
func (sphericalOps) Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return spatial.ZeroVec3, false
}

func (sphericalOps) IncVel(s *State, v *spatial.Spatial6D) {
	v.Ang = v.Ang.Add(vec3From(s.Dq[:3]))
}

// IncAccOnVel adds no cross term: Dq is already the body-frame angular
// velocity contribution, not a derivative of a time-varying axis.
func (sphericalOps) IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D) {}

func (sphericalOps) IncAcc(s *State, a *spatial.Spatial6D) {
	a.Ang = a.Ang.Add(vec3From(s.Ddq[:3]))
}

func (sphericalOps) CalcTrq(s *State, f spatial.Spatial6D, tau []float64) {
	putVec3(tau, f.Ang)
}

func (sphericalOps) Neutral(s *State) {
	for i := 0; i < 3; i++ {
		s.Q[i], s.Dq[i], s.Ddq[i], s.Trq[i] = 0, 0, 0, 0
	}
}

func (sphericalOps) IsNeutral(s *State) bool {
	return isNeutralN(s.Q[:3], 3, spatial.DefaultTol)
}
