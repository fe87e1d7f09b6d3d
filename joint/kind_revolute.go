package joint

import "github.com/sugihara-lab/roki/spatial"

var zAxis = spatial.NewVec3(0, 0, 1)

// revoluteOps implements the Revolute joint kind: one rotational DOF about
// the joint's local z axis.
type revoluteOps struct{}

func (revoluteOps) DOF() int { return 1 }

func (revoluteOps) SetDis(s *State, q []float64)             { s.Q[0] = q[0] }
func (revoluteOps) GetDis(s *State, q []float64)             { q[0] = s.Q[0] }
func (revoluteOps) CatDis(qOut []float64, k float64, dq []float64) { flatCat(qOut, k, dq, 1) }

// SubDis is the circle-manifold difference: the shortest signed angle from
// qB to qA, so a finite-differenced velocity never sees a 2*pi jump when
// the displacement crosses the +-pi boundary.
func (revoluteOps) SubDis(qA, qB []float64, out []float64) {
	out[0] = wrapToPi(qA[0] - qB[0])
}

// SetDisContinuous sets the displacement keeping q unwrapped across the
// +-pi boundary, so a velocity estimated by finite-differencing two
// consecutive displacements never sees a 2*pi jump.
func (revoluteOps) SetDisContinuous(s *State, q []float64, dt float64) {
	delta := wrapToPi(q[0] - s.Q[0])
	s.Q[0] += delta
}

func (revoluteOps) SetVel(s *State, v []float64) { s.Dq[0] = v[0] }
func (revoluteOps) GetVel(s *State, v []float64) { v[0] = s.Dq[0] }
func (revoluteOps) SetAcc(s *State, a []float64) { s.Ddq[0] = a[0] }
func (revoluteOps) GetAcc(s *State, a []float64) { a[0] = s.Ddq[0] }
func (revoluteOps) SetTrq(s *State, tau []float64) { s.Trq[0] = tau[0] }
func (revoluteOps) GetTrq(s *State, tau []float64) { tau[0] = s.Trq[0] }

func (revoluteOps) JointTransform(s *State) spatial.Frame3D {
	return spatial.NewFrame3D(spatial.ZeroVec3, spatial.FromAxisAngle(zAxis, s.Q[0]))
}

func (revoluteOps) Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return originAtt.MulVec3(zAxis), true
}

func (revoluteOps) IncVel(s *State, v *spatial.Spatial6D) {
	v.Ang = v.Ang.Add(zAxis.Mul(s.Dq[0]))
}

// IncAccOnVel adds no cross term: the rotation axis is invariant under the
// joint's own rotation, so spinning about it produces no first-order
// velocity-coupled acceleration term.
func (revoluteOps) IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D) {}

func (revoluteOps) IncAcc(s *State, a *spatial.Spatial6D) {
	a.Ang = a.Ang.Add(zAxis.Mul(s.Ddq[0]))
}

func (revoluteOps) CalcTrq(s *State, f spatial.Spatial6D, tau []float64) {
	tau[0] = f.Ang.Dot(zAxis)
}

func (revoluteOps) Neutral(s *State) {
	s.Q[0], s.Dq[0], s.Ddq[0], s.Trq[0] = 0, 0, 0, 0
}

func (revoluteOps) IsNeutral(s *State) bool {
	return isNeutralN(s.Q[:1], 1, spatial.DefaultTol)
}
