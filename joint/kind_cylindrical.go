package joint

import "github.com/sugihara-lab/roki/spatial"

// cylindricalOps implements the Cylindrical joint kind: independent
// translation (Q[0]) and rotation (Q[1]) about the same local z axis. The
// two DOFs commute (translating along the axis you're rotating about
// doesn't depend on order), so JointTransform applies them in a single
// frame.
type cylindricalOps struct{}

func (cylindricalOps) DOF() int { return 2 }

func (cylindricalOps) SetDis(s *State, q []float64) { s.Q[0], s.Q[1] = q[0], q[1] }
func (cylindricalOps) GetDis(s *State, q []float64) { q[0], q[1] = s.Q[0], s.Q[1] }
func (cylindricalOps) SetDisContinuous(s *State, q []float64, dt float64) {
	s.Q[0] = q[0]
	s.Q[1] += wrapToPi(q[1] - s.Q[1])
}
func (cylindricalOps) CatDis(qOut []float64, k float64, dq []float64) { flatCat(qOut, k, dq, 2) }

// SubDis subtracts the translation flat and the rotation on the circle,
// matching SetDisContinuous's wraparound handling.
func (cylindricalOps) SubDis(qA, qB []float64, out []float64) {
	out[0] = qA[0] - qB[0]
	out[1] = wrapToPi(qA[1] - qB[1])
}

func (cylindricalOps) SetVel(s *State, v []float64)   { s.Dq[0], s.Dq[1] = v[0], v[1] }
func (cylindricalOps) GetVel(s *State, v []float64)   { v[0], v[1] = s.Dq[0], s.Dq[1] }
func (cylindricalOps) SetAcc(s *State, a []float64)   { s.Ddq[0], s.Ddq[1] = a[0], a[1] }
func (cylindricalOps) GetAcc(s *State, a []float64)   { a[0], a[1] = s.Ddq[0], s.Ddq[1] }
func (cylindricalOps) SetTrq(s *State, tau []float64) { s.Trq[0], s.Trq[1] = tau[0], tau[1] }
func (cylindricalOps) GetTrq(s *State, tau []float64) { tau[0], tau[1] = s.Trq[0], s.Trq[1] }

func (cylindricalOps) JointTransform(s *State) spatial.Frame3D {
	return spatial.NewFrame3D(zAxis.Mul(s.Q[0]), spatial.FromAxisAngle(zAxis, s.Q[1]))
}

func (cylindricalOps) Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return originAtt.MulVec3(zAxis), true
}

func (cylindricalOps) IncVel(s *State, v *spatial.Spatial6D) {
	v.Lin = v.Lin.Add(zAxis.Mul(s.Dq[0]))
	v.Ang = v.Ang.Add(zAxis.Mul(s.Dq[1]))
}

func (cylindricalOps) IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D) {
	vJoint := zAxis.Mul(s.Dq[0])
	a.Lin = a.Lin.Add(omega.Cross(vJoint).Mul(2))
}

func (cylindricalOps) IncAcc(s *State, a *spatial.Spatial6D) {
	a.Lin = a.Lin.Add(zAxis.Mul(s.Ddq[0]))
	a.Ang = a.Ang.Add(zAxis.Mul(s.Ddq[1]))
}

func (cylindricalOps) CalcTrq(s *State, f spatial.Spatial6D, tau []float64) {
	tau[0] = f.Lin.Dot(zAxis)
	tau[1] = f.Ang.Dot(zAxis)
}

func (cylindricalOps) Neutral(s *State) {
	for i := 0; i < 2; i++ {
		s.Q[i], s.Dq[i], s.Ddq[i], s.Trq[i] = 0, 0, 0, 0
	}
}

func (cylindricalOps) IsNeutral(s *State) bool {
	return isNeutralN(s.Q[:2], 2, spatial.DefaultTol)
}
