package joint

import "github.com/sugihara-lab/roki/spatial"

// prismaticOps implements the Prismatic joint kind: one translational DOF
// along the joint's local z axis.
type prismaticOps struct{}

func (prismaticOps) DOF() int { return 1 }

func (prismaticOps) SetDis(s *State, q []float64)                   { s.Q[0] = q[0] }
func (prismaticOps) GetDis(s *State, q []float64)                   { q[0] = s.Q[0] }
func (prismaticOps) SetDisContinuous(s *State, q []float64, dt float64) { s.Q[0] = q[0] }
func (prismaticOps) CatDis(qOut []float64, k float64, dq []float64) { flatCat(qOut, k, dq, 1) }
func (prismaticOps) SubDis(qA, qB []float64, out []float64)         { flatSub(qA, qB, out, 1) }

func (prismaticOps) SetVel(s *State, v []float64)   { s.Dq[0] = v[0] }
func (prismaticOps) GetVel(s *State, v []float64)   { v[0] = s.Dq[0] }
func (prismaticOps) SetAcc(s *State, a []float64)   { s.Ddq[0] = a[0] }
func (prismaticOps) GetAcc(s *State, a []float64)   { a[0] = s.Ddq[0] }
func (prismaticOps) SetTrq(s *State, tau []float64) { s.Trq[0] = tau[0] }
func (prismaticOps) GetTrq(s *State, tau []float64) { tau[0] = s.Trq[0] }

func (prismaticOps) JointTransform(s *State) spatial.Frame3D {
	return spatial.NewFrame3D(zAxis.Mul(s.Q[0]), spatial.IdentityMat3())
}

func (prismaticOps) Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return originAtt.MulVec3(zAxis), true
}

func (prismaticOps) IncVel(s *State, v *spatial.Spatial6D) {
	v.Lin = v.Lin.Add(zAxis.Mul(s.Dq[0]))
}

// IncAccOnVel adds the Coriolis term 2*omega x v_joint produced by the
// joint's linear velocity riding in a frame that is itself rotating at
// omega (the pre-joint-contribution angular velocity, already transported
// into this link's frame by the caller).
func (prismaticOps) IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D) {
	vJoint := zAxis.Mul(s.Dq[0])
	a.Lin = a.Lin.Add(omega.Cross(vJoint).Mul(2))
}

func (prismaticOps) IncAcc(s *State, a *spatial.Spatial6D) {
	a.Lin = a.Lin.Add(zAxis.Mul(s.Ddq[0]))
}

func (prismaticOps) CalcTrq(s *State, f spatial.Spatial6D, tau []float64) {
	tau[0] = f.Lin.Dot(zAxis)
}

func (prismaticOps) Neutral(s *State) {
	s.Q[0], s.Dq[0], s.Ddq[0], s.Trq[0] = 0, 0, 0, 0
}

func (prismaticOps) IsNeutral(s *State) bool {
	return isNeutralN(s.Q[:1], 1, spatial.DefaultTol)
}
