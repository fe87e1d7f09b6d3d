package joint

import "github.com/sugihara-lab/roki/spatial"

var xAxis = spatial.NewVec3(1, 0, 0)
var yAxis = spatial.NewVec3(0, 1, 0)

// universalOps implements the Universal (Hooke) joint kind: two
// rotations about non-parallel, intersecting axes. The first axis is the
// joint's fixed local x; the second is local y carried along by the first
// rotation.
type universalOps struct{}

func (universalOps) DOF() int { return 2 }

func (universalOps) SetDis(s *State, q []float64) { s.Q[0], s.Q[1] = q[0], q[1] }
func (universalOps) GetDis(s *State, q []float64) { q[0], q[1] = s.Q[0], s.Q[1] }
func (universalOps) SetDisContinuous(s *State, q []float64, dt float64) {
	s.Q[0] += wrapToPi(q[0] - s.Q[0])
	s.Q[1] += wrapToPi(q[1] - s.Q[1])
}
func (universalOps) CatDis(qOut []float64, k float64, dq []float64) { flatCat(qOut, k, dq, 2) }

// SubDis wraps both angles, matching SetDisContinuous.
func (universalOps) SubDis(qA, qB []float64, out []float64) {
	out[0] = wrapToPi(qA[0] - qB[0])
	out[1] = wrapToPi(qA[1] - qB[1])
}

func (universalOps) SetVel(s *State, v []float64)   { s.Dq[0], s.Dq[1] = v[0], v[1] }
func (universalOps) GetVel(s *State, v []float64)   { v[0], v[1] = s.Dq[0], s.Dq[1] }
func (universalOps) SetAcc(s *State, a []float64)   { s.Ddq[0], s.Ddq[1] = a[0], a[1] }
func (universalOps) GetAcc(s *State, a []float64)   { a[0], a[1] = s.Ddq[0], s.Ddq[1] }
func (universalOps) SetTrq(s *State, tau []float64) { s.Trq[0], s.Trq[1] = tau[0], tau[1] }
func (universalOps) GetTrq(s *State, tau []float64) { tau[0], tau[1] = s.Trq[0], s.Trq[1] }

// axis2 returns the second rotation axis, the local y axis carried along by
// the first rotation about x.
func (universalOps) axis2(s *State) spatial.Vec3 {
	return spatial.FromAxisAngle(xAxis, s.Q[0]).MulVec3(yAxis)
}

func (universalOps) JointTransform(s *State) spatial.Frame3D {
	r1 := spatial.FromAxisAngle(xAxis, s.Q[0])
	r2 := spatial.FromAxisAngle(yAxis, s.Q[1])
	return spatial.NewFrame3D(spatial.ZeroVec3, r1.Mul(r2))
}

func (ops universalOps) Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return spatial.ZeroVec3, false
}

func (ops universalOps) IncVel(s *State, v *spatial.Spatial6D) {
	v.Ang = v.Ang.Add(xAxis.Mul(s.Dq[0])).Add(ops.axis2(s).Mul(s.Dq[1]))
}

// IncAccOnVel adds the internal cross-coupling term produced by axis2
// itself rotating (at rate Dq[0]) while the second joint velocity rides on
// it: d/dt(axis2)*Dq[1] = (axis1 x axis2)*Dq[0]*Dq[1].
func (ops universalOps) IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D) {
	a2 := ops.axis2(s)
	a.Ang = a.Ang.Add(xAxis.Cross(a2).Mul(s.Dq[0] * s.Dq[1]))
}

func (ops universalOps) IncAcc(s *State, a *spatial.Spatial6D) {
	a.Ang = a.Ang.Add(xAxis.Mul(s.Ddq[0])).Add(ops.axis2(s).Mul(s.Ddq[1]))
}

func (ops universalOps) CalcTrq(s *State, f spatial.Spatial6D, tau []float64) {
	tau[0] = f.Ang.Dot(xAxis)
	tau[1] = f.Ang.Dot(ops.axis2(s))
}

func (universalOps) Neutral(s *State) {
	for i := 0; i < 2; i++ {
		s.Q[i], s.Dq[i], s.Ddq[i], s.Trq[i] = 0, 0, 0, 0
	}
}

func (universalOps) IsNeutral(s *State) bool {
	return isNeutralN(s.Q[:2], 2, spatial.DefaultTol)
}
