package joint

import "github.com/sugihara-lab/roki/spatial"

// freeOps implements the Free (floating) joint kind: full 6-DOF rigid
// motion relative to the parent link. Q[0:3] is a rotation vector, Q[3:6]
// the translation; Dq/Ddq/Trq pack angular-then-linear the same way
// Spatial6D does.
type freeOps struct{}

func (freeOps) DOF() int { return 6 }

func (freeOps) SetDis(s *State, q []float64) { copyN(s.Q[:], q, 6) }
func (freeOps) GetDis(s *State, q []float64) { copyN(q, s.Q[:], 6) }
// SetDisContinuous stores the rotation part's nearest double-cover
// representative (see sphericalOps) and the translation as-is.
func (freeOps) SetDisContinuous(s *State, q []float64, dt float64) {
	putVec3(s.Q[:], nearestRotVec(vec3From(q[:3]), vec3From(s.Q[:3])))
	copyN(s.Q[3:], q[3:], 3)
}

// CatDis composes the rotational part via the exponential map and the
// translational part by flat addition (a first-order approximation valid
// for the small per-step displacements the chain integrator produces).
func (freeOps) CatDis(qOut []float64, k float64, dq []float64) {
	cur := spatial.FromRotVec(vec3From(qOut[:3]))
	step := spatial.FromRotVec(vec3From(dq[:3]).Mul(k))
	putVec3(qOut, spatial.ToRotVec(cur.Mul(step)))
	flatCat(qOut[3:6], k, dq[3:6], 3)
}

func (freeOps) SubDis(qA, qB []float64, out []float64) {
	ra := spatial.FromRotVec(vec3From(qA[:3]))
	rb := spatial.FromRotVec(vec3From(qB[:3]))
	putVec3(out, spatial.ToRotVec(rb.T().Mul(ra)))
	flatSub(qA[3:6], qB[3:6], out[3:6], 3)
}

func (freeOps) SetVel(s *State, v []float64)   { copyN(s.Dq[:], v, 6) }
func (freeOps) GetVel(s *State, v []float64)   { copyN(v, s.Dq[:], 6) }
func (freeOps) SetAcc(s *State, a []float64)   { copyN(s.Ddq[:], a, 6) }
func (freeOps) GetAcc(s *State, a []float64)   { copyN(a, s.Ddq[:], 6) }
func (freeOps) SetTrq(s *State, tau []float64) { copyN(s.Trq[:], tau, 6) }
func (freeOps) GetTrq(s *State, tau []float64) { copyN(tau, s.Trq[:], 6) }

func (freeOps) JointTransform(s *State) spatial.Frame3D {
	return spatial.NewFrame3D(vec3From(s.Q[3:6]), spatial.FromRotVec(vec3From(s.Q[:3])))
}

func (freeOps) Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return spatial.ZeroVec3, false
}

func (freeOps) IncVel(s *State, v *spatial.Spatial6D) {
	v.Ang = v.Ang.Add(vec3From(s.Dq[:3]))
	v.Lin = v.Lin.Add(vec3From(s.Dq[3:6]))
}

// IncAccOnVel adds the Coriolis term carried by the translational velocity
// riding in the rotating parent frame, the same 2*omega x v term prismatic
// needs; the rotational velocity contributes no such term (see
// sphericalOps.IncAccOnVel).
func (freeOps) IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D) {
	vLin := vec3From(s.Dq[3:6])
	a.Lin = a.Lin.Add(omega.Cross(vLin).Mul(2))
}

func (freeOps) IncAcc(s *State, a *spatial.Spatial6D) {
	a.Ang = a.Ang.Add(vec3From(s.Ddq[:3]))
	a.Lin = a.Lin.Add(vec3From(s.Ddq[3:6]))
}

func (freeOps) CalcTrq(s *State, f spatial.Spatial6D, tau []float64) {
	putVec3(tau, f.Ang)
	putVec3(tau[3:6], f.Lin)
}

func (freeOps) Neutral(s *State) {
	for i := 0; i < 6; i++ {
		s.Q[i], s.Dq[i], s.Ddq[i], s.Trq[i] = 0, 0, 0, 0
	}
}

func (freeOps) IsNeutral(s *State) bool {
	return isNeutralN(s.Q[:6], 6, spatial.DefaultTol)
}
