package joint

import "github.com/sugihara-lab/roki/spatial"

// MotorDriver is the minimal actuator contract a Joint can drive through,
// satisfied by the motor package's implementations. Declared here so joint
// needs no import of motor; motor types satisfy it through Name alone.
type MotorDriver interface {
	Name() string
}

// Joint binds a Kind's capability set to one State, plus identity and an
// optional actuator.
type Joint struct {
	Name  string
	Kind  Kind
	State State
	Motor MotorDriver
}

// New builds a neutral joint of the given kind.
func New(name string, kind Kind) *Joint {
	j := &Joint{Name: name, Kind: kind}
	j.Kind.ops().Neutral(&j.State)
	return j
}

// DOF returns the joint's degree-of-freedom count.
func (j *Joint) DOF() int { return j.Kind.DOF() }

func (j *Joint) SetDis(q []float64) { j.Kind.ops().SetDis(&j.State, q) }
func (j *Joint) GetDis(q []float64) { j.Kind.ops().GetDis(&j.State, q) }
func (j *Joint) SetDisContinuous(q []float64, dt float64) {
	j.Kind.ops().SetDisContinuous(&j.State, q, dt)
}
func (j *Joint) CatDis(qOut []float64, k float64, dq []float64) {
	j.Kind.ops().CatDis(qOut, k, dq)
}
func (j *Joint) SubDis(qA, qB, out []float64) { j.Kind.ops().SubDis(qA, qB, out) }

func (j *Joint) SetVel(v []float64)   { j.Kind.ops().SetVel(&j.State, v) }
func (j *Joint) GetVel(v []float64)   { j.Kind.ops().GetVel(&j.State, v) }
func (j *Joint) SetAcc(a []float64)   { j.Kind.ops().SetAcc(&j.State, a) }
func (j *Joint) GetAcc(a []float64)   { j.Kind.ops().GetAcc(&j.State, a) }
func (j *Joint) SetTrq(tau []float64) { j.Kind.ops().SetTrq(&j.State, tau) }
func (j *Joint) GetTrq(tau []float64) { j.Kind.ops().GetTrq(&j.State, tau) }

// Transform returns this joint's contribution to the link-to-parent frame,
// as a function of its current displacement.
func (j *Joint) Transform() spatial.Frame3D { return j.Kind.ops().JointTransform(&j.State) }

// Axis returns the joint's motion axis expressed in originAtt (the parent
// link's world attitude), when the kind has a single well-defined one.
func (j *Joint) Axis(originAtt spatial.Mat3) (spatial.Vec3, bool) {
	return j.Kind.ops().Axis(&j.State, originAtt)
}

// IncRate folds this joint's own velocity/acceleration contribution into a
// rigid-body rate already transported from the parent link, mirroring
// rkJointIncRate's order: add the joint's own velocity, then the
// velocity-coupled acceleration cross term (computed against the angular
// velocity as transported from the parent, before this joint's own
// contribution), then the joint's own acceleration.
func (j *Joint) IncRate(vel, acc *spatial.Spatial6D) {
	ops := j.Kind.ops()
	omega := vel.Ang
	ops.IncVel(&j.State, vel)
	ops.IncAccOnVel(&j.State, omega, acc)
	ops.IncAcc(&j.State, acc)
}

// CalcTrq projects a wrench (expressed in this joint's frame) onto the
// joint's generalized force/torque.
func (j *Joint) CalcTrq(f spatial.Spatial6D, tau []float64) { j.Kind.ops().CalcTrq(&j.State, f, tau) }

// Neutral resets the joint's displacement/velocity/acceleration/torque to
// zero.
func (j *Joint) Neutral() { j.Kind.ops().Neutral(&j.State) }

// IsNeutral reports whether the joint's displacement is at (or within
// tolerance of) its neutral position.
func (j *Joint) IsNeutral() bool { return j.Kind.ops().IsNeutral(&j.State) }
