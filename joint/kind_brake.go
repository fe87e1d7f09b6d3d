package joint

import "github.com/sugihara-lab/roki/spatial"

// brakeOps implements the Brake joint kind. A brake is kinematically a rigid
// connection, same as Fixed, but is kept as a distinct tag so a chain can
// record "this joint is locked" separately from "this joint was designed
// fixed" (the config loader and any future unlock logic act on the tag).
type brakeOps struct{}

func (brakeOps) DOF() int { return 0 }

func (brakeOps) SetDis(*State, []float64)                   {}
func (brakeOps) GetDis(*State, []float64)                   {}
func (brakeOps) SetDisContinuous(*State, []float64, float64) {}
func (brakeOps) CatDis([]float64, float64, []float64)       {}
func (brakeOps) SubDis([]float64, []float64, []float64)     {}

func (brakeOps) SetVel(*State, []float64) {}
func (brakeOps) GetVel(*State, []float64) {}
func (brakeOps) SetAcc(*State, []float64) {}
func (brakeOps) GetAcc(*State, []float64) {}
func (brakeOps) SetTrq(*State, []float64) {}
func (brakeOps) GetTrq(*State, []float64) {}

func (brakeOps) JointTransform(*State) spatial.Frame3D { return spatial.IdentityFrame3D() }
func (brakeOps) Axis(*State, spatial.Mat3) (spatial.Vec3, bool) {
	return spatial.ZeroVec3, false
}

func (brakeOps) IncVel(*State, *spatial.Spatial6D)                    {}
func (brakeOps) IncAccOnVel(*State, spatial.Vec3, *spatial.Spatial6D) {}
func (brakeOps) IncAcc(*State, *spatial.Spatial6D)                    {}
func (brakeOps) CalcTrq(*State, spatial.Spatial6D, []float64)         {}

func (brakeOps) Neutral(*State)        {}
func (brakeOps) IsNeutral(*State) bool { return true }
