package joint

import "github.com/sugihara-lab/roki/spatial"

// fixedOps implements the Fixed joint kind: DOF 0, rigid connection. Every
// capability is identity/no-op.
type fixedOps struct{}

func (fixedOps) DOF() int { return 0 }

func (fixedOps) SetDis(*State, []float64)               {}
func (fixedOps) GetDis(*State, []float64)               {}
func (fixedOps) SetDisContinuous(*State, []float64, float64) {}
func (fixedOps) CatDis([]float64, float64, []float64)   {}
func (fixedOps) SubDis([]float64, []float64, []float64) {}

func (fixedOps) SetVel(*State, []float64) {}
func (fixedOps) GetVel(*State, []float64) {}
func (fixedOps) SetAcc(*State, []float64) {}
func (fixedOps) GetAcc(*State, []float64) {}
func (fixedOps) SetTrq(*State, []float64) {}
func (fixedOps) GetTrq(*State, []float64) {}

func (fixedOps) JointTransform(*State) spatial.Frame3D { return spatial.IdentityFrame3D() }
func (fixedOps) Axis(*State, spatial.Mat3) (spatial.Vec3, bool) {
	return spatial.ZeroVec3, false
}

func (fixedOps) IncVel(*State, *spatial.Spatial6D)                           {}
func (fixedOps) IncAccOnVel(*State, spatial.Vec3, *spatial.Spatial6D)        {}
func (fixedOps) IncAcc(*State, *spatial.Spatial6D)                           {}
func (fixedOps) CalcTrq(*State, spatial.Spatial6D, []float64)                {}

func (fixedOps) Neutral(*State)           {}
func (fixedOps) IsNeutral(*State) bool    { return true }
