package joint

import "github.com/sugihara-lab/roki/spatial"

// Kind is a joint kind tag from the closed set the chain understands.
type Kind int

// The closed set of joint kinds, per the fixed DOF/semantics table.
const (
	Fixed Kind = iota
	Revolute
	Prismatic
	Cylindrical
	Universal
	Spherical
	Free
	Brake
)

// String renders the kind's canonical configuration-file token. Brake's
// token stays "break" for wire compatibility even though the Go identifier
// avoids the reserved word.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Revolute:
		return "revolute"
	case Prismatic:
		return "prismatic"
	case Cylindrical:
		return "cylindrical"
	case Universal:
		return "universal"
	case Spherical:
		return "spherical"
	case Free:
		return "free"
	case Brake:
		return "break"
	default:
		return "unknown"
	}
}

// DOF returns the kind's fixed degree-of-freedom count.
func (k Kind) DOF() int {
	return opsTable[k].DOF()
}

// ops returns the capability implementation bound to this kind.
func (k Kind) ops() kindOps {
	return opsTable[k]
}

// kindOps is the uniform capability set every joint kind implements.
// DOF-0 kinds (Fixed, Brake) reduce most of these to no-ops.
type kindOps interface {
	DOF() int

	SetDis(s *State, q []float64)
	GetDis(s *State, q []float64)
	SetDisContinuous(s *State, q []float64, dt float64)
	CatDis(qOut []float64, k float64, dq []float64)
	SubDis(qA, qB []float64, out []float64)

	SetVel(s *State, v []float64)
	GetVel(s *State, v []float64)
	SetAcc(s *State, a []float64)
	GetAcc(s *State, a []float64)
	SetTrq(s *State, tau []float64)
	GetTrq(s *State, tau []float64)

	JointTransform(s *State) spatial.Frame3D
	Axis(s *State, originAtt spatial.Mat3) (spatial.Vec3, bool)

	IncVel(s *State, v *spatial.Spatial6D)
	IncAccOnVel(s *State, omega spatial.Vec3, a *spatial.Spatial6D)
	IncAcc(s *State, a *spatial.Spatial6D)
	CalcTrq(s *State, f spatial.Spatial6D, tau []float64)

	Neutral(s *State)
	IsNeutral(s *State) bool
}

var opsTable = map[Kind]kindOps{
	Fixed:       fixedOps{},
	Revolute:    revoluteOps{},
	Prismatic:   prismaticOps{},
	Cylindrical: cylindricalOps{},
	Universal:   universalOps{},
	Spherical:   sphericalOps{},
	Free:        freeOps{},
	Brake:       brakeOps{},
}

// registry is the process-wide name lookup table. Aliases ("hooke",
// "floating") are accepted for the common robot-description vocabulary.
var registry = map[string]Kind{
	"fixed":       Fixed,
	"revolute":    Revolute,
	"prismatic":   Prismatic,
	"cylindrical": Cylindrical,
	"universal":   Universal,
	"hooke":       Universal,
	"spherical":   Spherical,
	"free":        Free,
	"floating":    Free,
	"break":       Brake,
}

// Lookup resolves a joint kind by its configuration-file name.
func Lookup(name string) (Kind, bool) {
	k, ok := registry[name]
	return k, ok
}
