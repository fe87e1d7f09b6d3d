package joint

import (
	"math"

	"github.com/sugihara-lab/roki/spatial"
)

// RevoluteTorsion extracts the scalar rotation about z encoded in dev's
// attitude (the component a revolute joint's single DOF can explain) and
// the residual: the rotation left over once that z rotation is divided
// back out, as a rotation vector. A dev produced by an ideal revolute
// joint has a near-zero residual; a nonzero residual is the off-axis
// rotation the joint's single DOF cannot represent.
func RevoluteTorsion(dev spatial.Frame3D) (q float64, residual spatial.Vec3) {
	r := dev.Att
	q = math.Atan2(r.At(1, 0)-r.At(0, 1), r.At(0, 0)+r.At(1, 1))
	rz := spatial.FromAxisAngle(zAxis, q)
	remaining := rz.T().Mul(r)
	residual = spatial.ToRotVec(remaining)
	return q, residual
}

// PrismaticTorsion extracts the scalar translation along z encoded in
// dev's position (the component a prismatic joint's single DOF can
// explain) and the residual: the other two (x, y) position components the
// joint's single DOF cannot represent.
func PrismaticTorsion(dev spatial.Frame3D) (q float64, residual spatial.Vec3) {
	q = dev.Pos.Z
	residual = spatial.NewVec3(dev.Pos.X, dev.Pos.Y, 0)
	return q, residual
}
