package chain

import (
	"math"
	"testing"

	"github.com/sugihara-lab/roki/joint"
	"github.com/sugihara-lab/roki/spatial"
	"go.viam.com/test"
)

// singleRevoluteArm builds a one-link pendulum: a revolute joint whose
// origin frame is rotated so the joint's local z axis (its rotation axis)
// points along world y, with a point mass offset along local x by length
// so at q=0 the arm lies horizontal along world x — a posture where
// gravity produces a nonzero torque about the joint's axis.
func singleRevoluteArm(mass, length float64) *Chain {
	c := New("pendulum")
	l := NewLink("link1", joint.New("j1", joint.Revolute))
	l.OriginFrame = spatial.NewFrame3DFromAxisAngle(spatial.ZeroVec3, spatial.NewVec3(1, 0, 0), -math.Pi/2)
	l.Inertia = spatial.SpatialInertia{
		Mass:    mass,
		COM:     spatial.NewVec3(length, 0, 0),
		Inertia: spatial.ZeroMat3(),
	}
	c.AddLink(-1, l)
	return c
}

func TestFKZeroPostureIsIdentityChain(t *testing.T) {
	c := singleRevoluteArm(1.0, 1.0)
	com, err := c.FK(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, com.X, test.ShouldAlmostEqual, 1.0, 1e-12)
	test.That(t, com.Y, test.ShouldAlmostEqual, 0.0, 1e-12)
	test.That(t, com.Z, test.ShouldAlmostEqual, 0.0, 1e-12)
}

func TestSingleRevoluteGravityTorque(t *testing.T) {
	c := singleRevoluteArm(2.0, 1.5)
	c.Gravity = spatial.NewVec3(0, 0, -9.8)

	q := []float64{0} // arm along +x, horizontal: max gravity torque
	dq := []float64{0}
	ddq := []float64{0}
	tau, err := c.ID(q, dq, ddq, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	// Torque about the revolute's z axis (world +y) needed to hold the
	// horizontal arm: gravity's moment about world +y is +mass*g*length,
	// so the holding torque is its negative.
	want := -(2.0 * 9.8 * 1.5)
	test.That(t, tau[0], test.ShouldAlmostEqual, want, 1e-6)
}

func TestZeroMassProducesZeroTorque(t *testing.T) {
	zeroMass := singleRevoluteArm(0, 1.5)
	tau, err := zeroMass.ID([]float64{0.3}, []float64{0}, []float64{0}, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tau[0], test.ShouldAlmostEqual, 0.0, 1e-9)
}

// twoLinkPlanarArm builds two revolute links in series, each offset along
// local x by length from its parent, matching a classic planar manipulator
// used to cross-check RNE against H*ddq+h.
func twoLinkPlanarArm(m1, l1, m2, l2 float64) *Chain {
	c := New("arm2")
	link1 := NewLink("link1", joint.New("j1", joint.Revolute))
	link1.Inertia = spatial.SpatialInertia{Mass: m1, COM: spatial.NewVec3(l1, 0, 0), Inertia: spatial.ZeroMat3()}
	i1, _ := c.AddLink(-1, link1)

	link2 := NewLink("link2", joint.New("j2", joint.Revolute))
	link2.OriginFrame = spatial.NewFrame3D(spatial.NewVec3(l1, 0, 0), spatial.IdentityMat3())
	link2.Inertia = spatial.SpatialInertia{Mass: m2, COM: spatial.NewVec3(l2, 0, 0), Inertia: spatial.ZeroMat3()}
	c.AddLink(i1, link2)
	return c
}

func TestTwoLinkArmRNEMatchesMassMatrixForm(t *testing.T) {
	c := twoLinkPlanarArm(1.0, 0.5, 0.8, 0.4)
	c.Gravity = spatial.NewVec3(0, 0, -9.8)

	q := []float64{0.3, -0.5}
	dq := []float64{0.2, -0.1}
	ddq := []float64{0.05, 0.15}

	tau, err := c.ID(q, dq, ddq, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	H, h, err := c.InertiaMatBiasVec(q, dq)
	test.That(t, err, test.ShouldBeNil)

	for i := 0; i < 2; i++ {
		predicted := h[i]
		for j := 0; j < 2; j++ {
			predicted += H.At(i, j) * ddq[j]
		}
		test.That(t, predicted, test.ShouldAlmostEqual, tau[i], 1e-6)
	}
}

func TestMassMatrixIsSymmetric(t *testing.T) {
	c := twoLinkPlanarArm(1.0, 0.5, 0.8, 0.4)
	q := []float64{0.3, -0.5}
	dq := []float64{0, 0}
	H, _, err := c.InertiaMatBiasVec(q, dq)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, H.At(0, 1), test.ShouldAlmostEqual, H.At(1, 0), 1e-9)
}

func TestFreeBaseChainInFreeFallHasZeroTorque(t *testing.T) {
	c := New("floating")
	l := NewLink("base", joint.New("base", joint.Free))
	l.Inertia = spatial.SpatialInertia{Mass: 3.0, COM: spatial.ZeroVec3, Inertia: spatial.IdentityMat3()}
	c.AddLink(-1, l)

	n := c.TotalDOF()
	test.That(t, n, test.ShouldEqual, 6)

	zero := make([]float64, n)
	// Base acceleration exactly cancels gravity (free fall): no joint
	// actuation is required to produce it.
	rootAcc := spatial.Spatial6D{Ang: spatial.ZeroVec3, Lin: c.Gravity}
	tau, err := c.ID(zero, zero, zero, spatial.ZeroSpatial6D, rootAcc)
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < n; i++ {
		test.That(t, tau[i], test.ShouldAlmostEqual, 0.0, 1e-9)
	}
}

func TestZMPUnderStaticPostureProjectsCOM(t *testing.T) {
	c := singleRevoluteArm(2.0, 1.0)
	c.Gravity = spatial.NewVec3(0, 0, -9.8)
	zero := []float64{0}
	_, err := c.ID(zero, zero, zero, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	zmp, ok := c.ZMP()
	test.That(t, ok, test.ShouldBeTrue)
	com := c.UpdateCOM()
	test.That(t, zmp.X, test.ShouldAlmostEqual, com.X, 1e-6)
	test.That(t, zmp.Y, test.ShouldAlmostEqual, com.Y, 1e-6)
}

func TestCloneIsIndependent(t *testing.T) {
	c := singleRevoluteArm(1.0, 1.0)
	c.FK([]float64{0.2})
	clone := c.Clone()
	test.That(t, clone.InstanceID, test.ShouldNotResemble, c.InstanceID)

	clone.SetJointDisAll([]float64{0.9})
	q := make([]float64, 1)
	c.GetJointDisAll(q)
	test.That(t, q[0], test.ShouldAlmostEqual, 0.2, 1e-12)
}

// TestCloneDoesNotShareShapeStorage is the resource-ownership half of the
// clone contract: clones share nothing.
// Mutating a clone's shape vertices in place must not perturb the source.
func TestCloneDoesNotShareShapeStorage(t *testing.T) {
	c := singleRevoluteArm(1.0, 1.0)
	c.Links[0].Shape = PointCloud{Verts: []spatial.Vec3{spatial.NewVec3(1, 0, 0)}}

	clone := c.Clone()
	clonePC := clone.Links[0].Shape.(PointCloud)
	clonePC.Verts[0] = spatial.NewVec3(9, 9, 9)

	origPC := c.Links[0].Shape.(PointCloud)
	test.That(t, origPC.Verts[0].X, test.ShouldAlmostEqual, 1.0, 1e-12)
}

// TestZeroTotalMassFallsBackToUnweightedCOM exercises the degenerate
// zero-mass path: the COM average must stay finite and equal the
// unweighted mean of the link COM positions.
func TestZeroTotalMassFallsBackToUnweightedCOM(t *testing.T) {
	c := singleRevoluteArm(0, 1.5)
	com, err := c.FK(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.IsNaN(com.X), test.ShouldBeFalse)
	test.That(t, com.X, test.ShouldAlmostEqual, 1.5, 1e-12)
}

func TestOffsetTablePartitionsTotalDOF(t *testing.T) {
	c := twoLinkPlanarArm(1, 0.5, 1, 0.5)
	test.That(t, c.LinkOffset(0), test.ShouldEqual, 0)
	test.That(t, c.LinkOffset(1), test.ShouldEqual, 1)
	test.That(t, c.TotalDOF(), test.ShouldEqual, 2)
}

// TestOffsetTableIsMinusOneForZeroDOFLinks checks the offset-table
// invariant: off[i] == -1 iff DOF(link i) == 0.
func TestOffsetTableIsMinusOneForZeroDOFLinks(t *testing.T) {
	c := New("mixed")
	fixed := NewLink("bracket", joint.New("fixed", joint.Fixed))
	i0, _ := c.AddLink(-1, fixed)
	rev := NewLink("j1", joint.New("j1", joint.Revolute))
	c.AddLink(i0, rev)

	test.That(t, c.LinkOffset(0), test.ShouldEqual, -1)
	test.That(t, c.LinkOffset(1), test.ShouldEqual, 0)
	test.That(t, c.TotalDOF(), test.ShouldEqual, 1)
}

// TestExtWrenchResultantSumsAppendedEntries covers the external wrench
// list operations: append accumulates, clear empties, and the
// resultant is their sum.
func TestExtWrenchResultantSumsAppendedEntries(t *testing.T) {
	c := singleRevoluteArm(1.0, 1.0)
	l := c.Links[0]

	l.AppendExtWrench(spatial.Spatial6D{Lin: spatial.NewVec3(1, 0, 0)})
	l.AppendExtWrench(spatial.Spatial6D{Lin: spatial.NewVec3(0, 2, 0)})
	r := l.ResultantExtWrench()
	test.That(t, r.Lin.X, test.ShouldAlmostEqual, 1.0, 1e-12)
	test.That(t, r.Lin.Y, test.ShouldAlmostEqual, 2.0, 1e-12)

	l.ClearExtWrenches()
	r = l.ResultantExtWrench()
	test.That(t, r.Lin.X, test.ShouldAlmostEqual, 0.0, 1e-12)
	test.That(t, r.Lin.Y, test.ShouldAlmostEqual, 0.0, 1e-12)
}

// TestExtWrenchOpposesJointTorque is a sanity check that an external
// wrench applied at a link is actually consumed by UpdateWrench: an
// external torque about the joint axis equal to the gravity-holding joint
// torque leaves the joint torque at zero.
func TestExtWrenchOpposesJointTorque(t *testing.T) {
	c := singleRevoluteArm(2.0, 1.5)
	c.Gravity = spatial.NewVec3(0, 0, -9.8)

	baseline, err := c.ID([]float64{0}, []float64{0}, []float64{0}, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	c.Links[0].AppendExtWrench(spatial.Spatial6D{Ang: spatial.NewVec3(0, 0, baseline[0])})
	withExt, err := c.ID([]float64{0}, []float64{0}, []float64{0}, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, withExt[0], test.ShouldAlmostEqual, 0.0, 1e-9)
}

func TestZMPAtHeightShiftsWithPlane(t *testing.T) {
	c := singleRevoluteArm(2.0, 1.0)
	c.Gravity = spatial.NewVec3(0, 0, -9.8)
	zero := []float64{0}
	_, err := c.ID(zero, zero, zero, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	ground, ok := c.ZMPAtHeight(0)
	test.That(t, ok, test.ShouldBeTrue)
	raised, ok := c.ZMPAtHeight(1.0)
	test.That(t, ok, test.ShouldBeTrue)

	// A static horizontal arm on a fixed root has a purely vertical
	// support force, so shifting the reference plane
	// does not move the horizontal (x, y) projection of the ZMP.
	test.That(t, raised.X, test.ShouldAlmostEqual, ground.X, 1e-6)
	test.That(t, raised.Y, test.ShouldAlmostEqual, ground.Y, 1e-6)
}
