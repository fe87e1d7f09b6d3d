package chain

import (
	"math"
	"testing"

	"github.com/sugihara-lab/roki/joint"
	"github.com/sugihara-lab/roki/spatial"
	"go.viam.com/test"
)

// spinner builds a single revolute body spinning about world z with a
// diagonal inertia tensor and its COM on the axis, the textbook case where
// KE and momentum have closed forms.
func spinner(izz, omega float64) *Chain {
	c := New("spinner")
	l := NewLink("rotor", joint.New("rotor", joint.Revolute))
	l.Inertia = spatial.SpatialInertia{
		Mass: 1.0, COM: spatial.ZeroVec3,
		Inertia: spatial.NewMat3(1, 0, 0, 0, 1, 0, 0, 0, izz),
	}
	c.AddLink(-1, l)
	c.Gravity = spatial.ZeroVec3
	c.ID([]float64{0}, []float64{omega}, []float64{0}, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	return c
}

func TestKineticEnergyOfSpinningBody(t *testing.T) {
	c := spinner(2.0, 1.5)
	// KE = 1/2 * Izz * omega^2
	test.That(t, c.KineticEnergy(), test.ShouldAlmostEqual, 0.5*2.0*1.5*1.5, 1e-9)
}

func TestAngularMomentumOfSpinningBody(t *testing.T) {
	c := spinner(2.0, 1.5)
	// L = Izz * omega about the spin axis.
	L := c.AngularMomentumAboutPoint(spatial.ZeroVec3)
	test.That(t, L.Z, test.ShouldAlmostEqual, 2.0*1.5, 1e-9)
	test.That(t, math.Abs(L.X), test.ShouldBeLessThan, 1e-9)
	test.That(t, math.Abs(L.Y), test.ShouldBeLessThan, 1e-9)

	// About the COM (on the axis) the answer is the same.
	test.That(t, c.AngularMomentum().Z, test.ShouldAlmostEqual, 2.0*1.5, 1e-9)
}

func TestCOMVelOfSlidingBody(t *testing.T) {
	c := New("slider")
	l := NewLink("cart", joint.New("cart", joint.Prismatic))
	l.Inertia = spatial.SpatialInertia{Mass: 3.0, COM: spatial.ZeroVec3, Inertia: spatial.IdentityMat3()}
	c.AddLink(-1, l)
	c.Gravity = spatial.ZeroVec3

	v := 0.8
	_, err := c.ID([]float64{0}, []float64{v}, []float64{0}, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	comVel := c.COMVel()
	test.That(t, comVel.Z, test.ShouldAlmostEqual, v, 1e-9)
	test.That(t, math.Abs(comVel.X), test.ShouldBeLessThan, 1e-9)

	comAcc := c.COMAcc()
	test.That(t, comAcc.Norm(), test.ShouldBeLessThan, 1e-9)
}

func TestNetExtWrenchShiftsToWorldOrigin(t *testing.T) {
	c := New("loaded")
	l := NewLink("beam", joint.New("beam", joint.Fixed))
	l.OriginFrame = spatial.NewFrame3D(spatial.NewVec3(1, 0, 0), spatial.IdentityMat3())
	c.AddLink(-1, l)
	c.UpdateFrame()

	l.AppendExtWrench(spatial.Spatial6D{Lin: spatial.NewVec3(0, 0, 5)})
	net := c.NetExtWrench()

	test.That(t, net.Lin.Z, test.ShouldAlmostEqual, 5.0, 1e-12)
	// Moment about the world origin: (1,0,0) x (0,0,5) = (0,-5,0).
	test.That(t, net.Ang.Y, test.ShouldAlmostEqual, -5.0, 1e-12)
	test.That(t, math.Abs(net.Ang.X), test.ShouldBeLessThan, 1e-12)
	test.That(t, math.Abs(net.Ang.Z), test.ShouldBeLessThan, 1e-12)
}

func TestGravityDirInRootFollowsRootAttitude(t *testing.T) {
	c := New("tilted")
	l := NewLink("base", joint.New("base", joint.Fixed))
	l.OriginFrame = spatial.NewFrame3DFromAxisAngle(spatial.ZeroVec3, spatial.NewVec3(1, 0, 0), -math.Pi/2)
	c.AddLink(-1, l)
	c.UpdateFrame()

	// World down (0,0,-1) seen from a base rolled -90 degrees about x is
	// the base's +y direction.
	d := c.GravityDirInRoot()
	test.That(t, d.Y, test.ShouldAlmostEqual, 1.0, 1e-9)
	test.That(t, math.Abs(d.X), test.ShouldBeLessThan, 1e-9)
	test.That(t, math.Abs(d.Z), test.ShouldBeLessThan, 1e-9)
}

// TestYawTorqueIsTorqueForceOverTorqueNormal pins the formula
// (tau . f) / (tau . d) against a hand-built root wrench: with the root at
// identity, tau=(1,2,5), f=(0,0,10) and d=(0,0,1), the ratio is 50/5.
func TestYawTorqueIsTorqueForceOverTorqueNormal(t *testing.T) {
	c := New("spun")
	l := NewLink("base", joint.New("base", joint.Fixed))
	c.AddLink(-1, l)
	c.UpdateFrame()

	l.Wrench = spatial.Spatial6D{Ang: spatial.NewVec3(1, 2, 5), Lin: spatial.NewVec3(0, 0, 10)}
	yaw, ok := c.YawTorque()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, yaw, test.ShouldAlmostEqual, 10.0, 1e-12)
}

func TestYawTorqueUndefinedForPlanarStaticChain(t *testing.T) {
	c := New("pendulum")
	l := NewLink("link1", joint.New("j1", joint.Revolute))
	l.OriginFrame = spatial.NewFrame3DFromAxisAngle(spatial.ZeroVec3, spatial.NewVec3(1, 0, 0), -math.Pi/2)
	l.Inertia = spatial.SpatialInertia{Mass: 2.0, COM: spatial.NewVec3(1, 0, 0), Inertia: spatial.ZeroMat3()}
	c.AddLink(-1, l)

	zero := []float64{0}
	_, err := c.ID(zero, zero, zero, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D)
	test.That(t, err, test.ShouldBeNil)

	// The root torque of a static chain in a vertical plane is horizontal,
	// so its projection onto the ground normal vanishes and the ratio is
	// undefined.
	_, ok := c.YawTorque()
	test.That(t, ok, test.ShouldBeFalse)
}

// TestZMPUndefinedInFreeFall is the documented degenerate path: with the
// support force along the ground normal at zero (free fall), ZMP and yaw
// torque both report no value rather than dividing by zero.
func TestZMPUndefinedInFreeFall(t *testing.T) {
	c := New("falling")
	l := NewLink("body", joint.New("body", joint.Free))
	l.Inertia = spatial.SpatialInertia{Mass: 1.0, COM: spatial.ZeroVec3, Inertia: spatial.IdentityMat3()}
	c.AddLink(-1, l)

	zero := make([]float64, 6)
	// Root acceleration equal to gravity: free fall, zero contact force.
	rootAcc := spatial.Spatial6D{Lin: c.Gravity}
	_, err := c.ID(zero, zero, zero, spatial.ZeroSpatial6D, rootAcc)
	test.That(t, err, test.ShouldBeNil)

	_, ok := c.ZMP()
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = c.YawTorque()
	test.That(t, ok, test.ShouldBeFalse)
}
