package chain

import "github.com/sugihara-lab/roki/spatial"

// COMVel returns the chain's mass-weighted world center-of-mass velocity.
// Valid after UpdateFrame and UpdateRate.
func (c *Chain) COMVel() spatial.Vec3 {
	total := c.Mass()
	sum := spatial.ZeroVec3
	for _, l := range c.Links {
		vPoint := l.Vel.Lin.Add(l.Vel.Ang.Cross(l.Inertia.COM))
		sum = sum.Add(l.WorldFrame.Att.MulVec3(vPoint).Mul(l.Inertia.Mass))
	}
	if spatial.IsTiny(total) {
		c.log.Warnw("chain has zero total mass, COMVel falling back to unweighted average", "chain", c.Name)
		if len(c.Links) == 0 {
			return spatial.ZeroVec3
		}
		return sum.Mul(1 / float64(len(c.Links)))
	}
	return sum.Mul(1 / total)
}

// COMAcc returns the chain's mass-weighted world center-of-mass
// acceleration. Valid after UpdateFrame and UpdateRate.
func (c *Chain) COMAcc() spatial.Vec3 {
	total := c.Mass()
	sum := spatial.ZeroVec3
	for _, l := range c.Links {
		aPoint := spatial.PointAcc(l.Vel.Ang, l.Vel.Lin, l.Acc.Ang, l.Acc.Lin, l.Inertia.COM)
		sum = sum.Add(l.WorldFrame.Att.MulVec3(aPoint).Mul(l.Inertia.Mass))
	}
	if spatial.IsTiny(total) {
		c.log.Warnw("chain has zero total mass, COMAcc falling back to unweighted average", "chain", c.Name)
		if len(c.Links) == 0 {
			return spatial.ZeroVec3
		}
		return sum.Mul(1 / float64(len(c.Links)))
	}
	return sum.Mul(1 / total)
}

// KineticEnergy returns the chain's total kinetic energy, the sum of each
// link's own (frame-invariant) kinetic energy. Valid after UpdateRate.
func (c *Chain) KineticEnergy() float64 {
	sum := 0.0
	for _, l := range c.Links {
		sum += l.Inertia.KineticEnergy(l.Vel)
	}
	return sum
}

// AngularMomentumAboutPoint returns the chain's total angular momentum
// about an arbitrary point p, expressed in the world frame. Valid after
// UpdateFrame and UpdateRate.
func (c *Chain) AngularMomentumAboutPoint(p spatial.Vec3) spatial.Vec3 {
	total := spatial.ZeroVec3
	for _, l := range c.Links {
		angMomO, linMom := l.Inertia.Momentum(l.Vel)
		angWorld := l.WorldFrame.Att.MulVec3(angMomO)
		linWorld := l.WorldFrame.Att.MulVec3(linMom)
		r := l.WorldFrame.Pos.Sub(p)
		total = total.Add(angWorld).Add(r.Cross(linWorld))
	}
	return total
}

// AngularMomentum returns the chain's total angular momentum about its own
// current center of mass.
func (c *Chain) AngularMomentum() spatial.Vec3 {
	return c.AngularMomentumAboutPoint(c.UpdateCOM())
}

// GravityDir returns the unit vector pointing in the direction gravity
// pulls (down), in the world frame.
func (c *Chain) GravityDir() spatial.Vec3 {
	n := c.Gravity.Norm()
	if spatial.IsTiny(n) {
		return spatial.NewVec3(0, 0, -1)
	}
	return c.Gravity.Mul(1 / n)
}

// GravityDirInRoot returns the direction gravity pulls, expressed in the
// root link's own body frame (for the usual -z world gravity this is the
// negated third row of the root's attitude matrix). Valid after
// UpdateFrame.
func (c *Chain) GravityDirInRoot() spatial.Vec3 {
	if len(c.Links) == 0 {
		return c.GravityDir()
	}
	return c.Links[0].WorldFrame.Att.MulTVec3(c.GravityDir())
}

// rootWrench returns the single root link's accumulated wrench (force,
// torque), expressed in the world frame, and the world point it acts at.
// Requires a chain with exactly one root link and a prior call to
// UpdateWrench (directly or via ID) with the state ZMP/YawTorque should
// reflect.
func (c *Chain) rootWrench() (p0 spatial.Vec3, force, torque spatial.Vec3, err error) {
	root := -1
	for i, l := range c.Links {
		if l.Parent < 0 {
			if root >= 0 {
				return spatial.ZeroVec3, spatial.ZeroVec3, spatial.ZeroVec3, ErrFatalInvariant
			}
			root = i
		}
	}
	if root < 0 {
		return spatial.ZeroVec3, spatial.ZeroVec3, spatial.ZeroVec3, ErrEmptyChain
	}
	l := c.Links[root]
	force = l.WorldFrame.Att.MulVec3(l.Wrench.Lin)
	torque = l.WorldFrame.Att.MulVec3(l.Wrench.Ang)
	return l.WorldFrame.Pos, force, torque, nil
}

// ZMPAtHeight computes the zero-moment point on the horizontal plane at
// world height z: the point on that plane about which the ground-reaction
// wrench (the chain's accumulated root wrench, from a prior UpdateWrench/
// ID call) has no moment component orthogonal to gravity:
// zmp = p0 + (d x tau + (z - p0.z)*f) / (d.f). Returns ok=false when the
// support force along the gravity normal is too close to zero for the
// point to be well defined (the chain is airborne, or the gravity-aligned
// net force vanishes).
func (c *Chain) ZMPAtHeight(z float64) (spatial.Vec3, bool) {
	p0, f, n, err := c.rootWrench()
	if err != nil {
		return spatial.ZeroVec3, false
	}
	d := c.GravityDir().Mul(-1) // ground normal, opposing gravity
	denom := f.Dot(d)
	if spatial.IsTiny(denom) {
		c.log.Warnw("ZMP undefined: support force along ground normal is near zero", "chain", c.Name)
		return spatial.ZeroVec3, false
	}
	numerator := d.Cross(n).Add(f.Mul(z - p0.Z))
	return p0.Add(numerator.Mul(1 / denom)), true
}

// ZMP computes the zero-moment point on the ground plane (z=0 in world
// coordinates); see ZMPAtHeight.
func (c *Chain) ZMP() (spatial.Vec3, bool) {
	return c.ZMPAtHeight(0)
}

// YawTorque computes the moment about the gravity axis as the ratio
// (tau . f) / (tau . d) of the root wrench's torque projected onto its
// force and onto the ground normal: the torque a yaw-axis actuator (or
// friction) must supply to keep the chain from spinning about vertical.
// Returns ok=false when the denominator |tau . d| is too close to zero
// for the ratio to be defined (e.g. a planar chain whose root torque lies
// entirely in the horizontal plane), an explicit ok rather than a silent
// +-Inf/NaN.
func (c *Chain) YawTorque() (float64, bool) {
	_, f, n, err := c.rootWrench()
	if err != nil {
		return 0, false
	}
	d := c.GravityDir().Mul(-1)
	denom := n.Dot(d)
	if spatial.IsTiny(denom) {
		c.log.Warnw("yaw torque undefined: root torque along ground normal is near zero", "chain", c.Name)
		return 0, false
	}
	return n.Dot(f) / denom, true
}

// NetExtWrench returns the sum of every link's accumulated externally
// applied wrenches, expressed about the world origin. Valid after
// UpdateFrame.
func (c *Chain) NetExtWrench() spatial.Spatial6D {
	var totalForce, totalTorque spatial.Vec3
	for _, l := range c.Links {
		resultant := l.ResultantExtWrench()
		f := l.WorldFrame.Att.MulVec3(resultant.Lin)
		n := l.WorldFrame.Att.MulVec3(resultant.Ang)
		totalForce = totalForce.Add(f)
		totalTorque = totalTorque.Add(n).Add(l.WorldFrame.Pos.Cross(f))
	}
	return spatial.Spatial6D{Ang: totalTorque, Lin: totalForce}
}
