package chain

import "github.com/sugihara-lab/roki/spatial"

// UpdateFrame recomputes every link's WorldFrame from its current joint
// displacement, in a single forward pass over increasing index (valid
// because every link's Parent index precedes it).
func (c *Chain) UpdateFrame() {
	for _, l := range c.Links {
		rel := l.OriginFrame.Compose(l.Joint.Transform())
		if l.Parent < 0 {
			l.WorldFrame = rel
			continue
		}
		parent := c.Links[l.Parent]
		l.WorldFrame = parent.WorldFrame.Compose(rel)
	}
}

// Mass returns the chain's total mass.
func (c *Chain) Mass() float64 {
	m := 0.0
	for _, l := range c.Links {
		m += l.Inertia.Mass
	}
	return m
}

// UpdateCOM recomputes the chain's mass-weighted world center of mass.
// Valid after UpdateFrame. Falls back to the unweighted average position
// (equivalent to M <- 1 per link) and logs a warning if the chain's total
// mass is (numerically) zero, rather than dividing by zero silently.
func (c *Chain) UpdateCOM() spatial.Vec3 {
	total := c.Mass()
	if spatial.IsTiny(total) {
		c.log.Warnw("chain has zero total mass, falling back to unweighted COM average", "chain", c.Name)
		if len(c.Links) == 0 {
			return spatial.ZeroVec3
		}
		sum := spatial.ZeroVec3
		for _, l := range c.Links {
			sum = sum.Add(l.WorldCOM())
		}
		return sum.Mul(1 / float64(len(c.Links)))
	}
	sum := spatial.ZeroVec3
	for _, l := range c.Links {
		sum = sum.Add(l.WorldCOM().Mul(l.Inertia.Mass))
	}
	return sum.Mul(1 / total)
}

// FK sets every joint's displacement from q (see SetJointDisAll: nil means
// zero) and recomputes world frames and the chain's center of mass.
func (c *Chain) FK(q []float64) (spatial.Vec3, error) {
	if len(c.Links) == 0 {
		return spatial.ZeroVec3, ErrEmptyChain
	}
	if err := c.SetJointDisAll(q); err != nil {
		return spatial.ZeroVec3, err
	}
	c.UpdateFrame()
	return c.UpdateCOM(), nil
}
