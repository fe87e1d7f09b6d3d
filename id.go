package chain

import "github.com/sugihara-lab/roki/spatial"

// UpdateRate runs the outward kinematic sweep: given the root links' base
// velocity/acceleration (e.g. zero for a fixed base, or a floating base's
// measured state), propagates spatial velocity and acceleration to every
// link by rigid-body transport plus each joint's own contribution
// (joint.Joint.IncRate), in a single forward pass over increasing index.
func (c *Chain) UpdateRate(rootVel, rootAcc spatial.Spatial6D) {
	for _, l := range c.Links {
		rel := l.OriginFrame.Compose(l.Joint.Transform())
		var parentVel, parentAcc spatial.Spatial6D
		if l.Parent < 0 {
			parentVel, parentAcc = rootVel, rootAcc
		} else {
			p := c.Links[l.Parent]
			parentVel, parentAcc = p.Vel, p.Acc
		}
		vel := spatial.TransportVel(rel, parentVel)
		acc := spatial.TransportAcc(rel, parentVel, parentAcc)
		l.Joint.IncRate(&vel, &acc)
		l.Vel = vel
		l.Acc = acc
	}
}

// UpdateWrench runs the inward dynamics sweep: given every link's current
// Vel/Acc (as populated by UpdateRate) and accumulated ExtWrenches, computes each link's
// net wrench and projects it onto its joint's generalized torque/force, in
// a single backward pass over decreasing index (valid because every
// link's children have a strictly greater index). Writes each link's
// Wrench field and returns the chain's flat generalized torque vector.
func (c *Chain) UpdateWrench() []float64 {
	tau := make([]float64, c.totalDOF)
	for i := len(c.Links) - 1; i >= 0; i-- {
		l := c.Links[i]
		w := l.Inertia.NetWrench(l.Vel, l.Acc).Sub(l.ResultantExtWrench())
		for _, ci := range l.Children {
			child := c.Links[ci]
			rel := child.OriginFrame.Compose(child.Joint.Transform())
			w = w.Add(spatial.TransportWrenchToParent(rel, child.Wrench))
		}
		l.Wrench = w

		off := c.offset[i]
		d := l.Joint.DOF()
		if d == 0 {
			continue
		}
		l.Joint.CalcTrq(w, tau[off:off+d])
	}
	return tau
}

// gravityBiasedRootAcc returns rootAcc with the chain's gravity subtracted
// out of its linear part: the standard RNE trick, an inertial-frame root
// accelerating at -Gravity makes every link's weight appear as an ordinary
// D'Alembert force in the backward wrench sweep, instead of needing a
// separate gravity-wrench term at every link.
func (c *Chain) gravityBiasedRootAcc(rootAcc spatial.Spatial6D) spatial.Spatial6D {
	biased := rootAcc
	biased.Lin = biased.Lin.Sub(c.Gravity)
	return biased
}

// ID runs full recursive Newton-Euler inverse dynamics: sets displacement,
// velocity and acceleration from q/dq/ddq (each may be nil, meaning zero),
// recomputes world frames, folds gravity into the root acceleration, and
// returns the resulting generalized joint torques.
//
// Because gravity is folded into the root acceleration passed to
// UpdateRate, callers that need the chain's physical (non-gravity-biased)
// Link.Acc afterward should call UpdateRate again directly with the real
// root acceleration.
func (c *Chain) ID(q, dq, ddq []float64, rootVel, rootAcc spatial.Spatial6D) ([]float64, error) {
	if len(c.Links) == 0 {
		return nil, ErrEmptyChain
	}
	if err := c.SetJointDisAll(q); err != nil {
		return nil, err
	}
	if err := c.SetJointVelAll(dq); err != nil {
		return nil, err
	}
	if err := c.SetJointAccAll(ddq); err != nil {
		return nil, err
	}
	c.UpdateFrame()
	c.UpdateRate(rootVel, c.gravityBiasedRootAcc(rootAcc))
	return c.UpdateWrench(), nil
}

// FKCNT advances the chain through one time step given the new joint
// displacement qNew (dense, length TotalDOF): continuous-displacement set
// (manifold-aware SubDis to infer velocity by finite differencing, then
// SetDisContinuous per joint so revolute's 2*pi wraparound and
// spherical/free's double-cover/exponential-map continuity share one code
// path), then full FK, then full ID. Leaves every
// link's WorldFrame/Vel/Acc/Wrench and the chain's joint torques populated
// as a normal ID call would (root velocity/acceleration are assumed zero,
// i.e. a fixed base), and returns the newly estimated dense velocity
// vector.
func (c *Chain) FKCNT(qNew []float64, dt float64) ([]float64, error) {
	if len(c.Links) == 0 {
		return nil, ErrEmptyChain
	}
	if len(qNew) != c.totalDOF {
		return nil, ErrSizeMismatch
	}
	qOld := make([]float64, c.totalDOF)
	if err := c.GetJointDisAll(qOld); err != nil {
		return nil, err
	}

	diff, err := c.SubDisAll(qNew, qOld)
	if err != nil {
		return nil, err
	}
	dq := make([]float64, c.totalDOF)
	for i := range dq {
		dq[i] = diff[i] / dt
	}

	for i, l := range c.Links {
		off := c.offset[i]
		d := l.Joint.DOF()
		if d == 0 {
			continue
		}
		l.Joint.SetDisContinuous(qNew[off:off+d], dt)
	}
	if err := c.SetJointVelAll(dq); err != nil {
		return nil, err
	}

	c.UpdateFrame()
	c.UpdateCOM()
	if err := c.ZeroJointAccAll(); err != nil {
		return nil, err
	}
	c.UpdateRate(spatial.ZeroSpatial6D, c.gravityBiasedRootAcc(spatial.ZeroSpatial6D))
	c.UpdateWrench()
	return dq, nil
}
