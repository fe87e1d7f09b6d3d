package chain

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sugihara-lab/roki/joint"
	"github.com/sugihara-lab/roki/rlog"
	"github.com/sugihara-lab/roki/spatial"
)

// Chain is a tree of Links rooted at one or more base links (Parent == -1),
// indexed by position in Links. Every link's Parent index must be less
// than its own index.
type Chain struct {
	Name       string
	InstanceID uuid.UUID

	Links []*Link

	// Gravity is the gravitational acceleration vector expressed in the
	// world frame (default (0,0,-9.8)).
	Gravity spatial.Vec3

	offset   []int
	totalDOF int

	log rlog.Logger
}

// New builds an empty chain with default Earth gravity and no logging.
func New(name string) *Chain {
	return &Chain{
		Name:       name,
		InstanceID: uuid.New(),
		Gravity:    spatial.NewVec3(0, 0, -9.8),
		log:        rlog.Nop(),
	}
}

// WithLogger returns c with its logger replaced, for call-site chaining.
func (c *Chain) WithLogger(l rlog.Logger) *Chain {
	c.log = l
	return c
}

// AddLink appends link to the chain under parentIdx (-1 for a root link)
// and returns its new index. It recomputes the joint-offset table. parentIdx
// must refer to an already-added link, preserving the parent-precedes-child
// invariant.
func (c *Chain) AddLink(parentIdx int, link *Link) (int, error) {
	if parentIdx >= len(c.Links) {
		return -1, errors.Wrapf(ErrUnknownLink, "AddLink: parent index %d out of range", parentIdx)
	}
	link.Parent = parentIdx
	idx := len(c.Links)
	c.Links = append(c.Links, link)
	if parentIdx >= 0 {
		p := c.Links[parentIdx]
		p.Children = append(p.Children, idx)
	}
	c.updateOffsets()
	return idx, nil
}

// updateOffsets recomputes the per-link starting index into the chain's
// flat generalized-coordinate vector, maintaining the "offset table"
// invariant: offset[i] == -1 iff Links[i].Joint.DOF() == 0;
// otherwise offset[i] + Links[i].Joint.DOF() <= TotalDOF(), and the
// offsets of DOF-bearing links partition [0, TotalDOF()).
func (c *Chain) updateOffsets() {
	c.offset = make([]int, len(c.Links))
	sum := 0
	for i, l := range c.Links {
		if l.Joint.DOF() == 0 {
			c.offset[i] = -1
			continue
		}
		c.offset[i] = sum
		sum += l.Joint.DOF()
	}
	c.totalDOF = sum
}

// TotalDOF returns the chain's total degree-of-freedom count.
func (c *Chain) TotalDOF() int { return c.totalDOF }

// LinkOffset returns link i's starting index into the flat joint vector,
// or -1 if the link's joint has zero DOF.
func (c *Chain) LinkOffset(i int) int { return c.offset[i] }

// LinkByName returns the index of the link with the given name, or
// ErrUnknownLink.
func (c *Chain) LinkByName(name string) (int, error) {
	for i, l := range c.Links {
		if l.Name == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrUnknownLink, "no link named %q", name)
}

// Clone returns a deep copy of the chain, including a fresh InstanceID
// (chain identity is index-based; InstanceID is a correlation id only, so
// two clones are expected to carry different ones).
func (c *Chain) Clone() *Chain {
	out := &Chain{
		Name:       c.Name,
		InstanceID: uuid.New(),
		Gravity:    c.Gravity,
		log:        c.log,
	}
	out.Links = make([]*Link, len(c.Links))
	for i, l := range c.Links {
		cp := *l
		cp.Children = append([]int(nil), l.Children...)
		cp.ExtWrenches = append([]spatial.Spatial6D(nil), l.ExtWrenches...)
		if l.Joint != nil {
			j := *l.Joint
			cp.Joint = &j
		}
		cp.Shape = cloneShape(l.Shape)
		out.Links[i] = &cp
	}
	out.updateOffsets()
	return out
}

// --- sparse (indexed) joint-state accessors ---

func (c *Chain) forEachSelected(idx []int, v []float64, apply func(j *joint.Joint, seg []float64) error) error {
	cursor := 0
	for _, i := range idx {
		if i < 0 || i >= len(c.Links) {
			return errors.Wrapf(ErrUnknownLink, "joint index %d out of range", i)
		}
		j := c.Links[i].Joint
		d := j.DOF()
		if cursor+d > len(v) {
			return errors.Wrapf(ErrSizeMismatch, "expected at least %d entries, got %d", cursor+d, len(v))
		}
		if err := apply(j, v[cursor:cursor+d]); err != nil {
			return err
		}
		cursor += d
	}
	return nil
}

// SetJointDis sets the displacement of the joints named by idx, reading v
// as the concatenation of each selected joint's DOF-sized segment in order.
func (c *Chain) SetJointDis(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.SetDis(seg)
		return nil
	})
}

// GetJointDis writes the displacement of the joints named by idx into v,
// in the same concatenated-segment layout as SetJointDis.
func (c *Chain) GetJointDis(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.GetDis(seg)
		return nil
	})
}

func (c *Chain) SetJointVel(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.SetVel(seg)
		return nil
	})
}

func (c *Chain) GetJointVel(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.GetVel(seg)
		return nil
	})
}

func (c *Chain) SetJointAcc(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.SetAcc(seg)
		return nil
	})
}

func (c *Chain) GetJointAcc(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.GetAcc(seg)
		return nil
	})
}

func (c *Chain) SetJointTrq(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.SetTrq(seg)
		return nil
	})
}

func (c *Chain) GetJointTrq(idx []int, v []float64) error {
	return c.forEachSelected(idx, v, func(j *joint.Joint, seg []float64) error {
		j.GetTrq(seg)
		return nil
	})
}

// --- dense joint-state accessors: nil v means zero, with an explicit
// Zero*All alternative; kernels in this package prefer the explicit
// setters. ---

// DOFLinkIndices returns the indices of every link with at least one
// degree of freedom, in link order — the default index list for the
// sparse accessors.
func (c *Chain) DOFLinkIndices() []int {
	var idx []int
	for i, l := range c.Links {
		if l.Joint.DOF() > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

func (c *Chain) allIdx() []int {
	idx := make([]int, len(c.Links))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (c *Chain) SetJointDisAll(v []float64) error {
	if v == nil {
		return c.ZeroJointDisAll()
	}
	return c.SetJointDis(c.allIdx(), v)
}

func (c *Chain) GetJointDisAll(v []float64) error { return c.GetJointDis(c.allIdx(), v) }

func (c *Chain) ZeroJointDisAll() error {
	return c.SetJointDis(c.allIdx(), make([]float64, c.totalDOF))
}

func (c *Chain) SetJointVelAll(v []float64) error {
	if v == nil {
		return c.ZeroJointVelAll()
	}
	return c.SetJointVel(c.allIdx(), v)
}

func (c *Chain) GetJointVelAll(v []float64) error { return c.GetJointVel(c.allIdx(), v) }

func (c *Chain) ZeroJointVelAll() error {
	return c.SetJointVel(c.allIdx(), make([]float64, c.totalDOF))
}

func (c *Chain) SetJointAccAll(v []float64) error {
	if v == nil {
		return c.ZeroJointAccAll()
	}
	return c.SetJointAcc(c.allIdx(), v)
}

func (c *Chain) GetJointAccAll(v []float64) error { return c.GetJointAcc(c.allIdx(), v) }

func (c *Chain) ZeroJointAccAll() error {
	return c.SetJointAcc(c.allIdx(), make([]float64, c.totalDOF))
}

func (c *Chain) SetJointTrqAll(v []float64) error {
	if v == nil {
		return c.ZeroJointTrqAll()
	}
	return c.SetJointTrq(c.allIdx(), v)
}

func (c *Chain) GetJointTrqAll(v []float64) error { return c.GetJointTrq(c.allIdx(), v) }

func (c *Chain) ZeroJointTrqAll() error {
	return c.SetJointTrq(c.allIdx(), make([]float64, c.totalDOF))
}

// CatDisAll accumulates dq (dense, scaled by k) into v in place, using each
// joint's own manifold-aware CatDis (exponential-map composition for
// Spherical/Free, flat addition for the rest) per joint segment, rather
// than a flat v[i] += k*dq[i] that would be wrong across a rotation
// manifold.
func (c *Chain) CatDisAll(v []float64, k float64, dq []float64) error {
	if len(v) != c.totalDOF || len(dq) != c.totalDOF {
		return ErrSizeMismatch
	}
	for i, l := range c.Links {
		off := c.offset[i]
		d := l.Joint.DOF()
		if d == 0 {
			continue
		}
		l.Joint.CatDis(v[off:off+d], k, dq[off:off+d])
	}
	return nil
}

// SubDisAll returns the manifold-aware difference qA - qB (dense), using
// each joint's own SubDis so revolute's wraparound and spherical/free's
// exponential-map difference share the same code path FKCNT's finite
// differencing relies on.
func (c *Chain) SubDisAll(qA, qB []float64) ([]float64, error) {
	if len(qA) != c.totalDOF || len(qB) != c.totalDOF {
		return nil, ErrSizeMismatch
	}
	out := make([]float64, c.totalDOF)
	for i, l := range c.Links {
		off := c.offset[i]
		d := l.Joint.DOF()
		if d == 0 {
			continue
		}
		l.Joint.SubDis(qA[off:off+d], qB[off:off+d], out[off:off+d])
	}
	return out, nil
}
