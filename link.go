// Package chain implements the kinematic-chain data model and forward/
// inverse dynamics kernels: Link and Chain, forward kinematics, recursive
// Newton-Euler inverse dynamics, and the derived aggregates (COM, angular
// momentum, kinetic energy, ZMP, joint-space inertia matrix).
package chain

import (
	"github.com/sugihara-lab/roki/joint"
	"github.com/sugihara-lab/roki/spatial"
)

// Link is one rigid body in the chain: a static offset from its parent
// (OriginFrame), a joint connecting it to that parent, mass properties, and
// the kinematic/dynamic state the FK/ID kernels populate.
type Link struct {
	Name string

	// Parent is this link's parent index, -1 for a root link. Children
	// lists the indices of links whose Parent is this link's index. The
	// chain requires every link's Parent index to be strictly less than
	// its own index (parents precede children in Links), so a single
	// forward pass over increasing index and a single backward pass over
	// decreasing index each visit every link in a valid order.
	Parent   int
	Children []int

	// OriginFrame is the static transform from the parent link's frame to
	// this link's joint-input frame (the origin/frame entry in the chain
	// file).
	OriginFrame spatial.Frame3D

	Joint *joint.Joint

	// Inertia is this link's mass/COM/inertia tensor, expressed about its
	// own body frame (not its center of mass).
	Inertia spatial.SpatialInertia

	// Shape is this link's optional collision/visual geometry.
	Shape Shape

	// WorldFrame is this link's frame expressed in the chain's world/base
	// frame, populated by UpdateFrame.
	WorldFrame spatial.Frame3D

	// Vel and Acc are this link's spatial velocity/acceleration, expressed
	// in the link's own (world-frame-attitude) body frame, populated by
	// UpdateRate.
	Vel spatial.Spatial6D
	Acc spatial.Spatial6D

	// Wrench is the net spatial wrench this link's joint must supply,
	// expressed in the link's own frame, populated by UpdateWrench.
	Wrench spatial.Spatial6D

	// ExtWrenches accumulates externally applied wrenches (e.g. contact
	// forces) acting at this link's frame origin, each expressed in the
	// link's own frame. Input to UpdateWrench via ResultantExtWrench; empty
	// unless populated by AppendExtWrench.
	ExtWrenches []spatial.Spatial6D
}

// NewLink builds a link with the given joint and identity origin/inertia,
// ready to be added to a Chain.
func NewLink(name string, j *joint.Joint) *Link {
	return &Link{
		Name:        name,
		Parent:      -1,
		OriginFrame: spatial.IdentityFrame3D(),
		Joint:       j,
		Inertia:     spatial.SpatialInertia{Mass: 0, COM: spatial.ZeroVec3, Inertia: spatial.ZeroMat3()},
	}
}

// WorldCOM returns this link's center of mass expressed in the world
// frame. Valid only after UpdateFrame.
func (l *Link) WorldCOM() spatial.Vec3 {
	return l.WorldFrame.TransformPoint(l.Inertia.COM)
}

// PointAcc returns the acceleration, expressed in this link's own frame, of
// the material point at localPoint (also in the link's own frame). Valid
// after UpdateRate.
func (l *Link) PointAcc(localPoint spatial.Vec3) spatial.Vec3 {
	return spatial.PointAcc(l.Vel.Ang, l.Vel.Lin, l.Acc.Ang, l.Acc.Lin, localPoint)
}

// AppendExtWrench adds an externally applied wrench (contact force, etc.),
// expressed in this link's own frame, to the link's accumulated list.
func (l *Link) AppendExtWrench(w spatial.Spatial6D) {
	l.ExtWrenches = append(l.ExtWrenches, w)
}

// ClearExtWrenches discards every externally applied wrench accumulated on
// this link.
func (l *Link) ClearExtWrenches() {
	l.ExtWrenches = l.ExtWrenches[:0]
}

// ResultantExtWrench sums every externally applied wrench accumulated on
// this link, in the link's own frame.
func (l *Link) ResultantExtWrench() spatial.Spatial6D {
	var out spatial.Spatial6D
	for _, w := range l.ExtWrenches {
		out = out.Add(w)
	}
	return out
}

// CopyState copies src's joint state (q/dq/ddq/tau) and link-level
// velocity/acceleration/wrench into dst, leaving topology, inertia and
// shape untouched. Both links must share the same joint kind.
func (l *Link) CopyState(dst *Link) {
	dst.Joint.State = l.Joint.State
	dst.Vel = l.Vel
	dst.Acc = l.Acc
	dst.Wrench = l.Wrench
}
