package spatial

// Spatial6D is a 6D twist or wrench, angular part first. Used for link
// velocities, accelerations and wrenches, all expressed in the owning
// link's own frame.
type Spatial6D struct {
	Ang Vec3
	Lin Vec3
}

// ZeroSpatial6D is the additive identity.
var ZeroSpatial6D = Spatial6D{}

// Add returns s + o.
func (s Spatial6D) Add(o Spatial6D) Spatial6D {
	return Spatial6D{Ang: s.Ang.Add(o.Ang), Lin: s.Lin.Add(o.Lin)}
}

// Sub returns s - o.
func (s Spatial6D) Sub(o Spatial6D) Spatial6D {
	return Spatial6D{Ang: s.Ang.Sub(o.Ang), Lin: s.Lin.Sub(o.Lin)}
}

// Scale returns k*s.
func (s Spatial6D) Scale(k float64) Spatial6D {
	return Spatial6D{Ang: s.Ang.Mul(k), Lin: s.Lin.Mul(k)}
}

// TransportVel transports a velocity expressed in the parent frame into a
// child frame related to the parent by rel (rel.Att rotates child-local
// coordinates into parent coordinates, rel.Pos is the child origin's
// position in parent coordinates). This implements the rigid-body velocity
// transport used by the outward FK/ID sweep, before any joint-local motion
// is added (see joint.Kind.IncVel).
func TransportVel(rel Frame3D, parent Spatial6D) Spatial6D {
	ang := rel.Att.MulTVec3(parent.Ang)
	lin := rel.Att.MulTVec3(parent.Lin.Add(parent.Ang.Cross(rel.Pos)))
	return Spatial6D{Ang: ang, Lin: lin}
}

// TransportAcc transports an acceleration expressed in the parent frame
// into a child frame related to the parent by rel, given the parent's
// velocity (needed for the centripetal term). Like TransportVel, this is
// the rigid-body transport alone, before joint-local motion is added.
func TransportAcc(rel Frame3D, parentVel, parentAcc Spatial6D) Spatial6D {
	ang := rel.Att.MulTVec3(parentAcc.Ang)
	centripetal := parentVel.Ang.Cross(parentVel.Ang.Cross(rel.Pos))
	lin := rel.Att.MulTVec3(parentAcc.Lin.Add(parentAcc.Ang.Cross(rel.Pos)).Add(centripetal))
	return Spatial6D{Ang: ang, Lin: lin}
}

// TransportWrenchToParent transports a wrench expressed in a child frame
// back out into the parent frame related to the child by rel (same
// convention as TransportVel/TransportAcc: rel maps child-local to
// parent). This is the dual of TransportVel and is used by the inward ID
// sweep to accumulate a child link's wrench into its parent's frame.
func TransportWrenchToParent(rel Frame3D, child Spatial6D) Spatial6D {
	force := rel.Att.MulVec3(child.Lin)
	torque := rel.Att.MulVec3(child.Ang).Add(rel.Pos.Cross(force))
	return Spatial6D{Ang: torque, Lin: force}
}
