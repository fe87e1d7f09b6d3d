package spatial

// Frame3D is a rigid transform: a position and attitude expressed in some
// reference frame, i.e. it maps a point/vector local to this frame into
// that reference frame. Composition reads left-to-right, as in
// world[i] = world[parent(i)] . origin[i] . jointTransform(q_i):
// a.Compose(b) answers "b expressed in a's parent frame".
type Frame3D struct {
	Pos Vec3
	Att Mat3
}

// IdentityFrame3D is the neutral transform.
func IdentityFrame3D() Frame3D {
	return Frame3D{Pos: ZeroVec3, Att: IdentityMat3()}
}

// NewFrame3D builds a frame from a position and attitude.
func NewFrame3D(pos Vec3, att Mat3) Frame3D {
	return Frame3D{Pos: pos, Att: att}
}

// NewFrame3DFromAxisAngle builds a frame whose attitude is the rotation by
// angle about axis, at the given position.
func NewFrame3DFromAxisAngle(pos, axis Vec3, angle float64) Frame3D {
	return Frame3D{Pos: pos, Att: FromAxisAngle(axis, angle)}
}

// Compose returns f applied then o, i.e. o expressed in f's frame: the
// point p maps as f.Compose(o).TransformPoint(p) == f.TransformPoint(o.TransformPoint(p)).
func (f Frame3D) Compose(o Frame3D) Frame3D {
	return Frame3D{
		Pos: f.Pos.Add(f.Att.MulVec3(o.Pos)),
		Att: f.Att.Mul(o.Att),
	}
}

// Inv returns the inverse transform.
func (f Frame3D) Inv() Frame3D {
	att := f.Att.T()
	return Frame3D{Pos: att.MulVec3(f.Pos).Mul(-1), Att: att}
}

// TransformPoint maps a point expressed in this frame's local coordinates
// into the reference frame.
func (f Frame3D) TransformPoint(p Vec3) Vec3 {
	return f.Att.MulVec3(p).Add(f.Pos)
}

// TransformPointInv maps a point expressed in the reference frame back into
// this frame's local coordinates (the inverse of TransformPoint).
func (f Frame3D) TransformPointInv(p Vec3) Vec3 {
	return f.Att.MulTVec3(p.Sub(f.Pos))
}

// TransformVec rotates (but does not translate) a free vector from this
// frame's local coordinates into the reference frame.
func (f Frame3D) TransformVec(v Vec3) Vec3 {
	return f.Att.MulVec3(v)
}

// TransformVecInv is the inverse rotation of TransformVec.
func (f Frame3D) TransformVecInv(v Vec3) Vec3 {
	return f.Att.MulTVec3(v)
}
