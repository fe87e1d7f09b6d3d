package chain

import (
	"github.com/pkg/errors"
	"github.com/sugihara-lab/roki/spatial"
	"go.uber.org/multierr"
)

// Shape is the minimal geometry seam a Link's collision/visual surface
// satisfies. Full shape primitives (box, capsule, mesh) are out of scope;
// this interface exists only so VertexList/BoundingBall have something to
// operate on.
type Shape interface {
	Vertices() []spatial.Vec3
}

// Polyhedralizable is implemented by shapes that are not already a plain
// vertex list (e.g. an analytic primitive like a sphere or capsule) and
// must first be converted to a polyhedral approximation before
// VertexListChecked can use them. A shape satisfying only Shape is assumed
// already polyhedral.
type Polyhedralizable interface {
	Polyhedralize() ([]spatial.Vec3, error)
}

// PointCloud is the simplest Shape: a fixed vertex list, e.g. a convex hull
// computed offline.
type PointCloud struct {
	Verts []spatial.Vec3
}

func (p PointCloud) Vertices() []spatial.Vec3 { return p.Verts }

// Clone returns a PointCloud with its own backing array, so mutating one
// clone's vertices never affects another's.
func (p PointCloud) Clone() Shape {
	return PointCloud{Verts: append([]spatial.Vec3(nil), p.Verts...)}
}

// cloneableShape is implemented by Shapes that own slice-backed state and
// must therefore produce an independent copy on Chain.Clone. A Shape that
// doesn't implement it is assumed safe to share (e.g. an immutable analytic
// primitive with only scalar fields).
type cloneableShape interface {
	Clone() Shape
}

func cloneShape(s Shape) Shape {
	if s == nil {
		return nil
	}
	if c, ok := s.(cloneableShape); ok {
		return c.Clone()
	}
	return s
}

// VertexList collects every link's shape vertices, transformed into world
// coordinates by each link's current frame. Links with no Shape contribute
// nothing. Shapes that only need tessellation (Polyhedralizable) but never
// fail are also accepted here; use VertexListChecked when a shape's
// conversion can fail and the caller wants every link's error, not just the
// first.
func (c *Chain) VertexList() []spatial.Vec3 {
	out, _ := c.VertexListChecked()
	return out
}

// VertexListChecked is VertexList's error-aware counterpart: a shape
// implementing Polyhedralizable is converted via Polyhedralize instead of
// Vertices, and conversion failures across every link are aggregated with
// multierr rather than aborting on the first one, so one bad shape doesn't
// hide the rest.
func (c *Chain) VertexListChecked() ([]spatial.Vec3, error) {
	var out []spatial.Vec3
	var errs error
	for _, l := range c.Links {
		if l.Shape == nil {
			continue
		}
		verts, err := shapeVertices(l.Shape)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "link %q", l.Name))
			continue
		}
		for _, v := range verts {
			out = append(out, l.WorldFrame.TransformPoint(v))
		}
	}
	return out, errs
}

func shapeVertices(s Shape) ([]spatial.Vec3, error) {
	if p, ok := s.(Polyhedralizable); ok {
		return p.Polyhedralize()
	}
	return s.Vertices(), nil
}

// BoundingBall computes an approximate smallest enclosing sphere over the
// chain's current world-space vertex list using Ritter's single-pass
// heuristic: pick an extreme point, find its farthest point, then grow a
// ball from that diameter to cover any remaining outliers. This is O(n),
// not exact (unlike Welzl's algorithm), matching the level of rigor the
// original offers.
func (c *Chain) BoundingBall() (center spatial.Vec3, radius float64, ok bool) {
	pts := c.VertexList()
	if len(pts) == 0 {
		return spatial.ZeroVec3, 0, false
	}
	if len(pts) == 1 {
		return pts[0], 0, true
	}

	x := pts[0]
	y := farthest(pts, x)
	z := farthest(pts, y)
	center = y.Add(z).Mul(0.5)
	radius = z.Sub(center).Norm()

	for _, p := range pts {
		d := p.Sub(center).Norm()
		if d > radius {
			newRadius := (radius + d) / 2
			k := (newRadius - radius) / d
			center = center.Add(p.Sub(center).Mul(k))
			radius = newRadius
		}
	}
	return center, radius, true
}

func farthest(pts []spatial.Vec3, from spatial.Vec3) spatial.Vec3 {
	best := pts[0]
	bestD := -1.0
	for _, p := range pts {
		if d := p.Sub(from).Norm2(); d > bestD {
			bestD = d
			best = p
		}
	}
	return best
}
