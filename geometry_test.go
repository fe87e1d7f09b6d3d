package chain

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/sugihara-lab/roki/joint"
	"github.com/sugihara-lab/roki/spatial"
	"go.viam.com/test"
)

// icosphere is a Polyhedralizable shape standing in for an analytic
// primitive (a sphere) that must be tessellated before VertexListChecked
// can use it.
type icosphere struct {
	center spatial.Vec3
	radius float64
	segs   int
}

func (s icosphere) Vertices() []spatial.Vec3 { panic("icosphere is Polyhedralizable, not a raw vertex list") }

func (s icosphere) Polyhedralize() ([]spatial.Vec3, error) {
	if s.radius <= 0 {
		return nil, errors.New("icosphere: non-positive radius")
	}
	var out []spatial.Vec3
	for i := 0; i < s.segs; i++ {
		a := 2 * math.Pi * float64(i) / float64(s.segs)
		out = append(out, s.center.Add(spatial.NewVec3(s.radius*math.Cos(a), s.radius*math.Sin(a), 0)))
	}
	return out, nil
}

func TestBoundingBallCoversAllVertices(t *testing.T) {
	c := New("geom")
	l := NewLink("box", joint.New("fixed", joint.Fixed))
	l.Shape = PointCloud{Verts: []spatial.Vec3{
		spatial.NewVec3(1, 0, 0),
		spatial.NewVec3(-1, 0, 0),
		spatial.NewVec3(0, 1, 0),
		spatial.NewVec3(0, -1, 0),
		spatial.NewVec3(0, 0, 1),
	}}
	c.AddLink(-1, l)
	c.UpdateFrame()

	center, radius, ok := c.BoundingBall()
	test.That(t, ok, test.ShouldBeTrue)
	for _, v := range c.VertexList() {
		d := v.Sub(center).Norm()
		test.That(t, d, test.ShouldBeLessThanOrEqualTo, radius+1e-9)
	}
}

func TestBoundingBallEmptyChain(t *testing.T) {
	c := New("empty")
	_, _, ok := c.BoundingBall()
	test.That(t, ok, test.ShouldBeFalse)
}

func TestVertexListCheckedPolyhedralizesAnalyticShapes(t *testing.T) {
	c := New("sphere")
	l := NewLink("ball", joint.New("fixed", joint.Fixed))
	l.Shape = icosphere{center: spatial.ZeroVec3, radius: 2.0, segs: 8}
	c.AddLink(-1, l)
	c.UpdateFrame()

	verts, err := c.VertexListChecked()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(verts), test.ShouldEqual, 8)
	for _, v := range verts {
		test.That(t, v.Norm(), test.ShouldAlmostEqual, 2.0, 1e-9)
	}
}

func TestVertexListCheckedAggregatesPerLinkFailures(t *testing.T) {
	c := New("broken")
	bad1 := NewLink("bad1", joint.New("fixed", joint.Fixed))
	bad1.Shape = icosphere{radius: -1, segs: 4}
	c.AddLink(-1, bad1)
	bad2 := NewLink("bad2", joint.New("fixed", joint.Fixed))
	bad2.Shape = icosphere{radius: 0, segs: 4}
	c.AddLink(-1, bad2)
	c.UpdateFrame()

	_, err := c.VertexListChecked()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "bad1")
	test.That(t, err.Error(), test.ShouldContainSubstring, "bad2")
}
