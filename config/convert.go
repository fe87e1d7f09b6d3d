package config

import (
	"github.com/pkg/errors"
	roki "github.com/sugihara-lab/roki"
	"github.com/sugihara-lab/roki/joint"
	"github.com/sugihara-lab/roki/motor"
	"github.com/sugihara-lab/roki/rlog"
	"github.com/sugihara-lab/roki/spatial"
)

// ToChain builds a chain.Chain from doc: resolves the connection pass by
// parent name (root links have no parent entry or "world"; link order in
// the document need not be parent-before-child, this walks outward from
// whatever roots are resolvable first), applies DH-to-origin conversion,
// and finishes with the post-load pass: the offset table builds
// automatically as links are added, then FK and ID run once to populate
// consistent link state.
func ToChain(doc *Document, log rlog.Logger) (*roki.Chain, error) {
	c := roki.New(doc.ChainName).WithLogger(log)

	byName := map[string]int{}
	pending := append([]LinkSpec(nil), doc.Links...)

	for len(pending) > 0 {
		var next []LinkSpec
		progressed := false
		for _, spec := range pending {
			parentIdx := -1
			if spec.Parent != "" && spec.Parent != "world" {
				idx, ok := byName[spec.Parent]
				if !ok {
					next = append(next, spec)
					continue
				}
				parentIdx = idx
			}
			link, err := buildLink(spec)
			if err != nil {
				return nil, errors.Wrapf(err, "link %q", spec.Name)
			}
			idx, err := c.AddLink(parentIdx, link)
			if err != nil {
				return nil, err
			}
			byName[spec.Name] = idx
			progressed = true
		}
		if !progressed {
			return nil, errors.Errorf("config: unresolved parent reference among %d link(s)", len(next))
		}
		pending = next
	}

	if len(c.Links) == 0 {
		return nil, roki.ErrEmptyChain
	}

	rootAtt := spatial.FromRotVec(doc.Init.Att)
	rootFrame := spatial.NewFrame3D(doc.Init.Pos, rootAtt)
	for _, l := range c.Links {
		if l.Parent < 0 {
			l.OriginFrame = rootFrame.Compose(l.OriginFrame)
		}
	}

	for name, q := range doc.Init.JointInit {
		idx, ok := byName[name]
		if !ok {
			return nil, errors.Wrapf(roki.ErrUnknownLink, "init joint %q", name)
		}
		if err := c.SetJointDis([]int{idx}, q); err != nil {
			return nil, err
		}
	}

	c.UpdateFrame()
	c.UpdateCOM()
	// Run ID at the configured posture (read back, since a nil q would
	// reset every joint to neutral and discard the [init] overrides).
	q := make([]float64, c.TotalDOF())
	if err := c.GetJointDisAll(q); err != nil {
		return nil, err
	}
	if _, err := c.ID(q, nil, nil, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D); err != nil {
		return nil, err
	}
	return c, nil
}

func buildLink(spec LinkSpec) (*roki.Link, error) {
	kindName := spec.JointKind
	if spec.DH != nil {
		kindName = "revolute"
	}
	kind, ok := joint.Lookup(kindName)
	if !ok {
		return nil, errors.Wrapf(roki.ErrUnknownJoint, "%q", kindName)
	}
	l := roki.NewLink(spec.Name, joint.New(spec.Name, kind))
	l.Inertia = spatial.SpatialInertia{Mass: spec.Mass, COM: spec.COM, Inertia: spec.Inertia}
	if spec.Motor != "" {
		// A loaded chain gets a software actuator under the declared name;
		// deployments swap in a hardware driver after loading.
		l.Joint.Motor = motor.NewSimulated(spec.Motor)
	}

	if spec.DH != nil {
		l.OriginFrame = dhOriginFrame(*spec.DH)
	} else {
		l.OriginFrame = spatial.NewFrame3D(spec.OriginPos, spatial.FromRotVec(spec.OriginAtt))
	}
	return l, nil
}

// dhOriginFrame converts Denavit-Hartenberg static parameters (a, d,
// alpha) into the static parent-to-joint frame applied before the
// Revolute joint's own theta rotation, folded into one composed frame
// since this loader always pairs a dh: line with exactly one Revolute
// joint.
func dhOriginFrame(p DHParam) spatial.Frame3D {
	return spatial.NewFrame3D(
		spatial.NewVec3(p.A, 0, p.D),
		spatial.FromAxisAngle(spatial.NewVec3(1, 0, 0), p.Alpha),
	)
}

// FromChain builds a Document describing c's current structure and
// posture, recording an [init] joint line only for joints not at neutral,
// so a save/load round trip leaves omitted joints at neutral.
func FromChain(c *roki.Chain) *Document {
	doc := &Document{ChainName: c.Name, Init: InitSpec{JointInit: map[string][]float64{}}}

	names := make([]string, len(c.Links))
	for i, l := range c.Links {
		names[i] = l.Name
	}

	for _, l := range c.Links {
		parent := "world"
		if l.Parent >= 0 {
			parent = names[l.Parent]
		}
		spec := LinkSpec{
			Name:      l.Name,
			Parent:    parent,
			Mass:      l.Inertia.Mass,
			COM:       l.Inertia.COM,
			Inertia:   l.Inertia.Inertia,
			JointKind: l.Joint.Kind.String(),
			OriginPos: l.OriginFrame.Pos,
			OriginAtt: spatial.ToRotVec(l.OriginFrame.Att),
		}
		doc.Links = append(doc.Links, spec)

		if !l.Joint.IsNeutral() {
			q := make([]float64, l.Joint.DOF())
			l.Joint.GetDis(q)
			doc.Init.JointInit[l.Name] = q
		}
	}
	return doc
}
