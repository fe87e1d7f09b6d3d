package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sugihara-lab/roki/rlog"
	"go.viam.com/test"
)

const twoLinkDoc = `
[chain]
name: arm2

[link]
name: link1
parent: world
mass: 2.0
com: 0.5 0 0
inertia: 0.1 0 0 0 0.1 0 0 0 0.1
joint: revolute
origin.pos: 0 0 0
origin.att: 0 0 0
limit: -3.14 3.14

[link]
name: link2
parent: link1
mass: 1.0
com: 0.25 0 0
inertia: 0.05 0 0 0 0.05 0 0 0 0.05
joint: revolute
origin.pos: 1 0 0
origin.att: 0 0 0

[init]
pos: 0 0 0
att: 0 0 0
joint: link1 0.3
`

func TestLoadParsesTwoLinkDocument(t *testing.T) {
	doc, err := Load(strings.NewReader(twoLinkDoc))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, doc.ChainName, test.ShouldEqual, "arm2")
	test.That(t, len(doc.Links), test.ShouldEqual, 2)
	test.That(t, doc.Links[0].Parent, test.ShouldEqual, "world")
	test.That(t, doc.Links[1].Parent, test.ShouldEqual, "link1")
	test.That(t, doc.Links[0].QMin[0], test.ShouldAlmostEqual, -3.14, 1e-9)
	test.That(t, doc.Init.JointInit["link1"][0], test.ShouldAlmostEqual, 0.3, 1e-9)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("[chain]\nname arm2\n"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestToChainBuildsConnectedChainAndRunsID(t *testing.T) {
	doc, err := Load(strings.NewReader(twoLinkDoc))
	test.That(t, err, test.ShouldBeNil)

	c, err := ToChain(doc, rlog.Nop())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(c.Links), test.ShouldEqual, 2)
	test.That(t, c.TotalDOF(), test.ShouldEqual, 2)

	q := make([]float64, 2)
	test.That(t, c.GetJointDisAll(q), test.ShouldBeNil)
	test.That(t, q[0], test.ShouldAlmostEqual, 0.3, 1e-9)
}

func TestSaveLoadRoundTripsNonNeutralJointsOnly(t *testing.T) {
	doc, err := Load(strings.NewReader(twoLinkDoc))
	test.That(t, err, test.ShouldBeNil)
	c, err := ToChain(doc, rlog.Nop())
	test.That(t, err, test.ShouldBeNil)

	out := FromChain(c)
	test.That(t, len(out.Init.JointInit), test.ShouldEqual, 1)
	_, hasLink2 := out.Init.JointInit["link2"]
	test.That(t, hasLink2, test.ShouldBeFalse)

	var buf bytes.Buffer
	test.That(t, Save(&buf, out), test.ShouldBeNil)

	reloaded, err := Load(&buf)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, reloaded.ChainName, test.ShouldEqual, "arm2")
	test.That(t, reloaded.Init.JointInit["link1"][0], test.ShouldAlmostEqual, 0.3, 1e-9)
}

func TestToChainBindsDeclaredMotor(t *testing.T) {
	withMotor := twoLinkDoc + "\n"
	withMotor = strings.Replace(withMotor, "joint: revolute\norigin.pos: 0 0 0\norigin.att: 0 0 0\nlimit: -3.14 3.14", "joint: revolute\norigin.pos: 0 0 0\norigin.att: 0 0 0\nlimit: -3.14 3.14\nmotor: m1", 1)
	doc, err := Load(strings.NewReader(withMotor))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, doc.Links[0].Motor, test.ShouldEqual, "m1")

	c, err := ToChain(doc, rlog.Nop())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Links[0].Joint.Motor, test.ShouldNotBeNil)
	test.That(t, c.Links[0].Joint.Motor.Name(), test.ShouldEqual, "m1")
	test.That(t, c.Links[1].Joint.Motor, test.ShouldBeNil)
}

const yamlDoc = `
chain_name: yarm
links:
  - name: base
    mass: 1.5
    com: [0.2, 0, 0]
    inertia: [0.02, 0, 0, 0, 0.02, 0, 0, 0, 0.02]
    joint: revolute
    origin_pos: [0, 0, 0]
    origin_att: [0, 0, 0]
init:
  pos: [0, 0, 0]
  att: [0, 0, 0]
`

func TestLoadYAMLParsesDocument(t *testing.T) {
	doc, err := LoadYAML(strings.NewReader(yamlDoc))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, doc.ChainName, test.ShouldEqual, "yarm")
	test.That(t, len(doc.Links), test.ShouldEqual, 1)
	test.That(t, doc.Links[0].Mass, test.ShouldAlmostEqual, 1.5, 1e-9)
	test.That(t, doc.Links[0].COM.X, test.ShouldAlmostEqual, 0.2, 1e-9)
}
