// Package config loads and saves the declarative chain-file format: a
// line-oriented, tagged-section document ([chain]/[link]/[init])
// describing a kinematic chain's links, joints, mass properties and
// initial posture.
package config

import "github.com/sugihara-lab/roki/spatial"

// Document is the parsed, in-memory form of a chain file, independent of
// whichever concrete syntax (the native tagged format, or YAML) produced
// it.
type Document struct {
	ChainName string
	Links     []LinkSpec
	Init      InitSpec
}

// DHParam is the per-link Denavit-Hartenberg alternative to an explicit
// origin frame: the static offset (a, d, alpha) combines with a Revolute
// joint supplying the variable angle theta.
type DHParam struct {
	A     float64
	D     float64
	Alpha float64
}

// LinkSpec is one [link] block.
type LinkSpec struct {
	Name   string
	Parent string // "world" or "" marks a root link

	Mass    float64
	COM     spatial.Vec3
	Inertia spatial.Mat3

	JointKind string // registry name, e.g. "revolute"

	// OriginPos/OriginAtt give the static parent-to-link transform;
	// OriginAtt is a rotation vector (exponential-map encoding). Ignored
	// when DH is set.
	OriginPos spatial.Vec3
	OriginAtt spatial.Vec3

	DH *DHParam

	// QMin/QMax are optional per-DOF joint limits (supplemental; never
	// enforced by the FK/ID kernels themselves).
	QMin []float64
	QMax []float64

	Shapes []string
	Motor  string
}

// InitSpec is the [init] block: the root's initial placement plus any
// per-joint initial displacement overrides.
type InitSpec struct {
	Pos spatial.Vec3
	Att spatial.Vec3 // rotation vector

	// JointInit maps a link name to its initial generalized displacement.
	JointInit map[string][]float64
}
