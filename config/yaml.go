package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sugihara-lab/roki/spatial"
	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors Document field-for-field but with yaml tags and
// plain float slices standing in for spatial.Vec3/Mat3, which do not
// unmarshal directly from flow sequences.
type yamlDocument struct {
	ChainName string     `yaml:"chain_name"`
	Links     []yamlLink `yaml:"links"`
	Init      yamlInit   `yaml:"init"`
}

type yamlLink struct {
	Name      string    `yaml:"name"`
	Parent    string    `yaml:"parent"`
	Mass      float64   `yaml:"mass"`
	COM       []float64 `yaml:"com"`
	Inertia   []float64 `yaml:"inertia"`
	JointKind string    `yaml:"joint"`
	OriginPos []float64 `yaml:"origin_pos"`
	OriginAtt []float64 `yaml:"origin_att"`
	DH        *struct {
		A     float64 `yaml:"a"`
		D     float64 `yaml:"d"`
		Alpha float64 `yaml:"alpha"`
	} `yaml:"dh"`
	QMin   []float64 `yaml:"qmin"`
	QMax   []float64 `yaml:"qmax"`
	Shapes []string  `yaml:"shapes"`
	Motor  string    `yaml:"motor"`
}

type yamlInit struct {
	Pos       []float64            `yaml:"pos"`
	Att       []float64            `yaml:"att"`
	JointInit map[string][]float64 `yaml:"joint_init"`
}

// LoadYAML reads the alternate *.chain.yaml document form, used where a
// deployment already standardizes on YAML for its other configuration
// (gazebo-style robot description files commonly do).
func LoadYAML(r io.Reader) (*Document, error) {
	var y yamlDocument
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&y); err != nil {
		return nil, errors.Wrap(err, "config: decoding yaml")
	}

	doc := &Document{
		ChainName: y.ChainName,
		Init: InitSpec{
			Pos:       vec3OrZero(y.Init.Pos),
			Att:       vec3OrZero(y.Init.Att),
			JointInit: y.Init.JointInit,
		},
	}
	if doc.Init.JointInit == nil {
		doc.Init.JointInit = map[string][]float64{}
	}

	for _, yl := range y.Links {
		l := LinkSpec{
			Name:      yl.Name,
			Parent:    yl.Parent,
			Mass:      yl.Mass,
			COM:       vec3OrZero(yl.COM),
			JointKind: yl.JointKind,
			OriginPos: vec3OrZero(yl.OriginPos),
			OriginAtt: vec3OrZero(yl.OriginAtt),
			QMin:      yl.QMin,
			QMax:      yl.QMax,
			Shapes:    yl.Shapes,
			Motor:     yl.Motor,
		}
		if len(yl.Inertia) > 0 {
			m, err := mat3FromSlice(yl.Inertia)
			if err != nil {
				return nil, errors.Wrapf(err, "link %q inertia", yl.Name)
			}
			l.Inertia = m
		}
		if yl.DH != nil {
			l.DH = &DHParam{A: yl.DH.A, D: yl.DH.D, Alpha: yl.DH.Alpha}
		}
		doc.Links = append(doc.Links, l)
	}
	return doc, nil
}

// LoadYAMLFile opens path and parses it with LoadYAML.
func LoadYAMLFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: opening %s", path)
	}
	defer f.Close()
	return LoadYAML(f)
}

func vec3OrZero(v []float64) spatial.Vec3 {
	if len(v) != 3 {
		return spatial.ZeroVec3
	}
	return spatial.NewVec3(v[0], v[1], v[2])
}

func mat3FromSlice(v []float64) (spatial.Mat3, error) {
	if len(v) != 9 {
		return spatial.ZeroMat3(), errors.Errorf("expected 9 values, got %d", len(v))
	}
	return spatial.NewMat3(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8]), nil
}
