package config

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sugihara-lab/roki/spatial"
)

// Load reads the native tagged-section chain format from r.
func Load(r io.Reader) (*Document, error) {
	doc := &Document{Init: InitSpec{JointInit: map[string][]float64{}}}
	var tag string
	var cur *LinkSpec

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			tag = strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			if tag == "link" {
				doc.Links = append(doc.Links, LinkSpec{})
				cur = &doc.Links[len(doc.Links)-1]
			} else {
				cur = nil
			}
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Errorf("config: line %d: expected \"key: value\", got %q", lineNo, line)
		}
		key = strings.TrimSpace(strings.ToLower(key))
		val = strings.TrimSpace(val)

		var err error
		switch tag {
		case "chain":
			err = applyChainField(doc, key, val)
		case "link":
			if cur == nil {
				err = errors.Errorf("line %d: link field outside a [link] block", lineNo)
			} else {
				err = applyLinkField(cur, key, val)
			}
		case "init":
			err = applyInitField(doc, key, val)
		case "optic", "shape", "motor":
			// opaque tables consumed by other subsystems; skipped here.
		default:
			err = errors.Errorf("line %d: field %q outside any recognized section", lineNo, key)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "config: line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: opening %s", path)
	}
	defer f.Close()
	return Load(f)
}

func applyChainField(doc *Document, key, val string) error {
	switch key {
	case "name":
		doc.ChainName = val
	default:
		return errors.Errorf("unknown [chain] field %q", key)
	}
	return nil
}

func applyLinkField(l *LinkSpec, key, val string) error {
	var err error
	switch key {
	case "name":
		l.Name = val
	case "parent":
		l.Parent = val
	case "mass":
		l.Mass, err = strconv.ParseFloat(val, 64)
	case "com":
		l.COM, err = parseVec3(val)
	case "inertia":
		l.Inertia, err = parseMat3(val)
	case "joint":
		l.JointKind = val
	case "origin.pos":
		l.OriginPos, err = parseVec3(val)
	case "origin.att":
		l.OriginAtt, err = parseVec3(val)
	case "dh":
		var nums []float64
		nums, err = parseFloats(val)
		if err == nil {
			if len(nums) != 3 {
				return errors.Errorf("dh: expected 3 values (a d alpha), got %d", len(nums))
			}
			l.DH = &DHParam{A: nums[0], D: nums[1], Alpha: nums[2]}
		}
	case "limit":
		var nums []float64
		nums, err = parseFloats(val)
		if err == nil {
			if len(nums)%2 != 0 {
				return errors.Errorf("limit: expected pairs of qmin qmax, got %d values", len(nums))
			}
			for i := 0; i < len(nums); i += 2 {
				l.QMin = append(l.QMin, nums[i])
				l.QMax = append(l.QMax, nums[i+1])
			}
		}
	case "shape":
		l.Shapes = append(l.Shapes, val)
	case "motor":
		l.Motor = val
	default:
		return errors.Errorf("unknown [link] field %q", key)
	}
	return err
}

func applyInitField(doc *Document, key, val string) error {
	var err error
	switch key {
	case "pos":
		doc.Init.Pos, err = parseVec3(val)
	case "att":
		doc.Init.Att, err = parseVec3(val)
	case "joint":
		fields := strings.Fields(val)
		if len(fields) < 2 {
			return errors.Errorf("init joint: expected \"<link_name> <q-values...>\", got %q", val)
		}
		name := fields[0]
		q := make([]float64, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return perr
			}
			q = append(q, v)
		}
		doc.Init.JointInit[name] = q
	default:
		return errors.Errorf("unknown [init] field %q", key)
	}
	return err
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseVec3(s string) (spatial.Vec3, error) {
	nums, err := parseFloats(s)
	if err != nil {
		return spatial.ZeroVec3, err
	}
	if len(nums) != 3 {
		return spatial.ZeroVec3, errors.Errorf("expected 3 values, got %d", len(nums))
	}
	return spatial.NewVec3(nums[0], nums[1], nums[2]), nil
}

func parseMat3(s string) (spatial.Mat3, error) {
	nums, err := parseFloats(s)
	if err != nil {
		return spatial.ZeroMat3(), err
	}
	if len(nums) != 9 {
		return spatial.ZeroMat3(), errors.Errorf("expected 9 values, got %d", len(nums))
	}
	return spatial.NewMat3(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5], nums[6], nums[7], nums[8]), nil
}
