package filterdef

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"

	"github.com/gogpu/colorfilter"
)

// Build constructs the filter described by n. Errors name the path of the
// offending node, e.g. "compose.outer.matrix".
func Build(n *Node) (colorfilter.ColorFilter, error) {
	return build(n, "")
}

func build(n *Node, path string) (colorfilter.ColorFilter, error) {
	if n == nil {
		return nil, errors.Wrapf(ErrInvalidDefinition, "%s: missing filter", display(path))
	}
	if keys := n.keys(); len(keys) != 1 {
		return nil, errors.Wrapf(ErrInvalidDefinition,
			"%s: expected exactly one filter key, found %v", display(path), keys)
	}

	switch {
	case n.Mode != nil:
		return buildMode(n.Mode, join(path, "mode"))
	case n.Lighting != nil:
		return buildLighting(n.Lighting, join(path, "lighting"))
	case n.Compose != nil:
		return buildCompose(n.Compose, join(path, "compose"))
	case n.Chain != nil:
		return buildChain(n.Chain, join(path, "chain"))
	case n.Cube != nil:
		return buildCube(n.Cube, join(path, "cube"))
	case n.Matrix != nil:
		f, err := colorfilter.NewColorMatrixFilter(n.Matrix)
		if err != nil {
			return nil, wrap(err, join(path, "matrix"))
		}
		return f, nil
	case n.Luma != nil:
		return colorfilter.NewLumaColorFilter(), nil
	case n.Table != nil:
		return buildTable(n.Table, join(path, "table"))
	default:
		return buildGamma(n.Gamma, join(path, "gamma"))
	}
}

// keys lists the filter keys set on n.
func (n *Node) keys() []string {
	var keys []string
	add := func(set bool, key string) {
		if set {
			keys = append(keys, key)
		}
	}
	add(n.Mode != nil, "mode")
	add(n.Lighting != nil, "lighting")
	add(n.Compose != nil, "compose")
	add(n.Chain != nil, "chain")
	add(n.Cube != nil, "cube")
	add(n.Matrix != nil, "matrix")
	add(n.Luma != nil, "luma")
	add(n.Table != nil, "table")
	add(n.Gamma != "", "gamma")
	return keys
}

func buildMode(m *ModeNode, path string) (colorfilter.ColorFilter, error) {
	c, err := parseColor(m.Color, "", join(path, "color"))
	if err != nil {
		return nil, err
	}
	mode := colorfilter.BlendModeSrcOver
	if m.Blend != "" {
		if mode, err = colorfilter.ParseBlendMode(m.Blend); err != nil {
			return nil, wrap(err, join(path, "blend"))
		}
	}
	return colorfilter.NewModeFilter(c, mode), nil
}

func buildLighting(l *LightingNode, path string) (colorfilter.ColorFilter, error) {
	mul, err := parseColor(l.Mul, "#ffffffff", join(path, "mul"))
	if err != nil {
		return nil, err
	}
	add, err := parseColor(l.Add, "#00000000", join(path, "add"))
	if err != nil {
		return nil, err
	}
	return colorfilter.NewLightingFilter(mul, add), nil
}

func buildCompose(c *ComposeNode, path string) (colorfilter.ColorFilter, error) {
	outer, err := build(c.Outer, join(path, "outer"))
	if err != nil {
		return nil, err
	}
	inner, err := build(c.Inner, join(path, "inner"))
	if err != nil {
		return nil, err
	}
	f, err := colorfilter.NewComposeFilter(outer, inner)
	if err != nil {
		return nil, wrap(err, path)
	}
	return f, nil
}

func buildChain(nodes []Node, path string) (colorfilter.ColorFilter, error) {
	filters := make([]colorfilter.ColorFilter, len(nodes))
	for i := range nodes {
		f, err := build(&nodes[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		filters[i] = f
	}
	f, err := colorfilter.Chain(filters...)
	if err != nil {
		return nil, wrap(err, path)
	}
	return f, nil
}

func buildCube(c *CubeNode, path string) (colorfilter.ColorFilter, error) {
	data, err := decodeBytes(c.Data, join(path, "data"))
	if err != nil {
		return nil, err
	}
	f, err := colorfilter.NewColorCubeFilter(data, c.Dimension)
	if err != nil {
		return nil, wrap(err, path)
	}
	return f, nil
}

func buildTable(t *TableNode, path string) (colorfilter.ColorFilter, error) {
	if t.All != "" {
		if t.A != "" || t.R != "" || t.G != "" || t.B != "" {
			return nil, errors.Wrapf(ErrInvalidDefinition, "%s: all cannot be combined with per-channel tables", path)
		}
		table, err := decodeBytes(t.All, join(path, "all"))
		if err != nil {
			return nil, err
		}
		f, err := colorfilter.NewTableFilter(table)
		if err != nil {
			return nil, wrap(err, join(path, "all"))
		}
		return f, nil
	}

	var tables [4][]byte
	for i, ch := range []struct{ key, val string }{{"a", t.A}, {"r", t.R}, {"g", t.G}, {"b", t.B}} {
		if ch.val == "" {
			continue
		}
		var err error
		if tables[i], err = decodeBytes(ch.val, join(path, ch.key)); err != nil {
			return nil, err
		}
	}
	f, err := colorfilter.NewTableFilterARGB(tables[0], tables[1], tables[2], tables[3])
	if err != nil {
		return nil, wrap(err, path)
	}
	return f, nil
}

func buildGamma(dir, path string) (colorfilter.ColorFilter, error) {
	switch dir {
	case colorfilter.SRGBToLinear.String():
		return colorfilter.NewSRGBToLinearFilter(), nil
	case colorfilter.LinearToSRGB.String():
		return colorfilter.NewLinearToSRGBFilter(), nil
	}
	return nil, errors.Wrapf(ErrInvalidDefinition, "%s: unknown direction %q", path, dir)
}

func parseColor(s, def, path string) (colorfilter.RGBA8, error) {
	if s == "" {
		if def == "" {
			return colorfilter.RGBA8{}, errors.Wrapf(ErrInvalidDefinition, "%s: required", path)
		}
		s = def
	}
	c, err := colorfilter.ParseHex(s)
	return c, wrap(err, path)
}

func decodeBytes(s, path string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: bad base64", path)
	}
	return b, nil
}

// wrap annotates err with path. It returns nil for a nil err.
func wrap(err error, path string) error {
	return errors.Wrap(err, display(path))
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func display(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
