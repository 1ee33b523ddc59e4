package filterdef

import (
	"bytes"
	"encoding/base64"

	"github.com/pkg/errors"

	"github.com/gogpu/colorfilter"
)

// FromFilter returns the definition of f. Compositions are written as
// compose nodes; Build of the result evaluates identically to f.
func FromFilter(f colorfilter.ColorFilter) (*Node, error) {
	switch v := f.(type) {
	case *colorfilter.ModeFilter:
		if v == nil {
			break
		}
		mode := v.Mode()
		if !mode.Valid() {
			// Undefined modes evaluate as src-over.
			mode = colorfilter.BlendModeSrcOver
		}
		return &Node{Mode: &ModeNode{Color: v.Color().Hex(), Blend: mode.String()}}, nil
	case *colorfilter.LightingFilter:
		if v == nil {
			break
		}
		return &Node{Lighting: &LightingNode{Mul: v.Mul().Hex(), Add: v.Add().Hex()}}, nil
	case *colorfilter.ComposeFilter:
		if v == nil {
			break
		}
		outer, err := FromFilter(v.Outer())
		if err != nil {
			return nil, err
		}
		inner, err := FromFilter(v.Inner())
		if err != nil {
			return nil, err
		}
		return &Node{Compose: &ComposeNode{Outer: outer, Inner: inner}}, nil
	case *colorfilter.ColorCubeFilter:
		if v == nil {
			break
		}
		return &Node{Cube: &CubeNode{
			Dimension: v.Dimension(),
			Data:      base64.StdEncoding.EncodeToString(v.Data()),
		}}, nil
	case *colorfilter.ColorMatrixFilter:
		if v == nil {
			break
		}
		m := v.Matrix()
		return &Node{Matrix: m[:]}, nil
	case *colorfilter.LumaColorFilter:
		return &Node{Luma: &LumaNode{}}, nil
	case *colorfilter.TableFilter:
		if v == nil {
			break
		}
		return &Node{Table: tableNode(v)}, nil
	case *colorfilter.GammaFilter:
		if v == nil {
			break
		}
		return &Node{Gamma: v.Direction().String()}, nil
	}
	return nil, errors.Wrap(ErrInvalidDefinition, "cannot encode a nil filter")
}

func tableNode(f *colorfilter.TableFilter) *TableNode {
	a, r, g, b := f.TableA(), f.TableR(), f.TableG(), f.TableB()
	if a != nil && bytes.Equal(a, r) && bytes.Equal(a, g) && bytes.Equal(a, b) {
		return &TableNode{All: encodeBytes(a)}
	}
	return &TableNode{A: encodeBytes(a), R: encodeBytes(r), G: encodeBytes(g), B: encodeBytes(b)}
}

func encodeBytes(b []byte) string {
	if b == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}
