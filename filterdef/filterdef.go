// Package filterdef reads and writes color filter trees as YAML.
//
// A definition is a tree of nodes. Every node holds exactly one filter key:
//
//	compose:
//	  outer:
//	    matrix: [1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0]
//	  inner:
//	    lighting: {mul: "#ffffffff", add: "#10000000"}
//
// Colors are hex strings accepted by colorfilter.ParseHex. Cube data and
// lookup tables are standard base64.
package filterdef

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorfilter"
)

// ErrInvalidDefinition is wrapped by errors for definitions that are
// structurally wrong: no filter key, several keys, or missing operands.
// Errors raised by the filter constructors wrap
// colorfilter.ErrInvalidArgument instead.
var ErrInvalidDefinition = errors.New("filterdef: invalid definition")

// Node is one filter in a definition. Exactly one field must be set.
type Node struct {
	Mode     *ModeNode     `yaml:"mode,omitempty"`
	Lighting *LightingNode `yaml:"lighting,omitempty"`
	Compose  *ComposeNode  `yaml:"compose,omitempty"`
	Chain    []Node        `yaml:"chain,omitempty"`
	Cube     *CubeNode     `yaml:"cube,omitempty"`
	Matrix   []float32     `yaml:"matrix,omitempty,flow"`
	Luma     *LumaNode     `yaml:"luma,omitempty"`
	Table    *TableNode    `yaml:"table,omitempty"`
	Gamma    string        `yaml:"gamma,omitempty"`
}

// ModeNode describes a colorfilter.ModeFilter. Blend defaults to src-over.
type ModeNode struct {
	Color string `yaml:"color"`
	Blend string `yaml:"blend,omitempty"`
}

// LightingNode describes a colorfilter.LightingFilter. Mul defaults to
// opaque white and Add to transparent black.
type LightingNode struct {
	Mul string `yaml:"mul,omitempty"`
	Add string `yaml:"add,omitempty"`
}

// ComposeNode describes outer(inner(c)).
type ComposeNode struct {
	Outer *Node `yaml:"outer"`
	Inner *Node `yaml:"inner"`
}

// CubeNode describes a colorfilter.ColorCubeFilter.
type CubeNode struct {
	Dimension int    `yaml:"dimension"`
	Data      string `yaml:"data"`
}

// LumaNode describes the luma filter. It has no parameters.
type LumaNode struct{}

// TableNode describes a colorfilter.TableFilter. Either All is set, or any
// subset of A, R, G and B.
type TableNode struct {
	All string `yaml:"all,omitempty"`
	A   string `yaml:"a,omitempty"`
	R   string `yaml:"r,omitempty"`
	G   string `yaml:"g,omitempty"`
	B   string `yaml:"b,omitempty"`
}

// Decode reads one YAML document from r and builds the filter it describes.
// Unknown keys are rejected.
func Decode(r io.Reader) (colorfilter.ColorFilter, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var n Node
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidDefinition, "empty document")
		}
		return nil, errors.Wrap(err, "filterdef: parse")
	}

	f, err := Build(&n)
	if err != nil {
		return nil, err
	}
	colorfilter.Logger().Debug("filterdef: decoded filter", "kind", f.Kind())
	return f, nil
}

// Unmarshal builds the filter described by the YAML document in data.
func Unmarshal(data []byte) (colorfilter.ColorFilter, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes the definition of f to w.
func Encode(w io.Writer, f colorfilter.ColorFilter) error {
	n, err := FromFilter(f)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return errors.Wrap(err, "filterdef: encode")
	}
	return errors.Wrap(enc.Close(), "filterdef: encode")
}

// Marshal returns the YAML definition of f.
func Marshal(f colorfilter.ColorFilter) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
