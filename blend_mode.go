package colorfilter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/colorfilter/internal/blend"
)

// BlendMode selects how a ModeFilter combines its constant color (the
// source) with the filtered pixel (the destination). Values follow Skia's
// SkBlendMode numbering.
type BlendMode uint8

const (
	BlendModeClear      = BlendMode(blend.Clear)
	BlendModeSrc        = BlendMode(blend.Src)
	BlendModeDst        = BlendMode(blend.Dst)
	BlendModeSrcOver    = BlendMode(blend.SrcOver)
	BlendModeDstOver    = BlendMode(blend.DstOver)
	BlendModeSrcIn      = BlendMode(blend.SrcIn)
	BlendModeDstIn      = BlendMode(blend.DstIn)
	BlendModeSrcOut     = BlendMode(blend.SrcOut)
	BlendModeDstOut     = BlendMode(blend.DstOut)
	BlendModeSrcATop    = BlendMode(blend.SrcATop)
	BlendModeDstATop    = BlendMode(blend.DstATop)
	BlendModeXor        = BlendMode(blend.Xor)
	BlendModePlus       = BlendMode(blend.Plus)
	BlendModeModulate   = BlendMode(blend.Modulate)
	BlendModeScreen     = BlendMode(blend.Screen)
	BlendModeOverlay    = BlendMode(blend.Overlay)
	BlendModeDarken     = BlendMode(blend.Darken)
	BlendModeLighten    = BlendMode(blend.Lighten)
	BlendModeColorDodge = BlendMode(blend.ColorDodge)
	BlendModeColorBurn  = BlendMode(blend.ColorBurn)
	BlendModeHardLight  = BlendMode(blend.HardLight)
	BlendModeSoftLight  = BlendMode(blend.SoftLight)
	BlendModeDifference = BlendMode(blend.Difference)
	BlendModeExclusion  = BlendMode(blend.Exclusion)
	BlendModeMultiply   = BlendMode(blend.Multiply)
	BlendModeHue        = BlendMode(blend.Hue)
	BlendModeSaturation = BlendMode(blend.Saturation)
	BlendModeColor      = BlendMode(blend.Color)
	BlendModeLuminosity = BlendMode(blend.Luminosity)
)

var blendModeNames = [...]string{
	BlendModeClear:      "clear",
	BlendModeSrc:        "src",
	BlendModeDst:        "dst",
	BlendModeSrcOver:    "src-over",
	BlendModeDstOver:    "dst-over",
	BlendModeSrcIn:      "src-in",
	BlendModeDstIn:      "dst-in",
	BlendModeSrcOut:     "src-out",
	BlendModeDstOut:     "dst-out",
	BlendModeSrcATop:    "src-atop",
	BlendModeDstATop:    "dst-atop",
	BlendModeXor:        "xor",
	BlendModePlus:       "plus",
	BlendModeModulate:   "modulate",
	BlendModeScreen:     "screen",
	BlendModeOverlay:    "overlay",
	BlendModeDarken:     "darken",
	BlendModeLighten:    "lighten",
	BlendModeColorDodge: "color-dodge",
	BlendModeColorBurn:  "color-burn",
	BlendModeHardLight:  "hard-light",
	BlendModeSoftLight:  "soft-light",
	BlendModeDifference: "difference",
	BlendModeExclusion:  "exclusion",
	BlendModeMultiply:   "multiply",
	BlendModeHue:        "hue",
	BlendModeSaturation: "saturation",
	BlendModeColor:      "color",
	BlendModeLuminosity: "luminosity",
}

// String returns the kebab-case name of the mode, e.g. "src-over".
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendModeNames[m]
}

// Valid reports whether m is a defined mode.
func (m BlendMode) Valid() bool {
	return blend.Mode(m).Valid()
}

var modeNameSeparators = strings.NewReplacer("-", "", "_", "", " ", "")

// normalizeModeName folds case and drops separators so that "SrcOver",
// "src_over" and "SRC-OVER" compare equal. A Caser is stateful, so each
// call gets its own.
func normalizeModeName(s string) string {
	return cases.Fold().String(modeNameSeparators.Replace(s))
}

var blendModesByName = func() map[string]BlendMode {
	m := make(map[string]BlendMode, len(blendModeNames))
	for mode, name := range blendModeNames {
		m[normalizeModeName(name)] = BlendMode(mode)
	}
	return m
}()

// ParseBlendMode looks up a mode by name, ignoring case and the separators
// '-', '_' and ' '.
func ParseBlendMode(name string) (BlendMode, error) {
	if m, ok := blendModesByName[normalizeModeName(name)]; ok {
		return m, nil
	}
	return 0, invalidArgument("ParseBlendMode", "name", fmt.Sprintf("unknown blend mode %q", name))
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, invalidArgument("BlendMode.MarshalText", "mode", fmt.Sprintf("undefined blend mode %d", uint8(m)))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	parsed, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
