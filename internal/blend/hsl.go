package blend

import "github.com/gogpu/colorfilter/internal/mathx"

// Non-separable blend modes (W3C Compositing Level 1, section 5.8).
// They operate on the whole RGB triplet, so the helpers below take and return
// unpremultiplied float32 triplets in [0, 1].

// Lum returns the W3C luminosity of a color.
// Formula: 0.30*r + 0.59*g + 0.11*b
func Lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns max(r, g, b) - min(r, g, b).
func Sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// ClipColor pulls out-of-range components back into [0, 1] towards the
// luminosity of the color.
func ClipColor(r, g, b float32) (float32, float32, float32) {
	l := Lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// SetLum shifts a color to luminosity l and clips it.
func SetLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d)
}

// SetSat rescales a color to saturation s keeping the order of its components.
func SetSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to the smallest, middle and largest components.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

type tripletFunc func(br, bg, bb, sr, sg, sb float32) (float32, float32, float32)

func hueTriplet(br, bg, bb, sr, sg, sb float32) (float32, float32, float32) {
	r, g, b := SetSat(sr, sg, sb, Sat(br, bg, bb))
	return SetLum(r, g, b, Lum(br, bg, bb))
}

func saturationTriplet(br, bg, bb, sr, sg, sb float32) (float32, float32, float32) {
	r, g, b := SetSat(br, bg, bb, Sat(sr, sg, sb))
	return SetLum(r, g, b, Lum(br, bg, bb))
}

func colorTriplet(br, bg, bb, sr, sg, sb float32) (float32, float32, float32) {
	return SetLum(sr, sg, sb, Lum(br, bg, bb))
}

func luminosityTriplet(br, bg, bb, sr, sg, sb float32) (float32, float32, float32) {
	return SetLum(br, bg, bb, Lum(sr, sg, sb))
}

// nonSeparable composites with the same formula as separable, but B is
// evaluated on the whole triplet.
func nonSeparable(sr, sg, sb, sa, dr, dg, db, da uint8, fn tripletFunc) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	as := float32(sa) / 255
	ab := float32(da) / 255
	unpremul := func(c uint8, a float32) float32 {
		return mathx.Clamp(float32(c)/255/a, 0, 1)
	}

	br, bg, bb := fn(
		unpremul(dr, ab), unpremul(dg, ab), unpremul(db, ab),
		unpremul(sr, as), unpremul(sg, as), unpremul(sb, as),
	)

	channel := func(s, d uint8, blended float32) uint8 {
		ps := float32(s) / 255
		pd := float32(d) / 255
		return mathx.RoundByte((ps*(1-ab) + pd*(1-as) + as*ab*blended) * 255)
	}

	return channel(sr, dr, br),
		channel(sg, dg, bg),
		channel(sb, db, bb),
		mathx.RoundByte((as + ab - as*ab) * 255)
}

func blendHue(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, hueTriplet)
}

func blendSaturation(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, saturationTriplet)
}

func blendColor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, colorTriplet)
}

func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, luminosityTriplet)
}
