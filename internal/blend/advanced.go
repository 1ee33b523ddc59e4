package blend

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/colorfilter/internal/mathx"
)

// separable applies a per-channel blend function B(cb, cs) using the W3C
// compositing formula on premultiplied inputs:
//
//	co = cs*(1-ab) + cb*(1-as) + as*ab*B(cb/ab, cs/as)
//	ao = as + ab - as*ab
//
// B receives unpremultiplied backdrop and source values in [0, 1].
func separable(sr, sg, sb, sa, dr, dg, db, da uint8, fn func(cb, cs float32) float32) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	as := float32(sa) / 255
	ab := float32(da) / 255

	channel := func(s, d uint8) uint8 {
		ps := float32(s) / 255
		pd := float32(d) / 255
		cs := mathx.Clamp(ps/as, 0, 1)
		cb := mathx.Clamp(pd/ab, 0, 1)
		co := ps*(1-ab) + pd*(1-as) + as*ab*fn(cb, cs)
		return mathx.RoundByte(co * 255)
	}

	return channel(sr, dr),
		channel(sg, dg),
		channel(sb, db),
		mathx.RoundByte((as + ab - as*ab) * 255)
}

func multiplyChannel(cb, cs float32) float32 { return cb * cs }

func screenChannel(cb, cs float32) float32 { return cb + cs - cb*cs }

func hardLightChannel(cb, cs float32) float32 {
	if cs <= 0.5 {
		return multiplyChannel(cb, 2*cs)
	}
	return screenChannel(cb, 2*cs-1)
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, multiplyChannel)
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChannel)
}

// blendOverlay is HardLight with backdrop and source swapped.
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return hardLightChannel(cs, cb)
	})
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return math32.Min(cb, cs)
	})
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return math32.Max(cb, cs)
	})
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		switch {
		case cb == 0:
			return 0
		case cs >= 1:
			return 1
		default:
			return math32.Min(1, cb/(1-cs))
		}
	})
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		switch {
		case cb >= 1:
			return 1
		case cs == 0:
			return 0
		default:
			return 1 - math32.Min(1, (1-cb)/cs)
		}
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChannel)
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float32
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math32.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	})
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return math32.Abs(cb - cs)
	})
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(cb, cs float32) float32 {
		return cb + cs - 2*cb*cs
	})
}
