package blend

import "github.com/gogpu/colorfilter/internal/mathx"

var (
	mul = mathx.MulDiv255
	add = mathx.AddClamp
)

func blendClear(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func blendSrc(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func blendDst(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

// blendSrcOver composites source over destination.
// Formula: S + D*(1-Sa)
func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return add(sr, mul(dr, invSa)),
		add(sg, mul(dg, invSa)),
		add(sb, mul(db, invSa)),
		add(sa, mul(da, invSa))
}

// blendDstOver composites destination over source.
// Formula: S*(1-Da) + D
func blendDstOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return blendSrcOver(dr, dg, db, da, sr, sg, sb, sa)
}

// blendSrcIn keeps the source where the destination is opaque.
// Formula: S*Da
func blendSrcIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mul(sr, da), mul(sg, da), mul(sb, da), mul(sa, da)
}

// blendDstIn keeps the destination where the source is opaque.
// Formula: D*Sa
func blendDstIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mul(dr, sa), mul(dg, sa), mul(db, sa), mul(da, sa)
}

// blendSrcOut keeps the source where the destination is transparent.
// Formula: S*(1-Da)
func blendSrcOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return mul(sr, invDa), mul(sg, invDa), mul(sb, invDa), mul(sa, invDa)
}

// blendDstOut keeps the destination where the source is transparent.
// Formula: D*(1-Sa)
func blendDstOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return mul(dr, invSa), mul(dg, invSa), mul(db, invSa), mul(da, invSa)
}

// blendSrcATop composites source over destination, keeping destination alpha.
// Formula: S*Da + D*(1-Sa)
func blendSrcATop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return add(mul(sr, da), mul(dr, invSa)),
		add(mul(sg, da), mul(dg, invSa)),
		add(mul(sb, da), mul(db, invSa)),
		da
}

// blendDstATop composites destination over source, keeping source alpha.
// Formula: S*(1-Da) + D*Sa
func blendDstATop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return add(mul(sr, invDa), mul(dr, sa)),
		add(mul(sg, invDa), mul(dg, sa)),
		add(mul(sb, invDa), mul(db, sa)),
		sa
}

// blendXor keeps source and destination where they do not overlap.
// Formula: S*(1-Da) + D*(1-Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	invSa := 255 - sa
	return add(mul(sr, invDa), mul(dr, invSa)),
		add(mul(sg, invDa), mul(dg, invSa)),
		add(mul(sb, invDa), mul(db, invSa)),
		add(mul(sa, invDa), mul(da, invSa))
}

// blendPlus adds source and destination, saturating at 255.
func blendPlus(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return add(sr, dr), add(sg, dg), add(sb, db), add(sa, da)
}

// blendModulate multiplies every channel, alpha included.
func blendModulate(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mul(sr, dr), mul(sg, dg), mul(sb, db), mul(sa, da)
}
