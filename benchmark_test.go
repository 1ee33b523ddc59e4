package colorfilter

import (
	"testing"
)

func benchmarkFilter(b *testing.B, f ColorFilter) {
	b.Helper()
	b.ReportAllocs()
	var sink RGBA8
	i := 0
	for b.Loop() {
		sink = f.Apply(samples[i%len(samples)])
		i++
	}
	_ = sink
}

func BenchmarkModeFilter(b *testing.B) {
	benchmarkFilter(b, NewModeFilter(RGBA8{200, 40, 90, 180}, BlendModeSoftLight))
}

func BenchmarkLightingFilter(b *testing.B) {
	benchmarkFilter(b, NewLightingFilter(RGBA8{200, 180, 160, 255}, RGBA8{10, 0, 5, 0}))
}

func BenchmarkColorMatrixFilter(b *testing.B) {
	benchmarkFilter(b, NewColorMatrixFilterFrom(HueRotateMatrix(45)))
}

func BenchmarkColorCubeFilter(b *testing.B) {
	f, err := NewColorCubeFilter(identityCube(16), 16)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkFilter(b, f)
}

func BenchmarkTableFilter(b *testing.B) {
	f, err := NewTableFilterARGB(nil, invertTable(), invertTable(), invertTable())
	if err != nil {
		b.Fatal(err)
	}
	benchmarkFilter(b, f)
}

func BenchmarkEngine1080p(b *testing.B) {
	f, err := Chain(
		NewColorMatrixFilterFrom(SepiaMatrix()),
		NewLightingFilter(RGBA8{240, 230, 220, 255}, Transparent),
	)
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 0} {
		name := "inline"
		if workers == 0 {
			name = "pool"
		}
		b.Run(name, func(b *testing.B) {
			e := NewEngine(WithWorkers(workers))
			defer e.Close()
			pm := patternPixmap(1920, 1080)

			b.SetBytes(int64(len(pm.Data())))
			for b.Loop() {
				e.ApplyPixmap(f, pm)
			}
		})
	}
}
