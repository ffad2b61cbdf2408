package polygon_test

import (
	"testing"

	"github.com/katalvlaran/lvpoly/polygon"
)

// BenchmarkArea measures the derived area computation (two trig calls).
func BenchmarkArea(b *testing.B) {
	p, err := polygon.New(12, 3)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += p.Area()
	}
	_ = sink
}

// BenchmarkEqualAny measures the dynamic comparison path.
func BenchmarkEqualAny(b *testing.B) {
	p, _ := polygon.New(12, 3)
	q, _ := polygon.New(12, 3)
	var v any = q

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.EqualAny(v)
	}
}
