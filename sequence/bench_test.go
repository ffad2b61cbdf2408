package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvpoly/sequence"
)

// BenchmarkNew measures eager construction of a 1000-member sequence.
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sequence.New(1002, 1); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkMaxEfficiency measures the single-scan selection.
// Complexity: O(m)
func BenchmarkMaxEfficiency(b *testing.B) {
	s, err := sequence.New(1002, 1)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.MaxEfficiency()
	}
}
