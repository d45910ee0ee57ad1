package vregistry

import (
	"testing"

	"github.com/michaelolof/vregistry/validators/rules"
)

// BenchmarkDispatchResolved measures dispatch to an already resolved validator,
// the steady-state path once every entry has been built.
func BenchmarkDispatchResolved(b *testing.B) {
	r := newTestRegistry()
	if err := r.Register("CharCount", WithArgs(32), Eager()); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch("CharCount", "7dddf7e"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDispatchParallel(b *testing.B) {
	r := newTestRegistry()
	if err := r.From("Hex", rules.IsHexLoose); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := r.Dispatch("Hex", "7dddf7e"); err != nil {
				b.Fatal(err)
			}
		}
	})
}
