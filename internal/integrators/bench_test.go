package integrators

import (
	"testing"

	"github.com/san-kum/strange/internal/field"
)

func BenchmarkEuler(b *testing.B) {
	integ := NewEuler()
	f := field.NewLorenz()
	s := f.InitialState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = integ.Step(f, s, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	f := field.NewLorenz()
	s := f.InitialState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = integ.Step(f, s, 0, 0.01)
	}
}
