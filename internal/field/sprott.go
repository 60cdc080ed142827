package field

import "github.com/san-kum/strange/internal/dynamo"

// Sprott is the Sprott case-S chaotic flow.
type Sprott struct {
	a, b float64
	init dynamo.State
}

func NewSprott() *Sprott {
	return &Sprott{2.07, 1.79, dynamo.State{X: 0.1}}
}

func (s *Sprott) DeriveX(x, y, z, _ float64) float64 { return y + s.a*x*y + x*z }
func (s *Sprott) DeriveY(x, y, z, _ float64) float64 { return 1 - s.b*x*x + y*z }
func (s *Sprott) DeriveZ(x, y, z, _ float64) float64 { return x - x*x - y*y }

func (s *Sprott) InitialState() dynamo.State { return s.init }

func (s *Sprott) Params() map[string]float64 {
	return map[string]float64{"a": s.a, "b": s.b}
}

func (s *Sprott) setParam(n string, v float64) {
	switch n {
	case "a":
		s.a = v
	case "b":
		s.b = v
	}
}

func (s *Sprott) setInitialState(st dynamo.State) { s.init = st }
