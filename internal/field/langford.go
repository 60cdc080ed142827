package field

import "github.com/san-kum/strange/internal/dynamo"

// Langford is the Langford (Aizawa) system.
type Langford struct {
	a, b, c, d, e, f float64
	init             dynamo.State
}

func NewLangford() *Langford {
	return &Langford{0.95, 0.7, 0.6, 3.5, 0.25, 0.1, dynamo.State{X: 0.1}}
}

func (l *Langford) DeriveX(x, y, z, _ float64) float64 { return (z-l.b)*x - l.d*y }
func (l *Langford) DeriveY(x, y, z, _ float64) float64 { return l.d*x + (z-l.b)*y }
func (l *Langford) DeriveZ(x, y, z, _ float64) float64 {
	return l.c + l.a*z - z*z*z/3 - (x*x+y*y)*(1+l.e*z) + l.f*z*x*x*x
}

func (l *Langford) InitialState() dynamo.State { return l.init }

func (l *Langford) Params() map[string]float64 {
	return map[string]float64{"a": l.a, "b": l.b, "c": l.c, "d": l.d, "e": l.e, "f": l.f}
}

func (l *Langford) setParam(n string, v float64) {
	switch n {
	case "a":
		l.a = v
	case "b":
		l.b = v
	case "c":
		l.c = v
	case "d":
		l.d = v
	case "e":
		l.e = v
	case "f":
		l.f = v
	}
}

func (l *Langford) setInitialState(s dynamo.State) { l.init = s }
