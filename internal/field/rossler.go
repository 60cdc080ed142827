package field

import "github.com/san-kum/strange/internal/dynamo"

// Rossler is the Rössler system, a minimal three-term chaotic flow.
type Rossler struct {
	a, b, c float64
	init    dynamo.State
}

func NewRossler() *Rossler {
	return &Rossler{0.2, 0.2, 5.7, dynamo.State{X: 0.1, Z: -0.1}}
}

func (r *Rossler) DeriveX(x, y, z, _ float64) float64 { return -y - z }
func (r *Rossler) DeriveY(x, y, z, _ float64) float64 { return x + r.a*y }
func (r *Rossler) DeriveZ(x, y, z, _ float64) float64 { return r.b + z*(x-r.c) }

func (r *Rossler) InitialState() dynamo.State { return r.init }

func (r *Rossler) Params() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c}
}

func (r *Rossler) setParam(n string, v float64) {
	switch n {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	}
}

func (r *Rossler) setInitialState(s dynamo.State) { r.init = s }
