package field

import "github.com/san-kum/strange/internal/dynamo"

// Lorenz is the classic Lorenz system.
type Lorenz struct {
	sigma, rho, beta float64
	init             dynamo.State
}

func NewLorenz() *Lorenz {
	return &Lorenz{10.0, 28.0, 8.0 / 3.0, dynamo.State{X: 0.1, Y: 0.1, Z: 0.1}}
}

func (l *Lorenz) DeriveX(x, y, z, _ float64) float64 { return l.sigma * (y - x) }
func (l *Lorenz) DeriveY(x, y, z, _ float64) float64 { return x*(l.rho-z) - y }
func (l *Lorenz) DeriveZ(x, y, z, _ float64) float64 { return x*y - l.beta*z }

func (l *Lorenz) InitialState() dynamo.State { return l.init }

func (l *Lorenz) Params() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}

func (l *Lorenz) setParam(n string, v float64) {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	}
}

func (l *Lorenz) setInitialState(s dynamo.State) { l.init = s }
