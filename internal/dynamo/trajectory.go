package dynamo

// Sample is one recorded point of a simulation run.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	T float64 `json:"t"`
}

func (s Sample) State() State { return State{s.X, s.Y, s.Z} }

// Axis selects one spatial coordinate of a trajectory.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Trajectory is the ordered sequence of samples produced by one run.
// It is never mutated after construction.
type Trajectory struct {
	samples []Sample
}

// NewTrajectory takes ownership of samples; callers must not retain the slice.
func NewTrajectory(samples []Sample) *Trajectory {
	return &Trajectory{samples: samples}
}

func (tr *Trajectory) Len() int        { return len(tr.samples) }
func (tr *Trajectory) At(i int) Sample { return tr.samples[i] }
func (tr *Trajectory) First() Sample   { return tr.samples[0] }
func (tr *Trajectory) Last() Sample    { return tr.samples[len(tr.samples)-1] }

// Range returns the minimum and maximum value of one axis across the whole
// trajectory. Renderers use it to size a bounding box.
func (tr *Trajectory) Range(axis Axis) (min, max float64) {
	min = tr.samples[0].State().Component(axis)
	max = min
	for _, s := range tr.samples[1:] {
		v := s.State().Component(axis)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
