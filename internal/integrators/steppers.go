package integrators

import (
	"fmt"

	"github.com/san-kum/strange/internal/dynamo"
)

// ByName returns a stepper for a symbolic name.
func ByName(name string) (dynamo.Stepper, error) {
	switch name {
	case "rk4":
		return NewRK4(), nil
	case "euler":
		return NewEuler(), nil
	}
	return nil, fmt.Errorf("unknown stepper: %s", name)
}
