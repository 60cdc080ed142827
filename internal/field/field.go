// Package field defines the strange-attractor vector fields and the factory
// that constructs them from a symbolic kind.
package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/strange/internal/dynamo"
)

// ErrUnknownAttractor is returned when a kind is outside the enumerated set.
var ErrUnknownAttractor = errors.New("unknown attractor")

// Kind enumerates the supported attractors.
type Kind int

const (
	KindLangford Kind = iota
	KindLorenz
	KindRossler
	KindSprott
)

func (k Kind) String() string {
	switch k {
	case KindLangford:
		return "langford"
	case KindLorenz:
		return "lorenz"
	case KindRossler:
		return "rossler"
	case KindSprott:
		return "sprott"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds lists all supported attractor kinds in display order.
func Kinds() []Kind {
	return []Kind{KindLangford, KindLorenz, KindRossler, KindSprott}
}

// ParseKind maps a free-form attractor name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "langford":
		return KindLangford, nil
	case "lorenz":
		return KindLorenz, nil
	case "rossler":
		return KindRossler, nil
	case "sprott":
		return KindSprott, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttractor, name)
}

type settable interface {
	setParam(name string, value float64)
	setInitialState(s dynamo.State)
}

// Option overrides a default at construction time. Fields are immutable once
// New returns.
type Option func(settable)

// WithParam overrides one named parameter. Unknown names are ignored; values
// are not range-checked since every equation is defined for all reals.
func WithParam(name string, value float64) Option {
	return func(f settable) { f.setParam(name, value) }
}

// WithInitialState overrides the default initial condition.
func WithInitialState(s dynamo.State) Option {
	return func(f settable) { f.setInitialState(s) }
}

// New constructs a vector field of the given kind with default parameters,
// then applies the options.
func New(kind Kind, opts ...Option) (dynamo.Field, error) {
	var f interface {
		dynamo.Field
		settable
	}

	switch kind {
	case KindLangford:
		f = NewLangford()
	case KindLorenz:
		f = NewLorenz()
	case KindRossler:
		f = NewRossler()
	case KindSprott:
		f = NewSprott()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttractor, kind)
	}

	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}
