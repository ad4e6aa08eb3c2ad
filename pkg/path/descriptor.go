package path

import "github.com/cockroachdb/errors"

// Context is the state a Descriptor is resolved against: the variables bound by
// the running example and the path helpers registered for the suite.
type Context interface {
	// Get returns the value bound to name, if any.
	Get(name string) (interface{}, bool)
	// PathHelper returns the descriptor registered under name. It returns an error
	// wrapping ErrNoSuchOperation if there is none.
	PathHelper(name string) (Descriptor, error)
}

// Func computes a path from a Context.
type Func func(ctx Context) (Path, error)

type shape uint8

const (
	literalShape shape = iota + 1
	namedShape
	funcShape
)

// Descriptor is a deferred path. It is one of a literal path, the name of a path
// helper registered on the Context, or a function of the Context. The zero
// Descriptor is invalid.
type Descriptor struct {
	shape   shape
	literal Path
	name    string
	fn      Func
}

// Literal describes a fixed path.
func Literal(p string) Descriptor { return Descriptor{shape: literalShape, literal: Path(p)} }

// Named describes the path returned by the path helper registered as name.
func Named(name string) Descriptor { return Descriptor{shape: namedShape, name: name} }

// Of describes the path computed by f.
func Of(f Func) Descriptor { return Descriptor{shape: funcShape, fn: f} }

// Resolve computes the path described by d.
func (d Descriptor) Resolve(ctx Context) (Path, error) {
	switch d.shape {
	case literalShape:
		return d.literal, nil
	case namedShape:
		helper, err := ctx.PathHelper(d.name)
		if err != nil {
			return "", err
		}
		if helper.shape == namedShape && helper.name == d.name {
			return "", errors.Newf("[path] - helper %q resolves to itself", d.name)
		}
		return helper.Resolve(ctx)
	case funcShape:
		return d.fn(ctx)
	default:
		return "", errors.New("[path] - empty descriptor")
	}
}

func (d Descriptor) String() string {
	switch d.shape {
	case literalShape:
		return string(d.literal)
	case namedShape:
		return d.name
	case funcShape:
		return "<func>"
	default:
		return "<empty>"
	}
}
