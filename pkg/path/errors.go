package path

import (
	"fmt"
	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingResource is returned when a symbolic resource reference is resolved
	// before the variable it names has been bound.
	ErrMissingResource = errors.New("[path] - missing resource")
	// ErrNoSuchOperation is returned when a path helper is not registered.
	ErrNoSuchOperation = errors.New("[path] - no such operation")
	// ErrSymbolicParent is returned when an eager builder receives a parent that
	// can only be resolved against a context.
	ErrSymbolicParent = errors.New("[path] - symbolic parent requires a context")
)

// MissingResourceError names the unbound variable a descriptor tried to read.
type MissingResourceError struct {
	// Name is the variable name the descriptor looked up.
	Name string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("[path] - resource %q is not bound in the current context", e.Name)
}

// Is allows errors.Is(err, ErrMissingResource).
func (e *MissingResourceError) Is(target error) bool { return target == ErrMissingResource }
