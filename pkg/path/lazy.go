package path

import (
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
)

// IndexFor describes /<segment(name)>.
func IndexFor(name string, opts Options) Descriptor {
	return Of(func(ctx Context) (Path, error) {
		return nestLazy(ctx, collection(resource.Type(name)), opts)
	})
}

// CreateFor describes /<segment(name)>/new.
func CreateFor(name string, opts Options) Descriptor {
	return Of(func(ctx Context) (Path, error) {
		return nestLazy(ctx, collection(resource.Type(name))+newSuffix, opts)
	})
}

// ShowFor describes the show path of the model bound to the variable name at
// resolution time.
func ShowFor(name string, opts Options) Descriptor {
	return Of(func(ctx Context) (Path, error) {
		id, err := Lookup(ctx, name)
		if err != nil {
			return "", err
		}
		return nestLazy(ctx, collection(resource.Type(name))+Path("/"+id.Key), opts)
	})
}

// EditFor describes the edit path of the model bound to the variable name at
// resolution time.
func EditFor(name string, opts Options) Descriptor {
	return Of(func(ctx Context) (Path, error) {
		id, err := Lookup(ctx, name)
		if err != nil {
			return "", err
		}
		return nestLazy(ctx, collection(resource.Type(name))+Path("/"+id.Key)+editSuffix, opts)
	})
}

// DeleteFor describes the same path as ShowFor.
func DeleteFor(name string, opts Options) Descriptor { return ShowFor(name, opts) }

// Lookup returns the ID of the model bound to name in ctx. It returns a
// *MissingResourceError if nothing is bound to name.
func Lookup(ctx Context, name string) (resource.ID, error) {
	v, ok := ctx.Get(name)
	if !ok || v == nil {
		return resource.ID{}, &MissingResourceError{Name: name}
	}
	m, ok := v.(resource.Model)
	if !ok {
		return resource.ID{}, errors.Newf("[path] - %q is bound to %T, which is not a resource", name, v)
	}
	return m.ResourceID(), nil
}

// nestLazy prefixes p with the parent in opts. Symbolic parents are segmented by
// their variable name, live parents by their type. Format is not applied.
func nestLazy(ctx Context, p Path, opts Options) (Path, error) {
	if opts.Parent.IsZero() {
		return p, nil
	}
	if !opts.Parent.IsSymbolic() {
		return member(opts.Parent.Model().ResourceID()) + p, nil
	}
	name := opts.Parent.Name()
	id, err := Lookup(ctx, name)
	if err != nil {
		return "", err
	}
	return collection(resource.Type(name)) + Path("/"+id.Key) + p, nil
}
