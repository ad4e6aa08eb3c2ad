// Package path builds conventional REST paths for resources.
//
// Paths are built in one of two ways. Eager builders (Index, Create, Show, Edit,
// Delete) take types and live models and return a Path immediately. Lazy builders
// (IndexFor, CreateFor, ShowFor, EditFor, DeleteFor) return a Descriptor that is
// resolved against a Context once the models it refers to exist.
package path

import (
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
)

// Path is a URL path such as "/widgets/42/edit".
type Path string

func (p Path) String() string { return string(p) }

// Options alter the conventional path of a resource.
type Options struct {
	// Parent nests the path under a single parent resource:
	// /<parent segment>/<parent key>/<path>.
	Parent resource.Ref
	// Format appends an extension to the path, e.g. "json" -> ".json". Only eager
	// builders apply Format.
	Format string
}

// WithParent returns a copy of the options nested under the given model.
func (o Options) WithParent(m resource.Model) Options {
	o.Parent = resource.Live(m)
	return o
}

// WithFormat returns a copy of the options with the given format.
func (o Options) WithFormat(format string) Options {
	o.Format = format
	return o
}

const (
	newSuffix  = "/new"
	editSuffix = "/edit"
)

// Index returns /<segment(t)>.
func Index(t resource.Type, opts Options) (Path, error) {
	return addOpts(collection(t), opts)
}

// Create returns /<segment(t)>/new.
func Create(t resource.Type, opts Options) (Path, error) {
	return addOpts(collection(t)+newSuffix, opts)
}

// Show returns /<segment(type)>/<key> for the model.
func Show(m resource.Model, opts Options) (Path, error) {
	return addOpts(member(m.ResourceID()), opts)
}

// Edit returns /<segment(type)>/<key>/edit for the model.
func Edit(m resource.Model, opts Options) (Path, error) {
	return addOpts(member(m.ResourceID())+editSuffix, opts)
}

// Delete returns the same path as Show. Delete links are told apart from show
// links by their data-method attribute, not by their path.
func Delete(m resource.Model, opts Options) (Path, error) { return Show(m, opts) }

// Must panics if err is not nil and returns p otherwise.
func Must(p Path, err error) Path {
	if err != nil {
		panic(err)
	}
	return p
}

func collection(t resource.Type) Path { return Path("/" + t.Segment()) }

func member(id resource.ID) Path { return collection(id.Type) + Path("/"+id.Key) }

func addOpts(p Path, opts Options) (Path, error) {
	if !opts.Parent.IsZero() {
		if opts.Parent.IsSymbolic() {
			return "", errors.Wrapf(ErrSymbolicParent, "parent %s", opts.Parent)
		}
		p = member(opts.Parent.Model().ResourceID()) + p
	}
	if opts.Format != "" {
		p = p + Path("."+opts.Format)
	}
	return p, nil
}
