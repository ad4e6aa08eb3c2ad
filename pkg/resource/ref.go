package resource

// Ref refers to a resource either directly through a live Model or
// symbolically by the name of the variable that will hold the model once it
// exists.
type Ref struct {
	model Model
	name  string
}

// Live references a model that already exists.
func Live(m Model) Ref { return Ref{model: m} }

// Named references the model bound to the variable name at execution time.
func Named(name string) Ref { return Ref{name: name} }

// IsZero returns true if the Ref references nothing.
func (r Ref) IsZero() bool { return r.model == nil && r.name == "" }

// IsSymbolic returns true if the Ref must be resolved by name.
func (r Ref) IsSymbolic() bool { return r.model == nil && r.name != "" }

// Model returns the live model, or nil for a symbolic Ref.
func (r Ref) Model() Model { return r.model }

// Name returns the variable name of a symbolic Ref.
func (r Ref) Name() string { return r.name }

func (r Ref) String() string {
	switch {
	case r.model != nil:
		return r.model.ResourceID().String()
	case r.name != "":
		return ":" + r.name
	default:
		return "<nil>"
	}
}
