package acceptance

import (
	"fmt"
	"github.com/arya-analytics/saki/pkg/page"
	"github.com/arya-analytics/saki/pkg/path"
	"github.com/cockroachdb/errors"
)

// Step is a setup hook run before every example of the group it is declared in.
type Step func(c *Context) error

// Example is the body of a single example.
type Example func(c *Context)

// ErrLinkNotFound is returned by the setup of OnFollowingLinkTo when the link it
// should follow is not on the current page.
var ErrLinkNotFound = errors.New("[acceptance] - link not found")

// Group accumulates the setup steps, nested groups and examples of a single
// container. Nothing is registered with the runner until the Suite owning the
// group is registered.
type Group struct {
	text  string
	steps []Step
	nodes []node
}

type node interface{ isNode() }

type example struct {
	text string
	body Example
}

func (*Group) isNode()  {}
func (example) isNode() {}

func newGroup(text string, body func(g *Group)) *Group {
	g := &Group{text: text}
	if body != nil {
		body(g)
	}
	return g
}

// Text returns the description of the group.
func (g *Group) Text() string { return g.text }

// Describe nests a group.
func (g *Group) Describe(text string, body func(g *Group)) *Group {
	child := newGroup(text, body)
	g.nodes = append(g.nodes, child)
	return child
}

// Context is an alias for Describe.
func (g *Group) Context(text string, body func(g *Group)) *Group { return g.Describe(text, body) }

// BeforeEach adds a setup step to the group.
func (g *Group) BeforeEach(step Step) { g.steps = append(g.steps, step) }

// It adds an example to the group.
func (g *Group) It(text string, body Example) {
	g.nodes = append(g.nodes, example{text: text, body: body})
}

// WithExisting nests a group whose examples start with a default instance of name
// built by the factory and bound to the variable name.
func (g *Group) WithExisting(name string, body func(g *Group)) *Group {
	return g.nest(fmt.Sprintf("with existing %s", name), func(c *Context) error {
		return c.bindExisting(name)
	}, body)
}

// OnFollowingLinkTo nests a group whose examples start by asserting that the
// current page links to d and then visiting it.
func (g *Group) OnFollowingLinkTo(d path.Descriptor, body func(g *Group)) *Group {
	return g.nest("on following link", func(c *Context) error {
		p, err := c.GetPath(d)
		if err != nil {
			return err
		}
		doc, err := c.Page()
		if err != nil {
			return err
		}
		if !doc.Has(page.Link(p.String())) {
			return errors.Wrapf(ErrLinkNotFound, "%s", p)
		}
		return c.VisitPath(p)
	}, body)
}

// OnVisiting nests a group whose examples start by visiting d.
func (g *Group) OnVisiting(d path.Descriptor, body func(g *Group)) *Group {
	return g.nest("on visiting", func(c *Context) error { return c.Visit(d) }, body)
}

// Where nests a group whose examples start by running step.
func (g *Group) Where(step Step, body func(g *Group)) *Group {
	return g.nest("anonymous closure", step, body)
}

func (g *Group) nest(text string, step Step, body func(g *Group)) *Group {
	child := &Group{text: text, steps: []Step{step}}
	if body != nil {
		body(child)
	}
	g.nodes = append(g.nodes, child)
	return child
}
