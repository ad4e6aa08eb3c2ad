// Package acceptance provides declarative scaffolding for acceptance tests: groups
// that bind existing resources, visit or follow links to conventional paths, and
// assert on the links rendered by the application.
//
// A suite is declared once with Integrate and registered with ginkgo:
//
//	var _ = acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
//		g.WithExisting("order", func(g *acceptance.Group) {
//			g.OnVisiting(path.ShowFor("order", path.Options{}), func(g *acceptance.Group) {
//				g.It("Should link to the edit page", func(c *acceptance.Context) {
//					order, _ := c.Model("order")
//					c.HasLinkForEdit(order, path.Options{})
//				})
//			})
//		})
//	}).Register()
package acceptance

import (
	"context"
	"github.com/arya-analytics/saki/pkg/browser"
	"github.com/arya-analytics/saki/pkg/factory"
	"github.com/arya-analytics/saki/pkg/path"
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/zap"
)

// Label is the ginkgo label attached to every acceptance suite, so they can be
// selected with --label-filter=acceptance.
const Label = "acceptance"

// Config is the configuration for a Suite.
type Config struct {
	// Browser configures the browser session opened for every example.
	// Browser.Driver is required.
	Browser browser.Config
	// Factory builds the resources bound by WithExisting. Defaults to
	// factory.Default.
	Factory *factory.Registry
	// Helpers resolves named path descriptors. Defaults to a table holding the
	// index helpers of every name defined in Factory when the example starts.
	Helpers *path.Helpers
	// Runner registers the suite's groups. Defaults to GinkgoRunner.
	Runner Runner
	// Gomega is the assertion handle used by Context helpers. Defaults to a
	// handle that fails through Runner.
	Gomega gomega.Gomega
	// Context is the context navigation runs under.
	Context context.Context
	// Logger is the logger used by the suite.
	Logger *zap.Logger
}

func (c Config) merge() Config {
	if c.Factory == nil {
		c.Factory = factory.Default
	}
	if c.Runner == nil {
		c.Runner = GinkgoRunner{}
	}
	if c.Gomega == nil {
		c.Gomega = gomega.NewGomega(c.Runner.Fail)
	}
	if c.Context == nil {
		c.Context = context.Background()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Browser.Logger == nil {
		c.Browser.Logger = c.Logger.Named("browser")
	}
	return c
}

// Suite is a declared acceptance suite.
type Suite struct {
	cfg     Config
	root    *Group
	current *Context
}

// Integrate declares an acceptance suite. body runs immediately and declares the
// suite's groups; nothing is registered until Register is called.
func Integrate(text string, cfg Config, body func(g *Group)) *Suite {
	return &Suite{cfg: cfg.merge(), root: newGroup(text, body)}
}

// Root returns the root group of the suite.
func (s *Suite) Root() *Group { return s.root }

// Register materializes the suite's groups into the runner. Setup steps run outer
// group first, in declaration order, and every example gets a fresh Context.
// Register returns true so it can be called from a package level var declaration.
func (s *Suite) Register() bool {
	r := s.cfg.Runner
	r.Container(s.root.text, func() {
		r.BeforeEach(func() {
			s.current = nil
			c, err := s.newContext()
			if err != nil {
				r.Fail(err.Error())
				return
			}
			s.current = c
		})
		s.materialize(s.root)
	}, ginkgo.Label(Label))
	return true
}

func (s *Suite) materialize(g *Group) {
	r := s.cfg.Runner
	for _, step := range g.steps {
		step := step
		r.BeforeEach(func() {
			if s.current == nil {
				return
			}
			if err := step(s.current); err != nil {
				s.current.logger.Debug("setup failed", zap.Error(err))
				r.Fail(err.Error())
			}
		})
	}
	for _, n := range g.nodes {
		switch n := n.(type) {
		case *Group:
			r.Container(n.text, func() { s.materialize(n) })
		case example:
			r.It(n.text, func() {
				if s.current != nil {
					n.body(s.current)
				}
			})
		}
	}
}

func (s *Suite) newContext() (*Context, error) { return newContext(s.cfg) }

// NewContext opens a standalone Context outside of any suite, e.g. for driving
// the helpers from a plain test function.
func NewContext(cfg Config) (*Context, error) { return newContext(cfg.merge()) }

func newContext(cfg Config) (*Context, error) {
	b, err := browser.New(cfg.Browser)
	if err != nil {
		return nil, err
	}
	helpers := cfg.Helpers
	if helpers == nil {
		helpers = factoryHelpers(cfg.Factory)
	}
	return &Context{
		ctx:     cfg.Context,
		vars:    make(map[string]interface{}),
		helpers: helpers,
		factory: cfg.Factory,
		browser: b,
		g:       cfg.Gomega,
		logger:  cfg.Logger,
	}, nil
}

// factoryHelpers registers the index helpers of every name the registry can
// build, so "orders_path" resolves for a suite that defines an "order" factory.
func factoryHelpers(r *factory.Registry) *path.Helpers {
	names := r.Names()
	types := make([]resource.Type, len(names))
	for i, name := range names {
		types[i] = resource.Type(name)
	}
	return path.NewHelpers(types...)
}
