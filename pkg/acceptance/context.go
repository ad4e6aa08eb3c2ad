package acceptance

import (
	"context"
	"github.com/arya-analytics/saki/pkg/browser"
	"github.com/arya-analytics/saki/pkg/factory"
	"github.com/arya-analytics/saki/pkg/page"
	"github.com/arya-analytics/saki/pkg/path"
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
	"github.com/onsi/gomega"
	"go.uber.org/zap"
	"net/url"
)

// Context is the state of a single running example: the variables bound by its
// setup steps, the browser session and the assertion handle. A Context is built
// fresh for every example and discarded afterwards.
type Context struct {
	ctx     context.Context
	vars    map[string]interface{}
	helpers *path.Helpers
	factory *factory.Registry
	browser *browser.Browser
	g       gomega.Gomega
	logger  *zap.Logger
}

var _ path.Context = (*Context)(nil)

// Get implements path.Context.
func (c *Context) Get(name string) (interface{}, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Set binds v to name for the rest of the example.
func (c *Context) Set(name string, v interface{}) { c.vars[name] = v }

// Model returns the model bound to name.
func (c *Context) Model(name string) (resource.Model, error) {
	if _, err := path.Lookup(c, name); err != nil {
		return nil, err
	}
	return c.vars[name].(resource.Model), nil
}

// PathHelper implements path.Context.
func (c *Context) PathHelper(name string) (path.Descriptor, error) { return c.helpers.Lookup(name) }

// GetPath resolves d against the context.
func (c *Context) GetPath(d path.Descriptor) (path.Path, error) { return d.Resolve(c) }

// IndexPathFor returns the index path of t.
func (c *Context) IndexPathFor(t resource.Type) path.Path {
	return path.Must(path.Index(t, path.Options{}))
}

// DefaultFactory builds the default instance of name without binding it.
func (c *Context) DefaultFactory(name string) (resource.Model, error) { return c.factory.Build(name) }

// Browser returns the example's browser session.
func (c *Context) Browser() *browser.Browser { return c.browser }

// Gomega returns the assertion handle the context's helpers fail through.
func (c *Context) Gomega() gomega.Gomega { return c.g }

// Logger returns the example's logger.
func (c *Context) Logger() *zap.Logger { return c.logger }

// Visit resolves d and navigates to the resulting path.
func (c *Context) Visit(d path.Descriptor) error {
	p, err := c.GetPath(d)
	if err != nil {
		return err
	}
	return c.VisitPath(p)
}

// VisitPath navigates to p.
func (c *Context) VisitPath(p path.Path) error {
	c.logger.Debug("visit", zap.Stringer("path", p))
	return c.browser.Visit(c.ctx, p.String())
}

// Page returns the document rendered by the last visit.
func (c *Context) Page() (*page.Document, error) { return c.browser.Page() }

// CurrentURL returns the URL of the last visit.
func (c *Context) CurrentURL() *url.URL { return c.browser.CurrentURL() }

func (c *Context) bindExisting(name string) error {
	m, err := c.factory.Build(name)
	if err != nil {
		return errors.Wrapf(err, "[acceptance] - with existing %s", name)
	}
	c.logger.Debug("bound existing resource",
		zap.String("name", name),
		zap.Stringer("id", m.ResourceID()),
	)
	c.Set(name, m)
	return nil
}
