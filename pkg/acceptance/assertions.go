package acceptance

import (
	"github.com/arya-analytics/saki/pkg/page"
	"github.com/arya-analytics/saki/pkg/path"
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// HasLink asserts the current page contains an anchor whose href is exactly href
// and that has no rel attribute. It returns false if the assertion failed.
func (c *Context) HasLink(href path.Path) bool {
	return c.expectPage(page.HaveLink(href.String()))
}

// HasLinkForShow asserts a link to the show path of m exists.
func (c *Context) HasLinkForShow(m resource.Model, opts path.Options) bool {
	return c.hasLinkTo(path.Show(m, opts))
}

// HasLinkForEdit asserts a link to the edit path of m exists.
func (c *Context) HasLinkForEdit(m resource.Model, opts path.Options) bool {
	return c.hasLinkTo(path.Edit(m, opts))
}

// HasLinkForCreate asserts a link to the new path of t exists.
func (c *Context) HasLinkForCreate(t resource.Type, opts path.Options) bool {
	return c.hasLinkTo(path.Create(t, opts))
}

// HasLinkForIndex asserts a link to the index path of t exists.
func (c *Context) HasLinkForIndex(t resource.Type, opts path.Options) bool {
	return c.hasLinkTo(path.Index(t, opts))
}

// HasLinkForDelete asserts a delete link to m exists: an anchor to the show path
// of m marked with data-method="delete". Unlike the other helpers it allows a rel
// attribute.
func (c *Context) HasLinkForDelete(m resource.Model, opts path.Options) bool {
	p, err := path.Delete(m, opts)
	if !c.g.Expect(err).ToNot(gomega.HaveOccurred()) {
		return false
	}
	return c.expectPage(page.HaveDeleteLink(p.String()))
}

// ShouldBeOn asserts the path of the current URL equals expected when it is a
// string or path.Path, or matches it when it is a *regexp.Regexp.
func (c *Context) ShouldBeOn(expected interface{}) bool {
	if p, ok := expected.(path.Path); ok {
		expected = p.String()
	}
	return c.g.Expect(c.CurrentURL()).To(page.HavePath(expected))
}

func (c *Context) hasLinkTo(p path.Path, err error) bool {
	if !c.g.Expect(err).ToNot(gomega.HaveOccurred()) {
		return false
	}
	return c.HasLink(p)
}

func (c *Context) expectPage(m types.GomegaMatcher) bool {
	doc, err := c.Page()
	if !c.g.Expect(err).ToNot(gomega.HaveOccurred()) {
		return false
	}
	return c.g.Expect(doc).To(m)
}
