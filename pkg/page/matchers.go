package page

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"net/url"
	"regexp"
)

// HaveLink succeeds if the actual *Document contains an anchor whose href is
// exactly href and that has no rel attribute.
func HaveLink(href string) types.GomegaMatcher {
	return &linkMatcher{href: href, sel: Link(href), kind: "a link"}
}

// HaveDeleteLink succeeds if the actual *Document contains an anchor whose href is
// exactly href and that is marked with data-method="delete".
func HaveDeleteLink(href string) types.GomegaMatcher {
	return &linkMatcher{href: href, sel: DeleteLink(href), kind: "a delete link"}
}

type linkMatcher struct {
	href string
	sel  Selector
	kind string
}

func (m *linkMatcher) Match(actual interface{}) (bool, error) {
	doc, ok := actual.(*Document)
	if !ok || doc == nil {
		return false, errors.Newf("[page] - expected a *page.Document, got %T", actual)
	}
	return doc.Has(m.sel), nil
}

func (m *linkMatcher) FailureMessage(actual interface{}) string {
	return fmt.Sprintf(
		"Expected document to contain %s to\n\t%s\nfound hrefs\n%s",
		m.kind, m.href, format.Object(hrefsOf(actual), 1),
	)
}

func (m *linkMatcher) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected document not to contain %s to\n\t%s", m.kind, m.href)
}

func hrefsOf(actual interface{}) []string {
	if doc, ok := actual.(*Document); ok && doc != nil {
		return doc.Hrefs()
	}
	return nil
}

// HavePath succeeds if the path component of the actual URL matches expected.
// The actual value may be a *url.URL, a url.URL or a string. Query and fragment
// are discarded. A string expected value is compared exactly; a *regexp.Regexp is
// matched against the path.
func HavePath(expected interface{}) types.GomegaMatcher {
	return &pathMatcher{expected: expected}
}

type pathMatcher struct {
	expected interface{}
	actual   string
}

func (m *pathMatcher) Match(actual interface{}) (bool, error) {
	p, err := pathOf(actual)
	if err != nil {
		return false, err
	}
	m.actual = p
	switch e := m.expected.(type) {
	case string:
		return p == e, nil
	case *regexp.Regexp:
		return e.MatchString(p), nil
	default:
		return false, errors.Newf("[page] - expected a string or *regexp.Regexp, got %T", m.expected)
	}
}

func (m *pathMatcher) FailureMessage(interface{}) string {
	return fmt.Sprintf("Expected to be on\n\t%v\nbut was on\n\t%s", m.expected, m.actual)
}

func (m *pathMatcher) NegatedFailureMessage(interface{}) string {
	return fmt.Sprintf("Expected not to be on\n\t%v", m.expected)
}

func pathOf(actual interface{}) (string, error) {
	switch u := actual.(type) {
	case *url.URL:
		if u == nil {
			return "", errors.New("[page] - no current URL")
		}
		return u.Path, nil
	case url.URL:
		return u.Path, nil
	case string:
		parsed, err := url.Parse(u)
		if err != nil {
			return "", errors.Wrapf(err, "[page] - invalid URL %q", u)
		}
		return parsed.Path, nil
	default:
		return "", errors.Newf("[page] - expected a URL, got %T", actual)
	}
}
