// Package browser implements the navigation primitive acceptance tests drive: a
// session that visits paths on an application, follows redirects, and keeps the
// current URL and rendered document.
package browser

import (
	"bytes"
	"context"
	"github.com/arya-analytics/saki/pkg/page"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"net/http"
	"net/url"
)

var (
	// ErrNoPage is returned when the document is requested before any visit.
	ErrNoPage = errors.New("[browser] - no page has been visited")
	// ErrTooManyRedirects is returned when a visit exceeds Config.MaxRedirects.
	ErrTooManyRedirects = errors.New("[browser] - too many redirects")
)

// Response is what a Driver returns for a single request.
type Response struct {
	// Status is the HTTP status code.
	Status int
	// Header holds the response headers.
	Header http.Header
	// Body is the full response body.
	Body []byte
}

// Driver performs a single GET request without following redirects.
type Driver interface {
	Get(ctx context.Context, target *url.URL) (Response, error)
}

// Config is the configuration for a Browser.
type Config struct {
	// Driver executes requests. Driver is required.
	Driver Driver
	// BaseURL is the URL paths are resolved against.
	BaseURL string
	// MaxRedirects is the number of redirects a single visit may follow.
	MaxRedirects int
	// Logger is the logger used by the browser.
	Logger *zap.Logger
}

// DefaultConfig is merged into the Config passed to New.
var DefaultConfig = Config{
	BaseURL:      "http://localhost",
	MaxRedirects: 10,
}

func (c Config) merge(def Config) Config {
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.MaxRedirects == 0 {
		c.MaxRedirects = def.MaxRedirects
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Browser is a single navigation session. A Browser is not safe for concurrent
// use; each example gets its own.
type Browser struct {
	cfg     Config
	base    *url.URL
	current *url.URL
	status  int
	doc     *page.Document
	docErr  error
}

// New opens a new session.
func New(cfg Config) (*Browser, error) {
	cfg = cfg.merge(DefaultConfig)
	if cfg.Driver == nil {
		return nil, errors.New("[browser] - driver is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "[browser] - invalid base url %q", cfg.BaseURL)
	}
	return &Browser{cfg: cfg, base: base}, nil
}

// Visit navigates to p, which may be a path or an absolute URL, following
// redirects. The current URL and document reflect the final response.
func (b *Browser) Visit(ctx context.Context, p string) error {
	target, err := b.base.Parse(p)
	if err != nil {
		return errors.Wrapf(err, "[browser] - invalid path %q", p)
	}
	for redirects := 0; ; redirects++ {
		b.cfg.Logger.Debug("visiting", zap.Stringer("url", target))
		res, err := b.cfg.Driver.Get(ctx, target)
		if err != nil {
			return errors.Wrapf(err, "[browser] - failed to visit %s", target)
		}
		loc := res.Header.Get("Location")
		if isRedirect(res.Status) && loc != "" {
			if redirects >= b.cfg.MaxRedirects {
				return errors.Wrapf(ErrTooManyRedirects, "visiting %s", p)
			}
			next, err := target.Parse(loc)
			if err != nil {
				return errors.Wrapf(err, "[browser] - invalid redirect location %q", loc)
			}
			b.cfg.Logger.Debug("following redirect",
				zap.Int("status", res.Status),
				zap.Stringer("location", next),
			)
			target = next
			continue
		}
		b.current = target
		b.status = res.Status
		b.doc, b.docErr = page.Parse(bytes.NewReader(res.Body))
		return nil
	}
}

// CurrentURL returns the URL of the last visited page, or nil.
func (b *Browser) CurrentURL() *url.URL {
	if b.current == nil {
		return nil
	}
	u := *b.current
	return &u
}

// Status returns the status code of the last visited page.
func (b *Browser) Status() int { return b.status }

// Page returns the document of the last visited page.
func (b *Browser) Page() (*page.Document, error) {
	if b.current == nil {
		return nil, ErrNoPage
	}
	return b.doc, b.docErr
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}
