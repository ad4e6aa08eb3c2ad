package browser

import (
	"context"
	"github.com/cockroachdb/errors"
	"io"
	"net/http"
	"net/url"
)

// HTTPDriver issues requests against a live server.
type HTTPDriver struct {
	client *http.Client
}

// NewHTTPDriver wraps client. Redirects are left to the Browser, so the client's
// CheckRedirect is replaced on a copy of it. A nil client uses
// http.DefaultClient's transport.
func NewHTTPDriver(client *http.Client) *HTTPDriver {
	c := http.Client{}
	if client != nil {
		c = *client
	}
	c.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	return &HTTPDriver{client: &c}
}

// Get implements the Driver interface.
func (d *HTTPDriver) Get(ctx context.Context, target *url.URL) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Accept", "text/html")
	res, err := d.client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer func() { _ = res.Body.Close() }()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, errors.Wrap(err, "[browser] - failed to read body")
	}
	return Response{Status: res.StatusCode, Header: res.Header, Body: body}, nil
}
