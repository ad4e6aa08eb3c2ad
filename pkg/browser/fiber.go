package browser

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"io"
	"net/http/httptest"
	"net/url"
)

// FiberDriver serves requests in-process through a fiber app, so acceptance
// suites can exercise an application without opening a listener.
type FiberDriver struct {
	App *fiber.App
	// Timeout is the request timeout in milliseconds. -1 disables the timeout.
	Timeout int
}

// NewFiberDriver returns a FiberDriver for the given app with no timeout.
func NewFiberDriver(app *fiber.App) *FiberDriver { return &FiberDriver{App: app, Timeout: -1} }

// Get implements the Driver interface.
func (d *FiberDriver) Get(ctx context.Context, target *url.URL) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	req := httptest.NewRequest(fiber.MethodGet, target.String(), nil)
	res, err := d.App.Test(req, d.Timeout)
	if err != nil {
		return Response{}, errors.Wrap(err, "[browser] - fiber request failed")
	}
	defer func() { _ = res.Body.Close() }()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, errors.Wrap(err, "[browser] - failed to read body")
	}
	return Response{Status: res.StatusCode, Header: res.Header, Body: body}, nil
}
