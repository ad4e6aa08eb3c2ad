package browser_test

import (
	"context"
	"github.com/arya-analytics/saki/pkg/browser"
	"github.com/arya-analytics/saki/pkg/page"
	"github.com/go-chi/chi/v5"
	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
)

func newFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/widgets", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(`<a href="/widgets/5">5</a><a href="/widgets/new">new</a>`)
	})
	app.Get("/widgets/:id", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(`<h1>widget ` + c.Params("id") + `</h1>`)
	})
	app.Get("/old-widgets", func(c *fiber.Ctx) error { return c.Redirect("/widgets?from=old") })
	app.Get("/loop", func(c *fiber.Ctx) error { return c.Redirect("/loop") })
	return app
}

var _ = Describe("Browser", func() {
	var ctx = context.Background()
	Describe("New", func() {
		It("Should require a driver", func() {
			_, err := browser.New(browser.Config{})
			Expect(err).To(HaveOccurred())
		})
		It("Should reject an invalid base url", func() {
			_, err := browser.New(browser.Config{
				Driver:  browser.NewFiberDriver(newFiberApp()),
				BaseURL: "://nope",
			})
			Expect(err).To(HaveOccurred())
		})
	})
	Describe("Fiber driver", func() {
		var b *browser.Browser
		BeforeEach(func() {
			var err error
			b, err = browser.New(browser.Config{
				Driver: browser.NewFiberDriver(newFiberApp()),
				Logger: zap.NewNop(),
			})
			Expect(err).ToNot(HaveOccurred())
		})
		It("Should have no page before the first visit", func() {
			_, err := b.Page()
			Expect(err).To(MatchError(browser.ErrNoPage))
			Expect(b.CurrentURL()).To(BeNil())
		})
		It("Should visit a path and expose the document", func() {
			Expect(b.Visit(ctx, "/widgets")).To(Succeed())
			Expect(b.Status()).To(Equal(fiber.StatusOK))
			doc, err := b.Page()
			Expect(err).ToNot(HaveOccurred())
			Expect(doc).To(page.HaveLink("/widgets/5"))
			Expect(b.CurrentURL()).To(page.HavePath("/widgets"))
		})
		It("Should follow redirects", func() {
			Expect(b.Visit(ctx, "/old-widgets")).To(Succeed())
			Expect(b.CurrentURL().String()).To(Equal("http://localhost/widgets?from=old"))
			Expect(b.CurrentURL()).To(page.HavePath("/widgets"))
		})
		It("Should give up on redirect loops", func() {
			Expect(b.Visit(ctx, "/loop")).To(MatchError(browser.ErrTooManyRedirects))
		})
		It("Should keep the status of missing pages", func() {
			Expect(b.Visit(ctx, "/gadgets")).To(Succeed())
			Expect(b.Status()).To(Equal(fiber.StatusNotFound))
		})
	})
	Describe("HTTP driver", func() {
		var (
			srv *httptest.Server
			b   *browser.Browser
		)
		BeforeEach(func() {
			r := chi.NewRouter()
			r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<a href="/orders/7" data-method="delete">delete</a>`))
			})
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/orders", http.StatusFound)
			})
			srv = httptest.NewServer(r)
			var err error
			b, err = browser.New(browser.Config{
				Driver:  browser.NewHTTPDriver(srv.Client()),
				BaseURL: srv.URL,
			})
			Expect(err).ToNot(HaveOccurred())
		})
		AfterEach(func() { srv.Close() })
		It("Should follow redirects through the browser", func() {
			Expect(b.Visit(ctx, "/")).To(Succeed())
			Expect(b.CurrentURL()).To(page.HavePath("/orders"))
			doc, err := b.Page()
			Expect(err).ToNot(HaveOccurred())
			Expect(doc).To(page.HaveDeleteLink("/orders/7"))
		})
		It("Should surface transport errors", func() {
			srv.Close()
			Expect(b.Visit(ctx, "/orders")).ToNot(Succeed())
		})
	})
})
