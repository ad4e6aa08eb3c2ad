package acceptance_test

import (
	"github.com/arya-analytics/saki/pkg/acceptance"
	"github.com/arya-analytics/saki/pkg/browser"
	"github.com/arya-analytics/saki/pkg/factory"
	"github.com/arya-analytics/saki/pkg/path"
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Group", func() {
	var (
		runner   *fakeRunner
		rec      *recorder
		registry *factory.Registry
		cfg      acceptance.Config
	)
	BeforeEach(func() {
		runner = newFakeRunner()
		rec = &recorder{Driver: browser.NewFiberDriver(newShop())}
		registry = factory.New()
		registry.Define("order", factory.Records("order", nil))
		cfg = acceptance.Config{
			Browser: browser.Config{Driver: rec},
			Factory: registry,
			Helpers: path.NewHelpers("order"),
			Runner:  runner,
		}
	})

	Describe("Register", func() {
		It("Should register nested containers in declaration order", func() {
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.WithExisting("order", func(g *acceptance.Group) {
					g.It("a", func(*acceptance.Context) {})
				})
				g.OnVisiting(path.Named("orders_path"), func(g *acceptance.Group) {
					g.It("b", func(*acceptance.Context) {})
				})
				g.Where(func(*acceptance.Context) error { return nil }, func(g *acceptance.Group) {
					g.Context("nested", func(g *acceptance.Group) {
						g.It("c", func(*acceptance.Context) {})
					})
				})
				g.OnFollowingLinkTo(path.Literal("/orders/new"), nil)
			}).Register()
			Expect(runner.names()).To(Equal([]string{
				"Orders",
				"Orders with existing order",
				"Orders with existing order a",
				"Orders on visiting",
				"Orders on visiting b",
				"Orders anonymous closure",
				"Orders anonymous closure nested",
				"Orders anonymous closure nested c",
				"Orders on following link",
			}))
		})
		It("Should not run any setup at registration time", func() {
			ran := false
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.BeforeEach(func(*acceptance.Context) error {
					ran = true
					return nil
				})
				g.It("runs", func(*acceptance.Context) {})
			}).Register()
			Expect(ran).To(BeFalse())
			Expect(runner.run()).To(ConsistOf(result{name: "Orders runs"}))
			Expect(ran).To(BeTrue())
		})
	})

	Describe("Setup order", func() {
		It("Should run outer steps before inner ones in declaration order", func() {
			var order []string
			step := func(name string) acceptance.Step {
				return func(*acceptance.Context) error {
					order = append(order, name)
					return nil
				}
			}
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.BeforeEach(step("outer 1"))
				g.BeforeEach(step("outer 2"))
				g.Where(step("where"), func(g *acceptance.Group) {
					g.BeforeEach(step("inner"))
					g.It("example", func(*acceptance.Context) { order = append(order, "example") })
				})
			}).Register()
			runner.run()
			Expect(order).To(Equal([]string{"outer 1", "outer 2", "where", "inner", "example"}))
		})
		It("Should give every example a fresh context", func() {
			var seen []*acceptance.Context
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.BeforeEach(func(c *acceptance.Context) error {
					_, bound := c.Get("marker")
					Expect(bound).To(BeFalse())
					c.Set("marker", true)
					return nil
				})
				g.It("first", func(c *acceptance.Context) { seen = append(seen, c) })
				g.It("second", func(c *acceptance.Context) { seen = append(seen, c) })
			}).Register()
			Expect(runner.run()).To(ConsistOf(
				result{name: "Orders first"},
				result{name: "Orders second"},
			))
			Expect(seen).To(HaveLen(2))
			Expect(seen[0]).ToNot(BeIdenticalTo(seen[1]))
		})
	})

	Describe("Helpers", func() {
		It("Should resolve index helpers for every factory name by default", func() {
			cfg.Helpers = nil
			registry.Define("item", factory.Records("item", nil))
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Named("orders_path"), func(g *acceptance.Group) {
					g.It("lists", func(c *acceptance.Context) {
						c.ShouldBeOn("/orders")
						Expect(c.GetPath(path.Named("item_path"))).To(Equal(path.Path("/items")))
					})
				})
			}).Register()
			Expect(runner.run()).To(ConsistOf(result{name: "Orders on visiting lists"}))
			Expect(rec.visited).To(Equal([]string{"/orders"}))
		})
		It("Should include factories defined after registration", func() {
			cfg.Helpers = nil
			acceptance.Integrate("Widgets", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Named("widgets_path"), func(g *acceptance.Group) {
					g.It("visits", func(*acceptance.Context) {})
				})
			}).Register()
			registry.Define("widget", factory.Records("widget", nil))
			Expect(runner.run()).To(ConsistOf(result{name: "Widgets on visiting visits"}))
			Expect(rec.visited).To(Equal([]string{"/widgets"}))
		})
	})

	Describe("Context creation", func() {
		It("Should not run setup or examples without a fresh context", func() {
			runner.lenient = true
			cfg.Browser.BaseURL = "://invalid"
			ran := false
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.BeforeEach(func(*acceptance.Context) error {
					ran = true
					return nil
				})
				g.It("first", func(*acceptance.Context) { ran = true })
				g.It("second", func(*acceptance.Context) { ran = true })
			}).Register()
			runner.run()
			Expect(ran).To(BeFalse())
			Expect(runner.failures).To(HaveLen(2))
			Expect(runner.failures[0]).To(ContainSubstring("invalid base url"))
		})
	})

	Describe("WithExisting", func() {
		It("Should bind a default instance from the factory", func() {
			var bound resource.Model
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.WithExisting("order", func(g *acceptance.Group) {
					g.It("binds", func(c *acceptance.Context) {
						var err error
						bound, err = c.Model("order")
						Expect(err).ToNot(HaveOccurred())
					})
				})
			}).Register()
			Expect(runner.run()).To(ConsistOf(result{name: "Orders with existing order binds"}))
			Expect(bound.ResourceID().Type).To(Equal(resource.Type("order")))
			Expect(bound.ResourceID().Key).ToNot(BeEmpty())
		})
		It("Should fail the example for an undefined factory", func() {
			acceptance.Integrate("Gadgets", cfg, func(g *acceptance.Group) {
				g.WithExisting("gadget", func(g *acceptance.Group) {
					g.It("never runs", func(*acceptance.Context) { Fail("unreachable") })
				})
			}).Register()
			results := runner.run()
			Expect(results).To(HaveLen(1))
			Expect(results[0].failure).To(ContainSubstring("undefined factory"))
		})
	})

	Describe("OnVisiting", func() {
		It("Should navigate to the show path of the created resource", func() {
			var key string
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.WithExisting("order", func(g *acceptance.Group) {
					g.OnVisiting(path.ShowFor("order", path.Options{}), func(g *acceptance.Group) {
						g.It("visits", func(c *acceptance.Context) {
							order, err := c.Model("order")
							Expect(err).ToNot(HaveOccurred())
							key = order.ResourceID().Key
						})
					})
				})
			}).Register()
			Expect(runner.run()).To(ConsistOf(result{name: "Orders with existing order on visiting visits"}))
			Expect(rec.visited).To(Equal([]string{"/orders/" + key}))
		})
		It("Should abort the setup chain on a missing resource", func() {
			reached := false
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.ShowFor("order", path.Options{}), func(g *acceptance.Group) {
					g.BeforeEach(func(*acceptance.Context) error {
						reached = true
						return nil
					})
					g.It("never runs", func(*acceptance.Context) {})
				})
			}).Register()
			results := runner.run()
			Expect(results).To(HaveLen(1))
			Expect(results[0].failure).To(ContainSubstring(`resource "order" is not bound`))
			Expect(reached).To(BeFalse())
			Expect(rec.visited).To(BeEmpty())
		})
		It("Should resolve named helpers", func() {
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Named("orders_path"), func(g *acceptance.Group) {
					g.It("lists", func(c *acceptance.Context) { c.ShouldBeOn("/orders") })
				})
			}).Register()
			Expect(runner.run()).To(ConsistOf(result{name: "Orders on visiting lists"}))
		})
		It("Should fail on unknown helpers", func() {
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Named("gadgets_path"), func(g *acceptance.Group) {
					g.It("never runs", func(*acceptance.Context) {})
				})
			}).Register()
			results := runner.run()
			Expect(results[0].failure).To(ContainSubstring("no such operation"))
		})
	})

	Describe("OnFollowingLinkTo", func() {
		It("Should assert the link exists before visiting it", func() {
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Literal("/orders"), func(g *acceptance.Group) {
					g.OnFollowingLinkTo(path.CreateFor("order", path.Options{}), func(g *acceptance.Group) {
						g.It("follows", func(c *acceptance.Context) { c.ShouldBeOn("/orders/new") })
					})
				})
			}).Register()
			Expect(runner.run()).To(ConsistOf(result{name: "Orders on visiting on following link follows"}))
			Expect(rec.visited).To(Equal([]string{"/orders", "/orders/new"}))
		})
		It("Should report a missing link exactly once", func() {
			var assertions []string
			runner.lenient = true
			cfg.Gomega = NewGomega(func(message string, _ ...int) {
				assertions = append(assertions, message)
			})
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Literal("/orders/new"), func(g *acceptance.Group) {
					g.OnFollowingLinkTo(path.Literal("/orders/9"), func(g *acceptance.Group) {
						g.It("is reached by a lenient runner", func(*acceptance.Context) {})
					})
				})
			}).Register()
			runner.run()
			Expect(assertions).To(BeEmpty())
			Expect(runner.failures).To(HaveLen(1))
			Expect(runner.failures[0]).To(ContainSubstring("/orders/9"))
			Expect(runner.failures[0]).To(ContainSubstring("link not found"))
			Expect(rec.visited).To(Equal([]string{"/orders/new"}))
		})
		It("Should fail without visiting when the link is missing", func() {
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.OnVisiting(path.Literal("/orders/new"), func(g *acceptance.Group) {
					g.OnFollowingLinkTo(path.Literal("/orders/9"), func(g *acceptance.Group) {
						g.It("never runs", func(*acceptance.Context) {})
					})
				})
			}).Register()
			results := runner.run()
			Expect(results[0].failure).To(ContainSubstring("/orders/9"))
			Expect(rec.visited).To(Equal([]string{"/orders/new"}))
		})
	})

	Describe("Where", func() {
		It("Should surface step errors as failures", func() {
			acceptance.Integrate("Orders", cfg, func(g *acceptance.Group) {
				g.Where(func(*acceptance.Context) error { return errors.New("precondition failed") }, func(g *acceptance.Group) {
					g.It("never runs", func(*acceptance.Context) {})
				})
			}).Register()
			Expect(runner.run()).To(ConsistOf(result{
				name:    "Orders anonymous closure never runs",
				failure: "precondition failed",
			}))
		})
	})
})
