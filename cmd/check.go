package cmd

import (
	"context"
	"fmt"
	"github.com/arya-analytics/saki/pkg/browser"
	"github.com/arya-analytics/saki/pkg/page"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"io"
	"net/http"
	"time"
)

// ErrCheckFailed is returned when a checked page is missing an expected link or
// ends up on an unexpected path.
var ErrCheckFailed = errors.New("[cmd] - check failed")

// checkCmd visits a page on a running application and checks its links.
var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Check a rendered page for the links it should carry",
	Long: `Visit a path on a running application, following redirects, and report
whether each expected link is present. For example:

	saki check /orders/7 --base-url http://localhost:3000 \
		--link /orders/7/edit --delete-link /orders/7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		logger, err := configureLogging()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		b, err := browser.New(browser.Config{
			Driver:  browser.NewHTTPDriver(&http.Client{Timeout: viper.GetDuration("timeout")}),
			BaseURL: viper.GetString("base-url"),
			Logger:  logger.Named("browser"),
		})
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return check(ctx, cmd.OutOrStdout(), b, args[0], checkExpectations{
			links:       viper.GetStringSlice("link"),
			deleteLinks: viper.GetStringSlice("delete-link"),
			path:        viper.GetString("expect-path"),
		}, logger)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP(
		"base-url",
		"u",
		"http://localhost:3000",
		`
			Base URL of the application under test.
		`,
	)

	checkCmd.Flags().StringSliceP(
		"link",
		"l",
		nil,
		`
			Href of a link that must be present without a rel attribute.
		`,
	)

	checkCmd.Flags().StringSlice(
		"delete-link",
		nil,
		`
			Href of a link that must be present with data-method="delete".
		`,
	)

	checkCmd.Flags().String(
		"expect-path",
		"",
		`
			Path the browser must end up on after following redirects.
		`,
	)

	checkCmd.Flags().Duration(
		"timeout",
		10*time.Second,
		`
			Timeout of each request.
		`,
	)

	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		panic(err)
	}
}

type checkExpectations struct {
	links       []string
	deleteLinks []string
	path        string
}

func check(
	ctx context.Context,
	w io.Writer,
	b *browser.Browser,
	target string,
	exp checkExpectations,
	logger *zap.Logger,
) error {
	if err := b.Visit(ctx, target); err != nil {
		return err
	}
	doc, err := b.Page()
	if err != nil {
		return err
	}
	logger.Info("visited",
		zap.Stringer("url", b.CurrentURL()),
		zap.Int("status", b.Status()),
	)
	missing := 0
	for _, href := range exp.links {
		missing += report(w, "link", href, doc.Has(page.Link(href)))
	}
	for _, href := range exp.deleteLinks {
		missing += report(w, "delete", href, doc.Has(page.DeleteLink(href)))
	}
	if exp.path != "" {
		ok, err := page.HavePath(exp.path).Match(b.CurrentURL())
		if err != nil {
			return err
		}
		missing += report(w, "path", exp.path, ok)
	}
	if missing > 0 {
		return errors.Wrapf(ErrCheckFailed, "%d expectation(s) not met on %s", missing, target)
	}
	return nil
}

func report(w io.Writer, kind, expected string, ok bool) int {
	status := "ok"
	if !ok {
		status = "MISSING"
	}
	_, _ = fmt.Fprintf(w, "%-7s %-7s %s\n", status, kind, expected)
	if ok {
		return 0
	}
	return 1
}
