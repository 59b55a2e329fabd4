// Command catalogctl inspects the product catalog the web server renders.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"starmoon.ai/storefront-web/internal/catalog"
	"starmoon.ai/storefront-web/internal/paymentlink"
)

// errFailed signals a non-zero exit after the command already printed its findings.
var errFailed = errors.New("catalogctl: check failed")

type cli struct {
	catalogFile string
	out         io.Writer
	getenv      func(string) string
	newSource   func(apiKey string) (paymentlink.Source, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(&cli{out: os.Stdout, getenv: os.Getenv, newSource: stripeSource})
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func stripeSource(apiKey string) (paymentlink.Source, error) {
	return paymentlink.NewStripeSource(paymentlink.StripeConfig{APIKey: apiKey})
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect the storefront product catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.catalogFile, "catalog", "",
		"YAML or JSON catalog file (defaults to STARMOON_WEB_CATALOG_FILE, then the built-in catalog)")
	root.SetOut(c.out)

	root.AddCommand(
		&cobra.Command{
			Use:   "validate",
			Short: "Report catalog problems; exits non-zero on errors",
			Args:  cobra.NoArgs,
			RunE:  c.runValidate,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print each product as the catalog page renders it",
			Args:  cobra.NoArgs,
			RunE:  c.runShow,
		},
		&cobra.Command{
			Use:   "verify-links",
			Short: "Check Stripe payment links are active (needs STRIPE_API_KEY)",
			Args:  cobra.NoArgs,
			RunE:  c.runVerifyLinks,
		},
	)
	return root
}

func (c *cli) load() (*catalog.Catalog, error) {
	path := c.catalogFile
	if path == "" && c.getenv != nil {
		path = c.getenv("STARMOON_WEB_CATALOG_FILE")
	}
	return catalog.Load(path)
}
