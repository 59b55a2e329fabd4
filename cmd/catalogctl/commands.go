package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"starmoon.ai/storefront-web/internal/catalog"
	"starmoon.ai/storefront-web/internal/format"
	"starmoon.ai/storefront-web/internal/paymentlink"
)

func (c *cli) runValidate(cmd *cobra.Command, _ []string) error {
	cat, err := c.load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	issues := cat.Validate()
	for _, is := range issues {
		fmt.Fprintln(out, is.String())
	}
	fmt.Fprintf(out, "%s: %d products, %d issues\n", cat.Source(), cat.Len(), len(issues))
	if catalog.HasErrors(issues) {
		return errFailed
	}
	return nil
}

func (c *cli) runShow(cmd *cobra.Command, _ []string) error {
	cat, err := c.load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, p := range cat.Products() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s [%s]\n", p.Title, p.Slug)
		fmt.Fprintf(out, "  price:      %s (was %s)\n", format.Price(p.Price), format.Price(p.OriginalPrice))
		if p.Tag != "" {
			fmt.Fprintf(out, "  tag:        %s\n", p.Tag)
		}
		fmt.Fprintf(out, "  image:      %s\n", p.ImageSrc)
		fmt.Fprintf(out, "  link:       %s\n", p.PaymentLink)
		for _, f := range p.Features {
			fmt.Fprintf(out, "  - %s\n", f)
		}
		fmt.Fprintf(out, "  components: %s\n", p.ComponentsLine())
	}
	return nil
}

func (c *cli) runVerifyLinks(cmd *cobra.Command, _ []string) error {
	cat, err := c.load()
	if err != nil {
		return err
	}
	key := ""
	if c.getenv != nil {
		key = strings.TrimSpace(c.getenv("STRIPE_API_KEY"))
	}
	if key == "" {
		return paymentlink.ErrMissingAPIKey
	}
	src, err := c.newSource(key)
	if err != nil {
		return err
	}
	v, err := paymentlink.NewVerifier(src)
	if err != nil {
		return err
	}
	results, err := v.Verify(cmd.Context(), cat.Products())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tSTATUS\tLINK\tURL")
	for _, r := range results {
		id := r.LinkID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Slug, r.Status, id, r.URL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !paymentlink.AllActive(results) {
		return errFailed
	}
	return nil
}
