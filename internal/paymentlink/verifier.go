// Package paymentlink checks catalog payment links against the Stripe account that issued them.
package paymentlink

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"starmoon.ai/storefront-web/internal/catalog"
)

// StripeHost is the host Stripe serves hosted payment links from.
const StripeHost = "buy.stripe.com"

// Status is the verification outcome for one product link.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusUnknown  Status = "unknown"
	StatusSkipped  Status = "skipped"
)

// ErrMissingAPIKey is returned when no Stripe secret key is configured.
var ErrMissingAPIKey = errors.New("paymentlink: stripe api key is required")

// Link is a payment link known to the account.
type Link struct {
	ID     string
	URL    string
	Active bool
}

// Source lists every payment link of an account, keyed by normalized URL.
type Source interface {
	Links(ctx context.Context) (map[string]Link, error)
}

// Result reports the status of one product's payment link.
type Result struct {
	Slug   string
	URL    string
	Status Status
	LinkID string
}

// Verifier resolves product payment links against a Source.
type Verifier struct {
	source Source
}

// NewVerifier returns a Verifier backed by source.
func NewVerifier(source Source) (*Verifier, error) {
	if source == nil {
		return nil, errors.New("paymentlink: source is nil")
	}
	return &Verifier{source: source}, nil
}

// Verify returns one result per product in catalog order. The source is queried at
// most once and only when at least one link points at Stripe.
func (v *Verifier) Verify(ctx context.Context, products []catalog.Product) ([]Result, error) {
	results := make([]Result, 0, len(products))
	var links map[string]Link
	for _, p := range products {
		res := Result{Slug: p.Slug, URL: p.PaymentLink, Status: StatusSkipped}
		key, ok := normalize(p.PaymentLink)
		if !ok {
			results = append(results, res)
			continue
		}
		if links == nil {
			var err error
			if links, err = v.source.Links(ctx); err != nil {
				return nil, fmt.Errorf("paymentlink: list links: %w", err)
			}
			if links == nil {
				links = map[string]Link{}
			}
		}
		if l, found := links[key]; !found {
			res.Status = StatusUnknown
		} else {
			res.LinkID = l.ID
			res.Status = StatusInactive
			if l.Active {
				res.Status = StatusActive
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// AllActive reports whether every Stripe link is active. Skipped links are ignored.
func AllActive(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusActive && r.Status != StatusSkipped {
			return false
		}
	}
	return true
}

// normalize reduces a Stripe link to host and path. It reports false for anything
// that is not a hosted Stripe payment link.
func normalize(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !strings.EqualFold(u.Hostname(), StripeHost) {
		return "", false
	}
	p := strings.TrimSuffix(u.EscapedPath(), "/")
	if p == "" {
		return "", false
	}
	return StripeHost + p, true
}
