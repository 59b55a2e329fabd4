package paymentlink

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/paymentlink"
)

type stripeLinkAPI interface {
	List(params *stripe.PaymentLinkListParams) *paymentlink.Iter
}

// StripeConfig configures the Stripe-backed Source.
type StripeConfig struct {
	APIKey    string
	AccountID string
	Backends  *stripe.Backends
}

// StripeSource lists payment links through the Stripe API.
type StripeSource struct {
	api     stripeLinkAPI
	account string
}

// NewStripeSource constructs a Source using the given configuration.
func NewStripeSource(cfg StripeConfig) (*StripeSource, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	sc := client.New(apiKey, cfg.Backends)
	return &StripeSource{api: sc.PaymentLinks, account: strings.TrimSpace(cfg.AccountID)}, nil
}

// Links pages through every payment link, active or not.
func (s *StripeSource) Links(ctx context.Context) (map[string]Link, error) {
	params := &stripe.PaymentLinkListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(100)
	if s.account != "" {
		params.SetStripeAccount(s.account)
	}

	out := map[string]Link{}
	it := s.api.List(params)
	for it.Next() {
		pl := it.PaymentLink()
		if pl == nil {
			continue
		}
		key, ok := normalize(pl.URL)
		if !ok {
			continue
		}
		out[key] = Link{ID: pl.ID, URL: pl.URL, Active: pl.Active}
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("stripe: list payment links: %w", err)
	}
	return out, nil
}
