package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// ErrEmptyCatalog is returned when a catalog source defines no products.
var ErrEmptyCatalog = errors.New("catalog: no products defined")

// Product is a read-only record describing a sellable item on the catalog page.
type Product struct {
	Slug          string          `yaml:"slug" json:"slug"`
	Title         string          `yaml:"title" json:"title" validate:"notblank"`
	Description   string          `yaml:"description" json:"description"`
	ImageSrc      string          `yaml:"image_src" json:"imageSrc" validate:"notblank"`
	Features      []string        `yaml:"features" json:"features" validate:"dive,notblank"`
	Components    []string        `yaml:"components" json:"components" validate:"dive,notblank"`
	Price         decimal.Decimal `yaml:"price" json:"price" validate:"gte=0"`
	OriginalPrice decimal.Decimal `yaml:"original_price" json:"originalPrice" validate:"gte=0"`
	Tag           string          `yaml:"tag" json:"tag"`
	PaymentLink   string          `yaml:"payment_link" json:"paymentLink" validate:"required,http_url,verbatim_url"`
	// Shadow is decorative styling carried with the record. The card never applies it.
	Shadow string `yaml:"shadow" json:"shadow,omitempty"`
}

// NumberedComponent is a component entry paired with its 1-based display position.
type NumberedComponent struct {
	Position int
	Name     string
}

// NumberedComponents returns the components in order with positions starting at 1.
func (p Product) NumberedComponents() []NumberedComponent {
	out := make([]NumberedComponent, 0, len(p.Components))
	for i, c := range p.Components {
		out = append(out, NumberedComponent{Position: i + 1, Name: c})
	}
	return out
}

// ComponentsLine joins the numbered components the way the card text reads:
// "1. X2. Y3. Z". Entries are adjacent; visual spacing is a markup concern.
func (p Product) ComponentsLine() string {
	var b strings.Builder
	for _, c := range p.NumberedComponents() {
		b.WriteString(strconv.Itoa(c.Position))
		b.WriteString(". ")
		b.WriteString(c.Name)
	}
	return b.String()
}

// Discounted reports whether the offer price is below the reference price.
func (p Product) Discounted() bool {
	return p.Price.LessThan(p.OriginalPrice)
}

func (p Product) clone() Product {
	cp := p
	cp.Features = append([]string(nil), p.Features...)
	cp.Components = append([]string(nil), p.Components...)
	return cp
}

// Slugify lowercases title and transliterates it into hyphen-joined ASCII.
func Slugify(title string) string {
	return slug.Make(strings.TrimSpace(title))
}
