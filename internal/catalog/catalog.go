package catalog

import (
	"fmt"
	"strings"
)

// Catalog holds the product list for the lifetime of the process.
// It is built once and never mutated; accessors hand out copies.
type Catalog struct {
	products []Product
	bySlug   map[string]int
	source   string
}

// New builds a catalog from products, deriving missing slugs from titles.
// Order is preserved because it is the display order.
func New(products []Product, source string) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		bySlug:   make(map[string]int, len(products)),
		source:   strings.TrimSpace(source),
	}
	for i, p := range products {
		p = p.clone()
		p.Slug = strings.TrimSpace(p.Slug)
		if p.Slug == "" {
			p.Slug = Slugify(p.Title)
		}
		if p.Slug == "" {
			p.Slug = fmt.Sprintf("product-%d", i+1)
		}
		if _, dup := c.bySlug[p.Slug]; !dup {
			c.bySlug[p.Slug] = len(c.products)
		}
		c.products = append(c.products, p)
	}
	return c, nil
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := New(defaultProducts(), "builtin")
	if err != nil {
		// defaultProducts is never empty
		panic(err)
	}
	return c
}

// Products returns the products in display order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.clone()
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Lookup returns the first product carrying slug.
func (c *Catalog) Lookup(slug string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return Product{}, false
	}
	return c.products[i].clone(), true
}

// Source describes where the catalog was loaded from ("builtin" or a file path).
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}
