package handlers

import (
	"starmoon.ai/storefront-web/internal/catalog"
	"starmoon.ai/storefront-web/internal/format"
)

// ProductsJSON is the /products.json payload.
type ProductsJSON struct {
	Source   string        `json:"source"`
	Products []ProductJSON `json:"products"`
}

// ProductJSON mirrors a catalog record plus the labels the page renders for it.
type ProductJSON struct {
	catalog.Product
	PriceLabel         string `json:"priceLabel"`
	OriginalPriceLabel string `json:"originalPriceLabel"`
	ComponentsLine     string `json:"componentsLine"`
}

// BuildProductsJSON converts the catalog for the JSON endpoint.
func BuildProductsJSON(c *catalog.Catalog) ProductsJSON {
	products := c.Products()
	out := ProductsJSON{Source: c.Source(), Products: make([]ProductJSON, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, ProductJSON{
			Product:            p,
			PriceLabel:         format.Price(p.Price),
			OriginalPriceLabel: format.Price(p.OriginalPrice),
			ComponentsLine:     p.ComponentsLine(),
		})
	}
	return out
}
