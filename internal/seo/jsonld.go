package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for embedding inside <script type="application/ld+json">.
// encoding/json already escapes <, > and & so the payload cannot close the tag.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Offer describes a purchasable price point for a Product.
type Offer struct {
	Price        string // decimal string, e.g. "57.99"
	Currency     string // ISO 4217, e.g. "USD"
	URL          string
	Availability string // schema.org item, e.g. "https://schema.org/PreOrder"
}

// Product returns a product schema payload with an optional offer.
func Product(name, description, imageURL, sku string, offer *Offer) map[string]any {
	m := map[string]any{
		"@type":       "Product",
		"name":        name,
		"description": description,
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if sku != "" {
		m["sku"] = sku
	}
	if offer != nil {
		o := map[string]any{
			"@type":         "Offer",
			"price":         offer.Price,
			"priceCurrency": offer.Currency,
		}
		if offer.URL != "" {
			o["url"] = offer.URL
		}
		if offer.Availability != "" {
			o["availability"] = offer.Availability
		}
		m["offers"] = o
	}
	return m
}

// ItemList wraps entries (typically Product payloads) in an ordered schema.org ItemList.
func ItemList(name string, entries []map[string]any) map[string]any {
	el := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     e,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(entries),
		"itemListElement": el,
	}
}
