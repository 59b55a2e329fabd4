package handlers

import (
	"html/template"

	"starmoon.ai/storefront-web/internal/catalog"
	"starmoon.ai/storefront-web/internal/format"
	"starmoon.ai/storefront-web/internal/seo"
)

const (
	// card images keep a 600x400 box and are scaled with object-fit: contain
	imageWidth  = 600
	imageHeight = 400

	offerCurrency     = "USD"
	offerAvailability = "https://schema.org/PreOrder"
)

// ProductsData is the view model for the product catalog page.
type ProductsData struct {
	PageData

	Heading    string
	Intro      string
	Disclosure Popover
	Labels     CardLabels
	Cards      []ProductCard
}

// Popover is the info toggle next to the intro line. Its open state lives in the browser.
type Popover struct {
	ID          string
	ButtonLabel string
	Text        string
}

// CardLabels are the localized strings repeated on every card.
type CardLabels struct {
	Features      string
	Components    string
	Preorder      string
	OriginalPrice string
	Delivery      string
}

// ProductCard is one rendered product.
type ProductCard struct {
	ID                 string
	Title              string
	Description        template.HTML
	Image              CardImage
	PriceLabel         string
	OriginalPriceLabel string
	Discounted         bool
	Tag                string
	PaymentLink        string
	Features           []string
	Components         []catalog.NumberedComponent
	ComponentsLine     string
}

// CardImage carries the fixed rendering box for the product image.
type CardImage struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

// ProductsInput gathers everything BuildProductsData needs.
type ProductsInput struct {
	Lang       string
	Path       string
	SiteURL    string
	Catalog    *catalog.Catalog
	Translator Translator
}

// BuildProductsData constructs the catalog page view model with one card per product, in catalog order.
func BuildProductsData(in ProductsInput) ProductsData {
	tr, lang := in.Translator, in.Lang
	products := in.Catalog.Products()

	data := ProductsData{
		PageData: buildPageData(tr, lang, in.Path, tr.T(lang, "products.title")),
		Heading:  tr.T(lang, "products.title"),
		Intro:    tr.T(lang, "products.intro"),
		Disclosure: Popover{
			ID:          "billing-disclosure",
			ButtonLabel: tr.T(lang, "products.billing.label"),
			Text:        tr.T(lang, "products.billing.disclosure"),
		},
		Labels: CardLabels{
			Features:      tr.T(lang, "products.features"),
			Components:    tr.T(lang, "products.components"),
			Preorder:      tr.T(lang, "products.preorder"),
			OriginalPrice: tr.T(lang, "products.original_price"),
			Delivery:      tr.T(lang, "products.delivery"),
		},
		Cards: make([]ProductCard, 0, len(products)),
	}

	entries := make([]map[string]any, 0, len(products))
	for _, p := range products {
		data.Cards = append(data.Cards, buildCard(p))
		entries = append(entries, seo.Product(
			p.Title,
			format.PlainText(p.Description),
			seo.AbsURL(in.SiteURL, p.ImageSrc),
			p.Slug,
			&seo.Offer{
				Price:        p.Price.String(),
				Currency:     offerCurrency,
				URL:          p.PaymentLink,
				Availability: offerAvailability,
			},
		))
	}

	data.Meta = seo.Meta{
		Title:       data.Title,
		Description: tr.T(lang, "products.meta.description"),
		Robots:      "index,follow",
		OG: seo.OpenGraph{
			Title:    data.Title,
			Type:     "website",
			SiteName: data.SiteName,
		},
		Twitter: seo.Twitter{Card: "summary_large_image"},
		JSONLD:  []template.JS{seo.Script(seo.ItemList(data.Heading, entries))},
	}
	data.Meta.OG.Description = data.Meta.Description
	if in.SiteURL != "" {
		data.Meta.Canonical = seo.AbsURL(in.SiteURL, in.Path)
		data.Meta.OG.URL = data.Meta.Canonical
		if len(products) > 0 {
			data.Meta.OG.Image = seo.AbsURL(in.SiteURL, products[0].ImageSrc)
			data.Meta.Twitter.Image = data.Meta.OG.Image
		}
		crumbs := make([]seo.BreadcrumbItem, 0, len(data.Breadcrumbs))
		for _, c := range data.Breadcrumbs {
			crumbs = append(crumbs, seo.BreadcrumbItem{Name: c.Label, Item: seo.AbsURL(in.SiteURL, c.Href)})
		}
		data.Meta.JSONLD = append(data.Meta.JSONLD,
			seo.Script(seo.Organization(data.SiteName, in.SiteURL, "")),
			seo.Script(seo.BreadcrumbList(crumbs)),
		)
	}
	return data
}

func buildCard(p catalog.Product) ProductCard {
	return ProductCard{
		ID:                 "product-" + p.Slug,
		Title:              p.Title,
		Description:        format.Markdown(p.Description),
		Image:              CardImage{Src: p.ImageSrc, Alt: p.Title, Width: imageWidth, Height: imageHeight},
		PriceLabel:         format.Price(p.Price),
		OriginalPriceLabel: format.Price(p.OriginalPrice),
		Discounted:         p.Discounted(),
		Tag:                p.Tag,
		PaymentLink:        p.PaymentLink,
		Features:           p.Features,
		Components:         p.NumberedComponents(),
		ComponentsLine:     p.ComponentsLine(),
	}
}

// CardView pairs a card with the shared labels for the product-card template.
type CardView struct {
	Card   ProductCard
	Labels CardLabels
}

// WithLabels is exposed to templates as "card".
func WithLabels(c ProductCard, l CardLabels) CardView {
	return CardView{Card: c, Labels: l}
}
