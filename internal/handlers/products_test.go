package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"starmoon.ai/storefront-web/internal/catalog"
	"starmoon.ai/storefront-web/internal/i18n"
	"starmoon.ai/storefront-web/locales"
)

func bundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.Load(locales.FS, "en", []string{"en", "ja"})
	require.NoError(t, err)
	return b
}

func TestBuildProductsDataCards(t *testing.T) {
	t.Parallel()

	data := BuildProductsData(ProductsInput{
		Lang:       "en",
		Path:       "/products",
		Catalog:    catalog.Default(),
		Translator: bundle(t),
	})

	require.Equal(t, "Products", data.Heading)
	require.Equal(t, "Products | Starmoon AI", data.Title)
	require.Equal(t, "Choose the product that fits your needs.", data.Intro)
	require.Contains(t, data.Disclosure.Text, "HeyHaddock, Inc. (DBA)")
	require.Equal(t, "Delivery starting November 2024", data.Labels.Delivery)
	require.Equal(t, "Preorder Now", data.Labels.Preorder)

	require.Len(t, data.Cards, 2)
	device := data.Cards[0]
	require.Equal(t, "product-starmoon-ai-device", device.ID)
	require.Equal(t, "$57.99", device.PriceLabel)
	require.Equal(t, "$89", device.OriginalPriceLabel)
	require.True(t, device.Discounted)
	require.Equal(t, "https://buy.stripe.com/eVa3cfb5E9TJ3cs6ou", device.PaymentLink)
	require.Equal(t, CardImage{Src: "/images/front_view.png", Alt: "Starmoon AI Device", Width: 600, Height: 400}, device.Image)
	require.Len(t, device.Features, 9)
	require.Equal(t, "1. The Starmoon AI device2. USB-C cable", device.ComponentsLine)
	require.True(t, strings.HasPrefix(string(device.Description), "<p>The Starmoon AI device provides"))

	require.Equal(t, "$45.99", data.Cards[1].PriceLabel)
	require.Equal(t, "$69", data.Cards[1].OriginalPriceLabel)
	require.Equal(t, "Best Value", data.Cards[1].Tag)
}

func TestBuildProductsDataScenario(t *testing.T) {
	t.Parallel()

	c, err := catalog.New([]catalog.Product{{
		Title:         "Scenario",
		Features:      []string{"A", "B"},
		Components:    []string{"X", "Y", "Z"},
		Price:         decimal.RequireFromString("57.99"),
		OriginalPrice: decimal.NewFromInt(89),
		PaymentLink:   "https://pay.example.com/x?y=1",
	}}, "test")
	require.NoError(t, err)

	data := BuildProductsData(ProductsInput{Lang: "en", Path: "/products", Catalog: c, Translator: bundle(t)})
	card := data.Cards[0]
	require.Equal(t, []string{"A", "B"}, card.Features)
	require.Equal(t, "1. X2. Y3. Z", card.ComponentsLine)
	require.Len(t, card.Components, 3)
	require.Equal(t, 3, card.Components[2].Position)
	require.Equal(t, "https://pay.example.com/x?y=1", card.PaymentLink)
	require.Equal(t, "$57.99", card.PriceLabel)
	require.Equal(t, "$89", card.OriginalPriceLabel)
}

func TestBuildProductsDataSEO(t *testing.T) {
	t.Parallel()

	data := BuildProductsData(ProductsInput{
		Lang:       "en",
		Path:       "/products",
		SiteURL:    "https://starmoon.ai",
		Catalog:    catalog.Default(),
		Translator: bundle(t),
	})
	require.Equal(t, "https://starmoon.ai/products", data.Meta.Canonical)
	require.Equal(t, "https://starmoon.ai/images/front_view.png", data.Meta.OG.Image)
	require.Len(t, data.Meta.JSONLD, 3)
	require.Contains(t, string(data.Meta.JSONLD[1]), `"@type":"Organization"`)
	require.Contains(t, string(data.Meta.JSONLD[2]), `"item":"https://starmoon.ai/products"`)

	var ld struct {
		Elements []struct {
			Item struct {
				SKU    string `json:"sku"`
				Image  string `json:"image"`
				Offers struct {
					Price string `json:"price"`
					URL   string `json:"url"`
				} `json:"offers"`
			} `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(data.Meta.JSONLD[0]), &ld))
	require.Len(t, ld.Elements, 2)
	require.Equal(t, "starmoon-ai-device", ld.Elements[0].Item.SKU)
	require.Equal(t, "57.99", ld.Elements[0].Item.Offers.Price)
	require.Equal(t, "https://buy.stripe.com/eVa3cfb5E9TJ3cs6ou", ld.Elements[0].Item.Offers.URL)
	require.Equal(t, "https://starmoon.ai/images/devkit.png", ld.Elements[1].Item.Image)
}

func TestBuildProductsDataLocalized(t *testing.T) {
	t.Parallel()

	data := BuildProductsData(ProductsInput{Lang: "ja", Path: "/products", Catalog: catalog.Default(), Translator: bundle(t)})
	require.Len(t, data.Meta.JSONLD, 1)
	require.Equal(t, "製品", data.Heading)
	require.Equal(t, "予約注文", data.Labels.Preorder)
	require.Equal(t, "$57.99", data.Cards[0].PriceLabel)
}

func TestBuildProductsJSON(t *testing.T) {
	t.Parallel()

	out := BuildProductsJSON(catalog.Default())
	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded struct {
		Source   string `json:"source"`
		Products []struct {
			Slug           string `json:"slug"`
			Price          string `json:"price"`
			OriginalPrice  string `json:"originalPrice"`
			PriceLabel     string `json:"priceLabel"`
			ComponentsLine string `json:"componentsLine"`
			PaymentLink    string `json:"paymentLink"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "builtin", decoded.Source)
	require.Len(t, decoded.Products, 2)
	require.Equal(t, "57.99", decoded.Products[0].Price)
	require.Equal(t, "89", decoded.Products[0].OriginalPrice)
	require.Equal(t, "$57.99", decoded.Products[0].PriceLabel)
	require.Equal(t, "starmoon-ai-diy-dev-kit", decoded.Products[1].Slug)
}
