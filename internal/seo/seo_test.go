package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemListOfProducts(t *testing.T) {
	t.Parallel()

	list := ItemList("Products", []map[string]any{
		Product("Device", "desc", "https://starmoon.ai/images/front_view.png", "device", &Offer{
			Price:        "57.99",
			Currency:     "USD",
			URL:          "https://buy.stripe.com/abc",
			Availability: "https://schema.org/PreOrder",
		}),
		Product("Kit", "desc", "", "", nil),
	})

	var decoded struct {
		Type     string `json:"@type"`
		Count    int    `json:"numberOfItems"`
		Elements []struct {
			Position int `json:"position"`
			Item     struct {
				Name   string `json:"name"`
				Offers *struct {
					Price    string `json:"price"`
					Currency string `json:"priceCurrency"`
					URL      string `json:"url"`
				} `json:"offers"`
			} `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(JSON(list)), &decoded))
	require.Equal(t, "ItemList", decoded.Type)
	require.Equal(t, 2, decoded.Count)
	require.Equal(t, 1, decoded.Elements[0].Position)
	require.Equal(t, "Device", decoded.Elements[0].Item.Name)
	require.NotNil(t, decoded.Elements[0].Item.Offers)
	require.Equal(t, "57.99", decoded.Elements[0].Item.Offers.Price)
	require.Equal(t, "USD", decoded.Elements[0].Item.Offers.Currency)
	require.Equal(t, "https://buy.stripe.com/abc", decoded.Elements[0].Item.Offers.URL)
	require.Nil(t, decoded.Elements[1].Item.Offers)
}

func TestScriptEscapesClosingTag(t *testing.T) {
	t.Parallel()

	out := string(Script(map[string]any{"name": "</script><b>"}))
	require.False(t, strings.Contains(out, "</script>"))
}

func TestAbsURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://starmoon.ai/images/devkit.png", AbsURL("https://starmoon.ai", "/images/devkit.png"))
	require.Equal(t, "https://starmoon.ai/products", AbsURL("https://starmoon.ai/", "/products"))
	require.Equal(t, "/products", AbsURL("", "/products"))
	require.Equal(t, "https://cdn.example.com/a.png", AbsURL("https://starmoon.ai", "https://cdn.example.com/a.png"))
}
