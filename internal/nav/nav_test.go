package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mapTranslator map[string]string

func (m mapTranslator) T(_, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

var labels = mapTranslator{"nav.home": "Home", "nav.products": "Products"}

func TestBuildMarksActiveSection(t *testing.T) {
	t.Parallel()

	items := Build(labels, "en", "/products")
	require.Len(t, items, 1)
	require.Equal(t, RenderedItem{Href: "/products", Label: "Products", Active: true}, items[0])

	require.True(t, Build(labels, "en", "/products/starmoon-ai-device")[0].Active)
	require.False(t, Build(labels, "en", "/productsx")[0].Active)
	require.False(t, Build(labels, "en", "")[0].Active)
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Crumb{{Href: "/", Label: "Home", Active: true}}, Breadcrumbs(labels, "en", "/"))

	crumbs := Breadcrumbs(labels, "en", "/products/dev-kit")
	require.Equal(t, []Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/products", Label: "Products"},
		{Href: "/products/dev-kit", Label: "Dev kit", Active: true},
	}, crumbs)

	require.Equal(t, "nav.home", Breadcrumbs(nil, "en", "/")[0].Label)
}
