package handlers

import (
	"starmoon.ai/storefront-web/internal/nav"
	"starmoon.ai/storefront-web/internal/seo"
)

// Translator resolves message keys for a language; *i18n.Bundle satisfies it.
type Translator = nav.Translator

// PageData holds the fields every page shares with the base layout.
type PageData struct {
	Title    string
	Lang     string
	SiteName string
	Meta     seo.Meta

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
}

func buildPageData(tr Translator, lang, path, title string) PageData {
	siteName := tr.T(lang, "site.name")
	return PageData{
		Title:       title + " | " + siteName,
		Lang:        lang,
		SiteName:    siteName,
		Path:        path,
		Nav:         nav.Build(tr, lang, path),
		Breadcrumbs: nav.Breadcrumbs(tr, lang, path),
	}
}
