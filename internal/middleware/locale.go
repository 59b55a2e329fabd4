package middleware

import (
	"net/http"
	"strings"

	"starmoon.ai/storefront-web/internal/i18n"
)

const langCookieName = "hl"

// Locale picks the display language and stores it in the request context. Pages use
// the bundle's fallback locale unless the visitor opts in with ?hl= (remembered in
// the hl cookie); Accept-Language alone never changes the page copy.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Cookie")
			lang := bundle.Fallback()
			if q := strings.TrimSpace(r.URL.Query().Get("hl")); q != "" {
				if m, ok := bundle.Match(q); ok {
					lang = m
					http.SetCookie(w, &http.Cookie{
						Name:     langCookieName,
						Value:    m,
						Path:     "/",
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
			} else if c, err := r.Cookie(langCookieName); err == nil && bundle.IsSupported(c.Value) {
				lang = strings.ToLower(strings.TrimSpace(c.Value))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the language resolved for r, or "en" when Locale did not run.
func Lang(r *http.Request) string {
	if lang, ok := LangFrom(r.Context()); ok {
		return lang
	}
	return "en"
}
