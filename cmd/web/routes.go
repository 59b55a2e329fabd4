package main

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"starmoon.ai/storefront-web/internal/handlers"
	mw "starmoon.ai/storefront-web/internal/middleware"
	"starmoon.ai/storefront-web/public"
)

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(mw.Locale(a.bundle))
	r.Use(mw.Logger(a.logger))
	r.Use(mw.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if a.cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	if assets, err := public.AssetsFS(); err == nil {
		r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(assets)))
	} else {
		a.logger.Error("embedded assets unavailable", zap.Error(err))
	}
	images := http.StripPrefix("/images/", http.FileServer(noDirFS{http.Dir(filepath.Join(a.cfg.PublicDir, "images"))}))
	r.Handle("/images/*", images)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products", http.StatusFound)
	})
	r.Get("/products", a.productsHandler)
	r.Get("/products.json", a.productsJSONHandler)
	r.Get("/products/{slug}", a.productAnchorHandler)

	return r
}

func (a *app) productsHandler(w http.ResponseWriter, r *http.Request) {
	data := handlers.BuildProductsData(handlers.ProductsInput{
		Lang:       mw.Lang(r),
		Path:       r.URL.Path,
		SiteURL:    a.cfg.SiteURL,
		Catalog:    a.catalog,
		Translator: a.bundle,
	})
	if a.views.render(w, r, data) {
		mw.ObserveCardsRendered(len(data.Cards))
	}
}

// productAnchorHandler gives each product a shareable URL that lands on its card.
func (a *app) productAnchorHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := a.catalog.Lookup(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/products#product-"+p.Slug, http.StatusFound)
}

func (a *app) productsJSONHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(handlers.BuildProductsJSON(a.catalog)); err != nil {
		mw.LoggerFrom(r.Context()).Error("encode products", zap.Error(err))
	}
}

// noDirFS hides directory listings from the image file server.
type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
