package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"starmoon.ai/storefront-web/internal/handlers"
	mw "starmoon.ai/storefront-web/internal/middleware"
	"starmoon.ai/storefront-web/templates"
)

// views owns the parsed layout. In dev mode templates are reparsed from disk on each request.
type views struct {
	fsys  fs.FS
	dev   bool
	cache *template.Template
}

func newViews(dir string, dev bool) (*views, error) {
	var fsys fs.FS = templates.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	v := &views{fsys: fsys, dev: dev && dir != ""}
	t, err := v.parse()
	if err != nil {
		return nil, err
	}
	v.cache = t
	return v, nil
}

func (v *views) parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":  time.Now,
		"card": handlers.WithLabels,
	}
	t, err := template.New("_root").Funcs(funcMap).ParseFS(v.fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if t.Lookup("base") == nil {
		return nil, fmt.Errorf("parse templates: base layout not defined")
	}
	return t, nil
}

// render executes the base layout into a buffer so a failed render never leaves a half-written page.
func (v *views) render(w http.ResponseWriter, r *http.Request, data any) bool {
	logger := mw.LoggerFrom(r.Context())
	t := v.cache
	if v.dev {
		tc, err := v.parse()
		if err != nil {
			logger.Error("template parse", zap.Error(err))
			http.Error(w, "template parse error", http.StatusInternalServerError)
			return false
		}
		t = tc
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Error("template exec", zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	return true
}
