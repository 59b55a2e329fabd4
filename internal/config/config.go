package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultLocale        = "en"
	defaultPublicDir     = "public"
	defaultReadHeader    = 10 * time.Second
	defaultReadTimeout   = 15 * time.Second
	defaultWriteTimeout  = 15 * time.Second
	defaultIdleTimeout   = 60 * time.Second
	defaultShutdownGrace = 10 * time.Second
)

// Config captures runtime options for the web server.
type Config struct {
	Addr          string
	DevMode       bool
	TemplatesDir  string // optional on-disk override of the embedded templates
	PublicDir     string // images and other deploy-time files
	CatalogFile   string // optional YAML/JSON catalog override
	SiteURL       string // absolute base for canonical links and JSON-LD
	DefaultLocale string
	Locales       []string
	LogLevel      string
	Metrics       bool

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownGrace     time.Duration
}

// Load builds the configuration from the environment (via getenv) and then applies
// command-line flags from args, which win over the environment.
func Load(getenv func(string) string, args []string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	// Port resolution: prefer STARMOON_WEB_PORT, then PORT (Cloud Run), else 8080
	port := firstNonEmpty(getenv("STARMOON_WEB_PORT"), getenv("PORT"), defaultPort)

	cfg := Config{
		Addr:              ":" + port,
		DevMode:           getenv("STARMOON_WEB_DEV") != "" || getenv("DEV") != "",
		TemplatesDir:      strings.TrimSpace(getenv("STARMOON_WEB_TEMPLATES_DIR")),
		PublicDir:         firstNonEmpty(getenv("STARMOON_WEB_PUBLIC_DIR"), defaultPublicDir),
		CatalogFile:       strings.TrimSpace(getenv("STARMOON_WEB_CATALOG_FILE")),
		SiteURL:           strings.TrimRight(strings.TrimSpace(getenv("STARMOON_WEB_SITE_URL")), "/"),
		DefaultLocale:     strings.ToLower(firstNonEmpty(getenv("STARMOON_WEB_DEFAULT_LOCALE"), defaultLocale)),
		Locales:           splitList(firstNonEmpty(getenv("STARMOON_WEB_LOCALES"), "en,ja")),
		LogLevel:          strings.TrimSpace(getenv("LOG_LEVEL")),
		Metrics:           true,
		ReadHeaderTimeout: defaultReadHeader,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ShutdownGrace:     defaultShutdownGrace,
	}
	if v := strings.TrimSpace(getenv("STARMOON_WEB_METRICS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: STARMOON_WEB_METRICS: %w", err)
		}
		cfg.Metrics = b
	}

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory (defaults to embedded templates)")
	fs.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public files directory (images)")
	fs.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "catalog YAML/JSON file (defaults to the built-in catalog)")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "absolute site URL for canonical links")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "reparse templates on every request")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: empty listen address")
	}
	if c.SiteURL != "" {
		u, err := url.Parse(c.SiteURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("config: site url %q must be absolute", c.SiteURL)
		}
	}
	found := false
	for _, l := range c.Locales {
		if l == c.DefaultLocale {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config: default locale %q not in %v", c.DefaultLocale, c.Locales)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
