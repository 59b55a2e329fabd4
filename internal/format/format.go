package format

import (
	"bytes"
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Price renders a USD amount exactly as stored: Price(57.99) => "$57.99", Price(89) => "$89".
// No rounding or thousands grouping is applied.
func Price(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().String()
	}
	return "$" + amount.String()
}

var (
	mdOnce     sync.Once
	mdRenderer goldmark.Markdown
	mdPolicy   *bluemonday.Policy
)

func markdown() (goldmark.Markdown, *bluemonday.Policy) {
	mdOnce.Do(func() {
		mdRenderer = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
		mdPolicy = bluemonday.UGCPolicy()
		mdPolicy.RequireNoFollowOnLinks(true)
		mdPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	return mdRenderer, mdPolicy
}

// Markdown converts product copy written in markdown to sanitized HTML.
// Plain text passes through as a single paragraph.
func Markdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	md, policy := markdown()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(strings.TrimSpace(policy.Sanitize(buf.String())))
}

// PlainText strips all markup from a markdown snippet, for meta descriptions and JSON-LD.
func PlainText(src string) string {
	stripped := bluemonday.StrictPolicy().Sanitize(string(Markdown(src)))
	return strings.Join(strings.Fields(html.UnescapeString(stripped)), " ")
}
