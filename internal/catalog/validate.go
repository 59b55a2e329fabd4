package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue describes one problem found in a product record.
type Issue struct {
	Slug     string
	Field    string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s.%s: %s", i.Severity, i.Slug, i.Field, i.Message)
}

var validate = validator.New()

// fields whose problems degrade the card but do not break it
var warningFields = map[string]bool{
	"image_src":  true,
	"features":   true,
	"components": true,
}

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimals validate as numbers so gte/lte tags apply
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// html/template re-escapes hrefs, so only links already in escaped form render unchanged
	validate.RegisterValidation("verbatim_url", func(fl validator.FieldLevel) bool {
		link := fl.Field().String()
		u, err := url.Parse(link)
		return err == nil && u.String() == link
	})
}

// Validate checks every product and returns all issues found. Rendering does not
// depend on it; it backs catalogctl and startup warnings.
func (c *Catalog) Validate() []Issue {
	var issues []Issue
	seen := map[string]bool{}
	for _, p := range c.Products() {
		add := func(field string, sev Severity, format string, args ...any) {
			issues = append(issues, Issue{Slug: p.Slug, Field: field, Severity: sev, Message: fmt.Sprintf(format, args...)})
		}
		if seen[p.Slug] {
			add("slug", SeverityError, "duplicate slug")
		}
		seen[p.Slug] = true

		if err := validate.Struct(p); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				add("", SeverityError, "%v", err)
				continue
			}
			for _, fe := range verrs {
				field, index := splitField(fe.Field())
				sev := SeverityError
				if warningFields[field] {
					sev = SeverityWarning
				}
				add(field, sev, "%s", describe(fe, field, index, p))
			}
		}

		if p.OriginalPrice.LessThan(p.Price) {
			add("original_price", SeverityWarning, "original price %s is below price %s", p.OriginalPrice, p.Price)
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// splitField turns "components[2]" into ("components", 3).
func splitField(name string) (string, int) {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return name, 0
	}
	i, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil {
		return name[:open], 0
	}
	return name[:open], i + 1
}

func describe(fe validator.FieldError, field string, index int, p Product) string {
	switch fe.Tag() {
	case "required", "notblank":
		if index > 0 {
			return fmt.Sprintf("%s entry %d is empty", strings.TrimSuffix(field, "s"), index)
		}
		return strings.ReplaceAll(field, "_", " ") + " is empty"
	case "gte":
		return fmt.Sprintf("%s %v is negative", strings.ReplaceAll(field, "_", " "), fe.Value())
	case "http_url":
		return fmt.Sprintf("payment link %q must be an absolute http(s) URL", p.PaymentLink)
	case "verbatim_url":
		return fmt.Sprintf("payment link %q is not in escaped form and would render as a different href", p.PaymentLink)
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
