package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPriceKeepsStoredDecimal(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"57.99":   "$57.99",
		"89":      "$89",
		"45.990":  "$45.99",
		"0":       "$0",
		"1234.5":  "$1234.5",
		"-3.25":   "-$3.25",
		"0.00001": "$0.00001",
	}
	for in, want := range cases {
		require.Equal(t, want, Price(decimal.RequireFromString(in)), "input %s", in)
	}
}

func TestMarkdownSanitizes(t *testing.T) {
	t.Parallel()

	out := string(Markdown("A **bold** claim <script>alert(1)</script>"))
	require.Contains(t, out, "<strong>bold</strong>")
	require.NotContains(t, out, "<script>")
	require.True(t, strings.HasPrefix(out, "<p>"))

	require.Empty(t, string(Markdown("   ")))
}

func TestMarkdownLinksAreNoFollow(t *testing.T) {
	t.Parallel()

	out := string(Markdown("[docs](https://example.com/docs)"))
	require.Contains(t, out, `href="https://example.com/docs"`)
	require.Contains(t, out, "nofollow")
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Fast & small device", PlainText("Fast & *small*\n\ndevice"))
}
