package bot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// Shared formatting for every response branch. Output is locale-stable:
// comma thousands separators, dot decimal point, regardless of host locale.

// FormatUSD renders a dollar amount with two decimal places: $1,234.56.
func FormatUSD(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatUSDWhole renders a dollar amount with no decimals: $1,234,567.
// Used for market caps and volumes where cents are noise.
func FormatUSDWhole(v float64) string {
	return "$" + humanize.FormatFloat("#,###.", v)
}

// FormatPercent renders a 24h change figure: -3.14%.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// titleFirst upper-cases the first rune, turning a provider identifier like
// "bitcoin" into the display form "Bitcoin".
func titleFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// firstSentence trims a long coin description down to its first sentence.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "."); i >= 0 {
		return s[:i+1]
	}
	if s == "" {
		return s
	}
	return s + "."
}
