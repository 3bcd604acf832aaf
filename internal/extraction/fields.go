package extraction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// vendorMaxLen caps the vendor guess; anything longer is document noise.
const vendorMaxLen = 80

// GuessDate scans the whole text with every date pattern and returns the
// chronologically earliest valid date as YYYY-MM-DD, or "" when nothing
// parses. Invoices usually carry several dates (issue, due, print
// timestamp); the issue date is the earliest one and the one worth tracking.
func GuessDate(text string) string {
	if text == "" {
		return ""
	}

	var earliest time.Time
	for _, r := range dateRules {
		for _, raw := range r.matchAll(text) {
			d, ok := parseDayFirst(raw)
			if !ok {
				continue
			}
			if earliest.IsZero() || d.Before(earliest) {
				earliest = d
			}
		}
	}

	if earliest.IsZero() {
		return ""
	}
	return earliest.Format("2006-01-02")
}

// GuessAmount applies the amount rules in priority order and returns the
// first match that normalizes to a non-negative number. Exactly one amount
// is ever returned; there is no aggregation across matches.
func GuessAmount(text string) decimal.NullDecimal {
	if text == "" {
		return decimal.NullDecimal{}
	}

	for _, r := range amountRules {
		raw, ok := r.tryMatch(text)
		if !ok {
			continue
		}
		amt, ok := NormalizeAmount(raw)
		if !ok {
			continue
		}
		return decimal.NullDecimal{Decimal: amt, Valid: true}
	}

	return decimal.NullDecimal{}
}

// GuessVendor returns the text following the first vendor hint phrase that
// matches, whitespace-collapsed and capped at 80 characters. When no hint
// matches, the first non-blank line of the document stands in; an empty
// document yields "".
func GuessVendor(text string) string {
	if text == "" {
		return ""
	}

	for _, r := range vendorRules {
		if raw, ok := r.tryMatch(text); ok {
			v := strings.TrimSpace(raw)
			v = whitespaceRun.ReplaceAllString(v, " ")
			return truncate(v, vendorMaxLen)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return truncate(line, vendorMaxLen)
		}
	}
	return ""
}

// truncate caps s at n characters, counting runes so multi-byte Hebrew text
// is not cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
