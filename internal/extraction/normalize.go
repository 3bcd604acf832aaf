package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Years outside this range mark a "date" that is really an invoice number or
// some other numeric reference.
const (
	minYear = 2000
	maxYear = 2100
)

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// NormalizeAmount turns a raw matched amount into a decimal. Thousands
// commas are stripped before parsing. Anything that does not parse, or is
// negative, reports false -- with noisy PDF text that is an expected
// condition, not an error.
func NormalizeAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

var dateSeparators = strings.NewReplacer("/", ".", "-", ".")

// parseDayFirst reads a numeric date, preferring the day-before-month
// interpretation. A four-digit leading field flips to year-first (ISO
// style). When the preferred reading is not a valid calendar date, day and
// month are swapped and retried, which is how mixed-format documents
// actually resolve.
func parseDayFirst(raw string) (time.Time, bool) {
	parts := strings.Split(dateSeparators.Replace(strings.TrimSpace(raw)), ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
		if year < 100 {
			year += 2000
		}
	}

	if t, ok := calendarDate(year, month, day); ok {
		return t, true
	}
	if t, ok := calendarDate(year, day, month); ok {
		return t, true
	}
	return time.Time{}, false
}

// calendarDate validates that year/month/day is a real date inside the
// accepted year range. The round-trip check rejects overflow dates like
// February 31 that time.Date would silently normalize.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

// FormatILS renders an amount for display: shekel sign, thousands grouped
// with '.' and ',' as the decimal separator. Negative amounts have no
// display form and yield "".
func FormatILS(d decimal.Decimal) string {
	if d.IsNegative() {
		return ""
	}

	intPart, fracPart, _ := strings.Cut(d.StringFixed(2), ".")

	var b strings.Builder
	b.WriteString("₪")
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
