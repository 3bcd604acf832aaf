package extraction

import "regexp"

// A rule is one pattern in a field's recognizer list. Rules are tried in
// slice order; position is priority.
type rule struct {
	name string
	re   *regexp.Regexp
}

// tryMatch returns the first captured value in document scan order.
func (r rule) tryMatch(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchAll returns every captured value, in document scan order.
func (r rule) matchAll(text string) []string {
	var out []string
	for _, m := range r.re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// Date recognizers. Both scan the whole text and keep every match; the
// earliest parsed date wins (see GuessDate).
var dateRules = []rule{
	{name: "day-first", re: regexp.MustCompile(`\b(\d{1,2}[./-]\d{1,2}[./-]\d{2,4})\b`)},
	{name: "year-first", re: regexp.MustCompile(`\b(\d{4}[./-]\d{1,2}[./-]\d{1,2})\b`)},
}

// Amount recognizers in priority order: an explicit "total payable" label
// beats "total including VAT", which beats a bare currency sign. The order
// encodes which label tends to sit next to the real total on Israeli
// invoices; retune by reordering the table, not by editing GuessAmount.
// Both ASCII quotes and gershayim are accepted inside the abbreviations.
var amountRules = []rule{
	{name: "total-payable", re: regexp.MustCompile(`(?:סה["״]?כ\s*לתשלום|סה["״]?כ\s*תשלום|סכום\s*לתשלום|לתשלום)\s*[:\-]?\s*₪?\s*([0-9][0-9,]*\.?[0-9]{0,2})`)},
	{name: "total-incl-vat", re: regexp.MustCompile(`(?:סה["״]?כ\s*כולל\s*מע["״]?מ|סה["״]?כ\s*כולל)\s*[:\-]?\s*₪?\s*([0-9][0-9,]*\.?[0-9]{0,2})`)},
	{name: "currency-sign", re: regexp.MustCompile(`₪\s*([0-9][0-9,]*\.?[0-9]{0,2})`)},
}

// Vendor hint phrases, most specific first. Captures run to end of line.
var vendorRules = []rule{
	{name: "supplier-name", re: regexp.MustCompile(`שם\s*ספק\s*[:\-]?\s*(.+)`)},
	{name: "supplier", re: regexp.MustCompile(`ספק\s*[:\-]?\s*(.+)`)},
	{name: "addressee", re: regexp.MustCompile(`לכבוד\s*[:\-]?\s*(.+)`)},
}
