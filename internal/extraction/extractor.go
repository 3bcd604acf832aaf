package extraction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Guess holds the best-effort fields pulled out of one document. A zero
// value for a field means "nothing found, fill in by hand" -- never a valid
// extracted result.
type Guess struct {
	Date   string              `json:"date"`   // YYYY-MM-DD, empty when no date was found
	Amount decimal.NullDecimal `json:"amount"` // null when no amount was found
	Vendor string              `json:"vendor"`
}

// Extractor turns raw document bytes into field guesses.
type Extractor interface {
	// Extract returns the field guesses for a document along with the plain
	// text they were read from.
	Extract(data []byte, contentType string) (*Guess, string, error)
}

// PatternExtractor extracts fields using the ordered pattern rules in this
// package. It holds no state; every call is an independent run over its own
// input.
type PatternExtractor struct{}

// NewPatternExtractor creates a new PatternExtractor
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract runs the pattern pipeline over a document. Only PDFs carry
// machine-readable text; any other content type yields an empty guess so the
// caller degrades to manual entry. No OCR is attempted on images.
func (e *PatternExtractor) Extract(data []byte, contentType string) (*Guess, string, error) {
	if strings.ToLower(strings.TrimSpace(contentType)) != "application/pdf" {
		return &Guess{}, "", nil
	}

	text, err := ExtractText(data)
	if err != nil {
		return nil, "", fmt.Errorf("extracting pdf text: %w", err)
	}

	return GuessFields(text), text, nil
}

// GuessFields runs all three field extractions over already-extracted text.
// The extractions are independent; one field coming up empty never blocks
// the others.
func GuessFields(text string) *Guess {
	return &Guess{
		Date:   GuessDate(text),
		Amount: GuessAmount(text),
		Vendor: GuessVendor(text),
	}
}
