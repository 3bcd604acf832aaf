package extraction

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// maxPages bounds how much of a document gets scanned. Invoices put the
// interesting fields on the first page or two; anything past page five is
// terms and conditions.
const maxPages = 5

// ExtractText pulls the plain text out of a PDF. It reads at most the first
// five pages, drops pages with no text content, and joins the rest with
// newlines. A malformed document comes back as an error the caller should
// treat the same as "no text extracted".
func ExtractText(pdfData []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var parts []string
	for i := 0; i < pages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i+1, err)
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
