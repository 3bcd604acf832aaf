package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Categories is the closed list an expense may be filed under. The first
// entry is the default for records nobody has categorized yet. The
// extraction pipeline never picks a category; it is always human-supplied.
var Categories = []string{
	"לא משויך",
	"פרסום ושיווק",
	"ציוד משרדי",
	"תוכנות ומנויים",
	"נסיעות וחניה",
	"אירוח וקפה",
	"שירותים מקצועיים",
	"תקשורת ואינטרנט",
	"אחר",
}

// DefaultCategory returns the category for uncategorized expenses.
func DefaultCategory() string {
	return Categories[0]
}

func validCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is one stored expense record.
type Expense struct {
	ID          string          `json:"id"`
	Filename    string          `json:"filename"`    // original upload name
	StoredFile  string          `json:"stored_file"` // name in file storage
	ContentType string          `json:"content_type"`
	DocDate     string          `json:"doc_date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount_ils"`
	Vendor      string          `json:"vendor"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ValidationError reports a field rejected at the persistence boundary. The
// handler maps it to a response that keeps the submitted form state so the
// user can correct and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
