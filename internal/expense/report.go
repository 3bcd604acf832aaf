package expense

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orlevi/kabalot/internal/extraction"
)

// MonthTotal is one row of the month dashboard.
type MonthTotal struct {
	Month   string          `json:"month"` // YYYY-MM
	Total   decimal.Decimal `json:"total"`
	Display string          `json:"display"` // shekel-formatted total
	Count   int             `json:"count"`
}

// monthKey returns the YYYY-MM bucket for a record, or "" for records whose
// date does not parse (they are left out of reports, not failed on).
func monthKey(docDate string) string {
	if _, err := time.Parse("2006-01-02", docDate); err != nil {
		return ""
	}
	return docDate[:7]
}

// MonthlyReport groups all expenses by calendar month of their document date
// and sums the amounts, sorted by month ascending.
func (s *Service) MonthlyReport() ([]MonthTotal, error) {
	expenses, err := s.db.ListExpenses()
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	totals := make(map[string]*MonthTotal)
	for _, e := range expenses {
		key := monthKey(e.DocDate)
		if key == "" {
			continue
		}
		row, ok := totals[key]
		if !ok {
			row = &MonthTotal{Month: key}
			totals[key] = row
		}
		row.Total = row.Total.Add(e.Amount)
		row.Count++
	}

	report := make([]MonthTotal, 0, len(totals))
	for _, row := range totals {
		row.Display = extraction.FormatILS(row.Total)
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Month < report[j].Month })

	return report, nil
}

// MonthExpenses returns the expenses of one YYYY-MM month, ordered by
// document date then ID.
func (s *Service) MonthExpenses(month string) ([]*Expense, error) {
	expenses, err := s.ListExpenses()
	if err != nil {
		return nil, err
	}

	matched := make([]*Expense, 0)
	for _, e := range expenses {
		if monthKey(e.DocDate) == month {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

var csvHeader = []string{"id", "filename", "doc_date", "amount_ils", "vendor", "category", "notes", "created_at"}

// ExportCSV renders every expense as CSV. The output starts with a UTF-8
// BOM so spreadsheet programs pick the right encoding for Hebrew text.
func (s *Service) ExportCSV() ([]byte, error) {
	expenses, err := s.ListExpenses()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			e.ID,
			e.Filename,
			e.DocDate,
			e.Amount.StringFixed(2),
			e.Vendor,
			e.Category,
			e.Notes,
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}
