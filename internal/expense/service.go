package expense

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orlevi/kabalot/internal/extraction"
)

// IDGenerator generates unique IDs for expenses
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// ScanResult is what an upload produces before any human confirmation: the
// stored file reference plus the extraction guesses that pre-fill the form.
// Nothing is written to the expense store until the user confirms.
type ScanResult struct {
	Filename    string            `json:"filename"`
	StoredFile  string            `json:"stored_file"`
	ContentType string            `json:"content_type"`
	Guess       *extraction.Guess `json:"guess"`
}

// ExpenseInput carries the human-confirmed fields of a create or update.
type ExpenseInput struct {
	Filename    string          `json:"filename"`
	StoredFile  string          `json:"stored_file"`
	ContentType string          `json:"content_type"`
	DocDate     string          `json:"doc_date"`
	Amount      decimal.Decimal `json:"amount_ils"`
	Vendor      string          `json:"vendor"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
}

// Service handles expense operations
type Service struct {
	db          DB
	extractor   extraction.Extractor
	storage     Storage
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, extractor extraction.Extractor, storage Storage) *Service {
	return &Service{
		db:          db,
		extractor:   extractor,
		storage:     storage,
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, extractor extraction.Extractor, storage Storage, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		extractor:   extractor,
		storage:     storage,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

var (
	filenameJunk = regexp.MustCompile(`[^\p{L}\p{N}\s\-_.]`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// sanitizeFilename cleans up an upload name. Hebrew letters stay; control
// characters and path separators go.
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)

	base = filenameJunk.ReplaceAllString(base, "")
	base = spaceRun.ReplaceAllString(base, " ")
	base = strings.TrimSpace(base)

	maxLen := 50
	if runes := []rune(base); len(runes) > maxLen {
		base = string(runes[:maxLen])
	}

	if base == "" {
		base = "document"
	}

	return base + ext
}

// ScanDocument stores an uploaded document and runs field extraction over
// it. Extraction problems degrade to empty guesses for manual entry; only a
// storage failure fails the upload.
func (s *Service) ScanDocument(filename string, data []byte, contentType string) (*ScanResult, error) {
	id := s.idGenerator.Generate()

	cleanFilename := sanitizeFilename(filename)
	cleanFilename, data, contentType, err := normalizeUpload(cleanFilename, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("normalizing upload: %w", err)
	}

	storedFile, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	guess := &extraction.Guess{}
	if g, _, err := s.extractor.Extract(data, contentType); err != nil {
		slog.Warn("Field extraction failed, falling back to manual entry",
			"filename", filename,
			"content_type", contentType,
			"error", err,
		)
	} else {
		guess = g
	}

	return &ScanResult{
		Filename:    cleanFilename,
		StoredFile:  storedFile,
		ContentType: contentType,
		Guess:       guess,
	}, nil
}

// validateInput enforces the record invariants at the persistence boundary.
func validateInput(in *ExpenseInput) error {
	if in.DocDate == "" {
		return &ValidationError{Field: "doc_date", Message: "date is required (YYYY-MM-DD)"}
	}
	if _, err := time.Parse("2006-01-02", in.DocDate); err != nil {
		return &ValidationError{Field: "doc_date", Message: "not a valid calendar date, expected YYYY-MM-DD"}
	}
	if in.Amount.IsNegative() {
		return &ValidationError{Field: "amount_ils", Message: "amount must not be negative"}
	}
	if in.Category == "" {
		in.Category = DefaultCategory()
	} else if !validCategory(in.Category) {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	return nil
}

// CreateExpense validates and persists a confirmed expense record.
func (s *Service) CreateExpense(in *ExpenseInput) (*Expense, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := s.timeSource.Now()
	expense := &Expense{
		ID:          s.idGenerator.Generate(),
		Filename:    in.Filename,
		StoredFile:  in.StoredFile,
		ContentType: in.ContentType,
		DocDate:     in.DocDate,
		Amount:      in.Amount,
		Vendor:      in.Vendor,
		Category:    in.Category,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.SaveExpense(expense); err != nil {
		return nil, fmt.Errorf("saving expense: %w", err)
	}

	return expense, nil
}

// UpdateExpense validates and applies edits to an existing record. The file
// reference fields are immutable; only the human-editable fields change.
func (s *Service) UpdateExpense(id string, in *ExpenseInput) (*Expense, error) {
	expense, err := s.db.GetExpense(id)
	if err != nil {
		return nil, fmt.Errorf("getting expense for update: %w", err)
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}

	expense.DocDate = in.DocDate
	expense.Amount = in.Amount
	expense.Vendor = in.Vendor
	expense.Category = in.Category
	expense.Notes = in.Notes
	expense.UpdatedAt = s.timeSource.Now()

	if err := s.db.SaveExpense(expense); err != nil {
		return nil, fmt.Errorf("saving expense: %w", err)
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *Service) GetExpense(id string) (*Expense, error) {
	expense, err := s.db.GetExpense(id)
	if err != nil {
		return nil, fmt.Errorf("getting expense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns all expenses ordered by document date, then ID.
func (s *Service) ListExpenses() ([]*Expense, error) {
	expenses, err := s.db.ListExpenses()
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].DocDate != expenses[j].DocDate {
			return expenses[i].DocDate < expenses[j].DocDate
		}
		return expenses[i].ID < expenses[j].ID
	})

	return expenses, nil
}

// DeleteExpense removes an expense record and its stored file
func (s *Service) DeleteExpense(id string) error {
	expense, err := s.db.GetExpense(id)
	if err != nil {
		return fmt.Errorf("getting expense for deletion: %w", err)
	}

	if expense.StoredFile != "" {
		if err := s.storage.Delete(expense.StoredFile); err != nil {
			slog.Warn("Failed to delete file", "filename", expense.StoredFile, "error", err)
		}
	}

	if err := s.db.DeleteExpense(id); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	return nil
}

// GetExpenseFile retrieves the stored document for an expense
func (s *Service) GetExpenseFile(id string) ([]byte, string, error) {
	expense, err := s.db.GetExpense(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting expense: %w", err)
	}

	data, err := s.storage.Get(expense.StoredFile)
	if err != nil {
		return nil, "", fmt.Errorf("getting expense file: %w", err)
	}

	return data, expense.ContentType, nil
}
