package expense

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
)

// maxUploadSize bounds invoice uploads; phone scans of multi-page PDFs stay
// well under this.
const maxUploadSize = int64(50 << 20) // 50MB

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// corsError writes an error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// writeJSON writes a JSON response body with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// writeJSONError writes an error payload. Validation errors carry the field
// name so the client can highlight it without discarding the form state.
func writeJSONError(w http.ResponseWriter, err error) {
	setCORSHeaders(w)
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// handleIndex serves the HTML interface
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// handleStaticCSS serves the CSS file
func (s *Server) handleStaticCSS(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/css")
	w.Write(appCSS)
}

// handleStaticJS serves the JavaScript file
func (s *Server) handleStaticJS(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(appJS)
}

// contentTypeFor fills in a content type from the filename when the browser
// did not send one.
func contentTypeFor(header string, filename string) string {
	contentType := strings.ToLower(strings.TrimSpace(header))
	if contentType != "" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	default:
		return "application/octet-stream"
	}
}

// handleScanDocument accepts an uploaded document, stores it and returns the
// extraction guesses for the confirmation form. Extraction trouble never
// fails this call; the guesses just come back empty.
func (s *Server) handleScanDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		setCORSHeaders(w)
		errorMsg := "Error parsing form"
		if err.Error() == "http: request body too large" {
			errorMsg = "File is too large. Maximum size is 50MB."
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errorMsg})
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		setCORSHeaders(w)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file provided"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		setCORSHeaders(w)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error reading file. Please try again."})
		return
	}

	contentType := contentTypeFor(header.Header.Get("Content-Type"), header.Filename)

	result, err := s.service.ScanDocument(header.Filename, data, contentType)
	if err != nil {
		slog.Error("Error scanning document", "filename", header.Filename, "error", err)
		writeJSONError(w, err)
		return
	}

	setCORSHeaders(w)
	writeJSON(w, http.StatusOK, result)
}

// handleCreateExpense persists a confirmed expense record
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var in ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		corsError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	expense, err := s.service.CreateExpense(&in)
	if err != nil {
		slog.Error("Error creating expense", "error", err)
		writeJSONError(w, err)
		return
	}

	setCORSHeaders(w)
	writeJSON(w, http.StatusCreated, expense)
}

// handleUpdateExpense applies edits to an existing expense
func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Expense ID required", http.StatusBadRequest)
		return
	}

	var in ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		corsError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	expense, err := s.service.UpdateExpense(id, &in)
	if err != nil {
		slog.Error("Error updating expense", "id", id, "error", err)
		writeJSONError(w, err)
		return
	}

	setCORSHeaders(w)
	writeJSON(w, http.StatusOK, expense)
}

// handleListExpenses returns all expenses ordered by document date
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.service.ListExpenses()
	if err != nil {
		slog.Error("Error listing expenses", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// handleGetExpense returns a single expense
func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Expense ID required", http.StatusBadRequest)
		return
	}
	expense, err := s.service.GetExpense(id)
	if err != nil {
		corsError(w, "Expense not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// handleGetExpenseFile returns the stored document for an expense
func (s *Server) handleGetExpenseFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Expense ID required", http.StatusBadRequest)
		return
	}
	data, contentType, err := s.service.GetExpenseFile(id)
	if err != nil {
		corsError(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// handleDeleteExpense deletes an expense and its stored file
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Expense ID required", http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteExpense(id); err != nil {
		corsError(w, "Error deleting expense", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleMonthlyReport returns per-month totals, plus that month's records
// when a month query parameter is given.
func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	months, err := s.service.MonthlyReport()
	if err != nil {
		slog.Error("Error building monthly report", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := map[string]any{"months": months}

	if month := r.URL.Query().Get("month"); month != "" {
		expenses, err := s.service.MonthExpenses(month)
		if err != nil {
			slog.Error("Error listing month expenses", "month", month, "error", err)
			corsError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		response["month"] = month
		response["expenses"] = expenses
	}

	writeJSON(w, http.StatusOK, response)
}

// handleExportCSV streams all expenses as a CSV download
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.ExportCSV()
	if err != nil {
		slog.Error("Error exporting csv", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses_export.csv"`)
	w.Write(data)
}
