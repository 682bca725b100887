package web

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sellerpulse/internal/importer"
	"sellerpulse/internal/logging"
	"sellerpulse/internal/store"
)

// PreviewResponse wraps a parse result with the report-only validation
// findings so clients can show both before committing.
type PreviewResponse struct {
	importer.ParseResult
	Validation []string `json:"validation"`
}

// ValidationErrorResponse is returned when a commit is rejected because
// parsed records failed the validation pass.
type ValidationErrorResponse struct {
	Error      string   `json:"error"`
	Validation []string `json:"validation"`
}

// validateResult runs the report-only validation pass over both record
// kinds of a parse result.
func validateResult(result importer.ParseResult) []string {
	validation := importer.ValidateSales(result.SalesData)
	validation = append(validation, importer.ValidateProducts(result.ProductsData)...)
	if validation == nil {
		validation = []string{}
	}
	return validation
}

// handleImportPreview parses an uploaded CSV and returns the result
// without persisting anything.
func (s *Server) handleImportPreview(w http.ResponseWriter, r *http.Request) {
	text, fileName, err := s.readCSVUpload(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := importer.ParseCSV(text)
	validation := validateResult(result)

	logging.FromContext(r.Context()).Info("import previewed",
		"file_name", fileName,
		"import_type", result.Type,
		"sales_rows", len(result.SalesData),
		"product_rows", len(result.ProductsData),
		"errors", len(result.Errors),
	)

	writeJSON(w, r, http.StatusOK, PreviewResponse{
		ParseResult: result,
		Validation:  validation,
	})
}

// handleImportCommit parses an uploaded CSV and persists the result.
func (s *Server) handleImportCommit(w http.ResponseWriter, r *http.Request) {
	text, fileName, err := s.readCSVUpload(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := importer.ParseCSV(text)
	if result.Type == importer.TypeUndetermined {
		msg := "nothing to commit"
		if len(result.Errors) > 0 {
			msg = result.Errors[0]
		}
		writeError(w, r, http.StatusUnprocessableEntity, msg)
		return
	}

	// Records that parse but fail the validation pass must not reach the
	// store: a negative quantity would inflate stock on decrement and
	// skew every KPI built on the sales table.
	if validation := validateResult(result); len(validation) > 0 {
		logging.FromContext(r.Context()).Warn("import rejected by validation",
			"file_name", fileName,
			"findings", len(validation),
		)
		writeJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:      "validation failed",
			Validation: validation,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Import.Timeout)
	defer cancel()

	summary, err := s.store.ReconcileImport(ctx, fileName, result)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("commit import: %v", err))
		return
	}

	writeJSON(w, r, http.StatusCreated, summary)
}

// handleImportTemplate serves a downloadable CSV template with the
// canonical headers and one example row.
func (s *Server) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = "sales"
	}

	var headers, example []string
	switch kind {
	case "sales":
		headers = importer.SalesTemplateHeaders
		example = []string{"SKU-001", "Wireless Mouse", "electronics", "3", "9.99", "4.50", "2026-01-15", "amazon", "January restock"}
	case "products":
		headers = importer.ProductTemplateHeaders
		example = []string{"Wireless Mouse", "SKU-001", "electronics", "9.99", "4.50", "120", "25", "14", "Acme Supply", "orders@acme.example", "Warehouse A", ""}
	default:
		writeError(w, r, http.StatusBadRequest, "type must be sales or products")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_template.csv", kind))

	cw := csv.NewWriter(w)
	_ = cw.Write(headers)
	_ = cw.Write(example)
	cw.Flush()
}

// handleListImports returns import history.
func (s *Server) handleListImports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := s.store.ListImports(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("list imports: %v", err))
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}

// handleMetricsSummary returns the dashboard KPI summary.
func (s *Server) handleMetricsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.store.MetricsSummary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("metrics summary: %v", err))
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

// handleLowStock returns products at or below their reorder point.
func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.LowStockProducts(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("low stock: %v", err))
		return
	}
	if products == nil {
		products = []store.Product{}
	}
	writeJSON(w, r, http.StatusOK, products)
}

// handleListGoals returns all goals.
func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.ListGoals(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("list goals: %v", err))
		return
	}
	if goals == nil {
		goals = []store.Goal{}
	}
	writeJSON(w, r, http.StatusOK, goals)
}

// handleCreateGoal creates a new goal from a JSON payload.
func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var input store.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	goal, err := s.store.CreateGoal(r.Context(), input)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusCreated, goal)
}

// handleListTrophies returns awarded trophies.
func (s *Server) handleListTrophies(w http.ResponseWriter, r *http.Request) {
	trophies, err := s.store.ListTrophies(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("list trophies: %v", err))
		return
	}
	if trophies == nil {
		trophies = []store.Trophy{}
	}
	writeJSON(w, r, http.StatusOK, trophies)
}

// handleHealth reports liveness and database connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// readCSVUpload extracts CSV text from either a multipart "file" field
// or the raw request body, enforcing the configured size limit.
func (s *Server) readCSVUpload(w http.ResponseWriter, r *http.Request) (text, fileName string, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.cfg.Import.MaxFileSize); err != nil {
			return "", "", fmt.Errorf("upload too large or malformed: %w", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", "", errors.New("missing file field in upload")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", fmt.Errorf("read upload: %w", err)
		}
		return string(data), header.Filename, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", "", fmt.Errorf("upload exceeds %d byte limit", maxErr.Limit)
		}
		return "", "", fmt.Errorf("read request body: %w", err)
	}
	return string(data), "upload.csv", nil
}
