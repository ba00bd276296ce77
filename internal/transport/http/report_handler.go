package http

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"gstpro/internal/dataprocessing"
	"gstpro/internal/errors"
	"gstpro/internal/exporter"
	"gstpro/internal/infrastructure"
	"gstpro/internal/middleware"
	"gstpro/internal/services"
	"gstpro/internal/validation"
)

// Multipart form field names for the two report uploads.
const (
	FieldPurchase = "purchase"
	FieldSales    = "sales"
)

// ReportHandler handles report processing HTTP requests
type ReportHandler struct {
	service         *services.ReportService
	validator       *validation.UploadValidator
	errorHandler    *errors.ErrorHandler
	logger          *slog.Logger
	maxRequestBytes int64
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *services.ReportService, validator *validation.UploadValidator, errorHandler *errors.ErrorHandler, logger *slog.Logger, maxRequestBytes int64) *ReportHandler {
	return &ReportHandler{
		service:         service,
		validator:       validator,
		errorHandler:    errorHandler,
		logger:          logger.With(slog.String("handler", "reports")),
		maxRequestBytes: maxRequestBytes,
	}
}

// Routes returns the report processing routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/preview", h.Preview)
	r.Post("/process", h.Process)
	return r
}

// previewTable is the JSON shape of one cleaned table in a preview response
type previewTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// previewResponse carries both cleaned tables back to the page
type previewResponse struct {
	Success  bool         `json:"success"`
	Purchase previewTable `json:"purchase"`
	Sales    previewTable `json:"sales"`
}

// Preview handles POST /api/reports/preview. It runs both pipelines and
// returns the cleaned tables as JSON without producing the workbook.
func (h *ReportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	purchase, sales, cleanup, ok := h.parseUploads(w, r)
	if !ok {
		return
	}
	defer cleanup()

	result, fileErrors := h.service.Process(r.Context(), purchase, sales)
	if len(fileErrors) > 0 {
		h.renderFileErrors(w, r, fileErrors)
		return
	}

	render.JSON(w, r, previewResponse{
		Success:  true,
		Purchase: previewTable{Columns: dataprocessing.Headers(), Rows: result.Purchase.Records()},
		Sales:    previewTable{Columns: dataprocessing.Headers(), Rows: result.Sales.Records()},
	})
}

// Process handles POST /api/reports/process. On success it streams the
// two-sheet output workbook as a download; on failure it reports every
// per-file error and produces no artifact.
func (h *ReportHandler) Process(w http.ResponseWriter, r *http.Request) {
	purchase, sales, cleanup, ok := h.parseUploads(w, r)
	if !ok {
		return
	}
	defer cleanup()

	workbook, result, fileErrors := h.service.Export(r.Context(), purchase, sales)
	if len(fileErrors) > 0 {
		h.renderFileErrors(w, r, fileErrors)
		return
	}

	infrastructure.WorkbooksGenerated.Inc()
	h.logger.InfoContext(r.Context(), "workbook download ready",
		slog.Int("purchase_rows", len(result.Purchase.Rows)),
		slog.Int("sales_rows", len(result.Sales.Rows)),
		slog.Int("bytes", len(workbook)))

	w.Header().Set("Content-Type", exporter.OutputMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.OutputFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(workbook)))
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

// parseUploads pulls both report files out of the multipart form. It answers
// the request itself (and returns ok=false) when either upload is missing or
// invalid, matching the pre-processing warning the page shows.
func (h *ReportHandler) parseUploads(w http.ResponseWriter, r *http.Request) (services.ReportUpload, services.ReportUpload, func(), bool) {
	none := services.ReportUpload{}
	noop := func() {}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)
	if err := r.ParseMultipartForm(h.maxRequestBytes); err != nil {
		h.errorHandler.HandleError(w, r, errors.NewValidationError(
			"could not read the uploaded files; check the upload size and try again"))
		return none, none, noop, false
	}

	purchaseFile, purchaseHeader, purchaseErr := r.FormFile(FieldPurchase)
	salesFile, salesHeader, salesErr := r.FormFile(FieldSales)
	cleanup := func() {
		if purchaseFile != nil {
			purchaseFile.Close()
		}
		if salesFile != nil {
			salesFile.Close()
		}
	}

	if purchaseErr != nil || salesErr != nil {
		cleanup()
		problem := errors.NewProblemDetails(
			http.StatusBadRequest,
			errors.TypeMissingUpload,
			"Missing Report File",
			"Please upload both the Purchase and Sales files before processing",
			r.URL.Path,
		).WithExtension("trace_id", middleware.GetReqID(r.Context()))
		render.Render(w, r, problem)
		return none, none, noop, false
	}

	if err := h.validateUploads(purchaseHeader, salesHeader); err != nil {
		cleanup()
		h.errorHandler.HandleError(w, r, err)
		return none, none, noop, false
	}

	purchase := services.ReportUpload{Filename: purchaseHeader.Filename, Data: purchaseFile}
	sales := services.ReportUpload{Filename: salesHeader.Filename, Data: salesFile}
	return purchase, sales, cleanup, true
}

func (h *ReportHandler) validateUploads(purchase, sales *multipart.FileHeader) error {
	if err := h.validator.ValidateUpload(services.ReportPurchase, purchase); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := h.validator.ValidateUpload(services.ReportSales, sales); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// renderFileErrors reports every failed pipeline in one RFC 7807 response.
// Both files' errors appear together; a file that succeeded is not mentioned.
func (h *ReportHandler) renderFileErrors(w http.ResponseWriter, r *http.Request, fileErrors []services.FileError) {
	for _, fe := range fileErrors {
		h.logger.WarnContext(r.Context(), "report pipeline failed",
			slog.String("file_type", fe.FileType),
			slog.String("error", fe.Message))
	}

	problem := errors.NewProblemDetails(
		http.StatusUnprocessableEntity,
		errors.TypeProcessingFailed,
		"Report Processing Failed",
		"One or more report files could not be processed; no output was generated",
		r.URL.Path,
	).WithExtension("errors", fileErrors).
		WithExtension("trace_id", middleware.GetReqID(r.Context()))

	render.Render(w, r, problem)
}
