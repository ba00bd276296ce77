package services

import (
	"context"
	"io"
	"log/slog"

	"gstpro/internal/dataprocessing"
	"gstpro/internal/exporter"
	"gstpro/internal/infrastructure"
)

// Report type labels used in error messages and metrics.
const (
	ReportPurchase = "Purchase"
	ReportSales    = "Sales"
)

// ReportUpload is one uploaded report file as received by the HTTP layer.
type ReportUpload struct {
	Filename string
	Data     io.Reader
}

// FileError attributes a pipeline failure to the report file it came from.
type FileError struct {
	FileType string `json:"file_type"`
	Message  string `json:"message"`
	Err      error  `json:"-"`
}

// ProcessResult holds both cleaned tables after a successful run.
type ProcessResult struct {
	Purchase *dataprocessing.CleanTable
	Sales    *dataprocessing.CleanTable
}

// ReportService runs the Purchase and Sales pipelines and assembles the
// output workbook. Each call works on its own fresh uploads; the service
// keeps no state between requests.
type ReportService struct {
	writer *exporter.WorkbookWriter
	logger *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(writer *exporter.WorkbookWriter, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		writer: writer,
		logger: logger.With(slog.String("component", "report_service")),
	}
}

// Process runs both pipelines independently and returns either both cleaned
// tables or every per-file error that occurred. One file failing never hides
// the other file's outcome.
func (s *ReportService) Process(ctx context.Context, purchase, sales ReportUpload) (*ProcessResult, []FileError) {
	var fileErrors []FileError

	purchaseTable, err := s.runPipeline(ctx, ReportPurchase, purchase)
	if err != nil {
		fileErrors = append(fileErrors, FileError{FileType: ReportPurchase, Message: err.Error(), Err: err})
	}

	salesTable, err := s.runPipeline(ctx, ReportSales, sales)
	if err != nil {
		fileErrors = append(fileErrors, FileError{FileType: ReportSales, Message: err.Error(), Err: err})
	}

	if len(fileErrors) > 0 {
		return nil, fileErrors
	}

	return &ProcessResult{Purchase: purchaseTable, Sales: salesTable}, nil
}

// Export runs both pipelines and, only when both succeed, serializes the
// output workbook. A partial workbook is never produced.
func (s *ReportService) Export(ctx context.Context, purchase, sales ReportUpload) ([]byte, *ProcessResult, []FileError) {
	result, fileErrors := s.Process(ctx, purchase, sales)
	if len(fileErrors) > 0 {
		return nil, nil, fileErrors
	}

	workbook, err := s.writer.Write(result.Purchase, result.Sales)
	if err != nil {
		s.logger.ErrorContext(ctx, "workbook serialization failed",
			slog.String("error", err.Error()))
		return nil, nil, []FileError{{FileType: "Output", Message: "failed to generate output workbook", Err: err}}
	}

	return workbook, result, nil
}

// runPipeline loads one uploaded file and extracts its cleaned table.
func (s *ReportService) runPipeline(ctx context.Context, fileType string, upload ReportUpload) (*dataprocessing.CleanTable, error) {
	table, err := dataprocessing.LoadTable(fileType, upload.Filename, upload.Data)
	if err != nil {
		infrastructure.ReportsProcessed.WithLabelValues(fileType, "load_error").Inc()
		s.logger.WarnContext(ctx, "report load failed",
			slog.String("file_type", fileType),
			slog.String("filename", upload.Filename),
			slog.String("error", err.Error()))
		return nil, err
	}

	clean, err := dataprocessing.ExtractReport(table, fileType)
	if err != nil {
		infrastructure.ReportsProcessed.WithLabelValues(fileType, "missing_column").Inc()
		s.logger.WarnContext(ctx, "report extraction failed",
			slog.String("file_type", fileType),
			slog.String("filename", upload.Filename),
			slog.String("error", err.Error()))
		return nil, err
	}

	infrastructure.ReportsProcessed.WithLabelValues(fileType, "success").Inc()
	s.logger.InfoContext(ctx, "report processed",
		slog.String("file_type", fileType),
		slog.String("filename", upload.Filename),
		slog.Int("input_rows", len(table.Rows)),
		slog.Int("output_rows", len(clean.Rows)))

	return clean, nil
}
