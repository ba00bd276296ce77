package validation

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// allowedExtensions are the report formats the loader understands.
var allowedExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

// UploadValidator checks uploaded report files before they reach the
// processing pipeline.
type UploadValidator struct {
	logger *slog.Logger
}

// NewUploadValidator creates a new upload validator
func NewUploadValidator(logger *slog.Logger) *UploadValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadValidator{
		logger: logger.With(slog.String("component", "upload_validator")),
	}
}

// ValidateUpload checks that an uploaded part carries a usable report file.
// fieldName names the form field for error messages.
func (v *UploadValidator) ValidateUpload(fieldName string, header *multipart.FileHeader) error {
	if header == nil {
		return fmt.Errorf("no %s file was uploaded", fieldName)
	}

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		return fmt.Errorf("%s upload has no filename", fieldName)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		v.logger.Warn("rejected upload with unsupported extension",
			slog.String("field", fieldName),
			slog.String("filename", filename),
			slog.String("extension", ext))
		return fmt.Errorf("%s file must be .csv, .xls, or .xlsx, got %q", fieldName, ext)
	}

	if header.Size == 0 {
		return fmt.Errorf("%s file is empty", fieldName)
	}

	return nil
}
