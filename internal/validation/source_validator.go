package validation

import (
	"log/slog"
	"os"
	"path/filepath"

	"oilstcli/internal/config"
	apperrors "oilstcli/internal/errors"
)

// SourceValidator checks the raw input files before the pipeline starts,
// so a missing or unreadable source fails up front instead of halfway
// through loading.
type SourceValidator struct {
	logger *slog.Logger
}

// NewSourceValidator creates a new source validator
func NewSourceValidator(logger *slog.Logger) *SourceValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceValidator{logger: logger}
}

// ValidateDataDirectory validates that the data directory exists and every
// configured source file inside it is a readable regular file.
func (v *SourceValidator) ValidateDataDirectory(dir string, sources config.SourcesConfig) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Data directory does not exist",
			slog.String("directory", dir))
		return apperrors.NewSourceNotFoundError("data directory", err).
			WithContext("directory", dir)
	}
	if err != nil {
		return apperrors.NewStorageError("failed to stat data directory", err).
			WithContext("directory", dir)
	}
	if !info.IsDir() {
		v.logger.Error("Data path is not a directory",
			slog.String("path", dir))
		return apperrors.NewValidationError("data path is not a directory").
			WithContext("path", dir)
	}

	for source, filename := range map[string]string{
		"customers":   sources.Customers,
		"geolocation": sources.Geolocation,
		"items":       sources.Items,
		"payments":    sources.Payments,
		"orders":      sources.Orders,
		"states":      sources.States,
	} {
		if err := v.ValidateFile(source, filepath.Join(dir, filename)); err != nil {
			return err
		}
	}

	v.logger.Info("Data directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateFile checks that a single source file exists and is readable.
func (v *SourceValidator) ValidateFile(source, path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Source file does not exist",
			slog.String("source", source),
			slog.String("file", path))
		return apperrors.NewSourceNotFoundError(source, err).
			WithContext("file", path)
	}
	if err != nil {
		return apperrors.NewStorageError("failed to stat source file", err).
			WithContext("file", path)
	}
	if info.IsDir() {
		v.logger.Error("Source path is a directory, not a file",
			slog.String("source", source),
			slog.String("path", path))
		return apperrors.NewValidationError("source path is a directory").
			WithContext("source", source).
			WithContext("path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Source file is not readable",
			slog.String("source", source),
			slog.String("file", path))
		return apperrors.NewStorageError("source file is not readable", err).
			WithContext("source", source).
			WithContext("file", path)
	}
	file.Close()

	v.logger.Debug("Source file validated",
		slog.String("source", source),
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the reports directory exists or can be
// created, and that it is writable.
func (v *SourceValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir))
		return apperrors.NewStorageError("failed to create output directory", err).
			WithContext("directory", dir)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir))
		return apperrors.NewStorageError("output directory is not writable", err).
			WithContext("directory", dir)
	}
	file.Close()
	os.Remove(testFile)

	return nil
}
