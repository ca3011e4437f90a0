package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oilstcli/internal/config"
	apperrors "oilstcli/internal/errors"
)

func writeSources(t *testing.T, dir string, sources config.SourcesConfig) {
	t.Helper()
	for _, name := range []string{
		sources.Customers, sources.Geolocation, sources.Items,
		sources.Payments, sources.Orders, sources.States,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestSourceValidator_ValidateDataDirectory(t *testing.T) {
	sources := config.Default().Pipeline.Sources
	validator := NewSourceValidator(nil)

	t.Run("all sources present", func(t *testing.T) {
		dir := t.TempDir()
		writeSources(t, dir, sources)

		assert.NoError(t, validator.ValidateDataDirectory(dir, sources))
	})

	t.Run("directory missing", func(t *testing.T) {
		err := validator.ValidateDataDirectory(filepath.Join(t.TempDir(), "nope"), sources)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSourceNotFound))
	})

	t.Run("path is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		err := validator.ValidateDataDirectory(path, sources)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	})

	t.Run("one source missing", func(t *testing.T) {
		dir := t.TempDir()
		writeSources(t, dir, sources)
		require.NoError(t, os.Remove(filepath.Join(dir, sources.Orders)))

		err := validator.ValidateDataDirectory(dir, sources)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSourceNotFound))
	})
}

func TestSourceValidator_ValidateFile_Directory(t *testing.T) {
	validator := NewSourceValidator(nil)

	err := validator.ValidateFile("orders", t.TempDir())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestSourceValidator_ValidateOutputDirectory(t *testing.T) {
	validator := NewSourceValidator(nil)
	dir := filepath.Join(t.TempDir(), "reports", "nested")

	require.NoError(t, validator.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// The writability probe cleans up after itself
	_, err = os.Stat(filepath.Join(dir, ".write_test"))
	assert.True(t, os.IsNotExist(err))
}
