package workbook

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "crmcli/internal/errors"
)

func TestEnsure_CopiesWhenDestinationMissing(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.xlsx")
	rawDir := filepath.Join(dir, "data", "raw")
	require.NoError(t, os.WriteFile(source, []byte("workbook-bytes"), 0644))

	dest, err := Ensure(source, rawDir, "CRM_Sales_Dashboard_25.xlsx", slog.Default())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(rawDir, "CRM_Sales_Dashboard_25.xlsx"), dest)
	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook-bytes"), content)
}

func TestEnsure_IdempotentWhenDestinationExists(t *testing.T) {
	dir := t.TempDir()
	rawDir := filepath.Join(dir, "raw")
	require.NoError(t, os.MkdirAll(rawDir, 0755))
	dest := filepath.Join(rawDir, "book.xlsx")
	require.NoError(t, os.WriteFile(dest, []byte("original"), 0644))

	// Source is invalid, but must not matter and must not be touched
	got, err := Ensure(filepath.Join(dir, "does-not-exist.xlsx"), rawDir, "book.xlsx", slog.Default())
	require.NoError(t, err)

	assert.Equal(t, dest, got)
	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), content)
}

func TestEnsure_DoesNotOverwriteExistingDestination(t *testing.T) {
	dir := t.TempDir()
	rawDir := filepath.Join(dir, "raw")
	require.NoError(t, os.MkdirAll(rawDir, 0755))
	dest := filepath.Join(rawDir, "book.xlsx")
	require.NoError(t, os.WriteFile(dest, []byte("original"), 0644))

	source := filepath.Join(dir, "newer.xlsx")
	require.NoError(t, os.WriteFile(source, []byte("newer"), 0644))

	_, err := Ensure(source, rawDir, "book.xlsx", slog.Default())
	require.NoError(t, err)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), content)
}

func TestEnsure_MissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "missing.xlsx")

	_, err := Ensure(source, filepath.Join(dir, "raw"), "book.xlsx", slog.Default())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
	assert.Contains(t, err.Error(), source)
}

func TestEnsure_CreatesRawDirectory(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.xlsx")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))

	rawDir := filepath.Join(dir, "data", "raw", "nested")
	_, err := Ensure(source, rawDir, "book.xlsx", slog.Default())
	require.NoError(t, err)

	info, err := os.Stat(rawDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
