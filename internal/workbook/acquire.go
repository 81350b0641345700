package workbook

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"crmcli/internal/errors"
)

// Ensure guarantees a workbook exists at <rawDir>/<canonicalName> and
// returns its path. When the canonical copy is missing it is copied from
// source; when the canonical copy already exists neither it nor the source
// is touched. The raw directory is created if needed.
func Ensure(source, rawDir, canonicalName string, logger *slog.Logger) (string, error) {
	if err := os.MkdirAll(rawDir, 0755); err != nil {
		return "", errors.NewStorageError("failed to create raw data directory", err)
	}

	dest := filepath.Join(rawDir, canonicalName)
	if _, err := os.Stat(dest); err == nil {
		logger.Info("Using existing workbook", slog.String("path", dest))
		return dest, nil
	}

	if _, err := os.Stat(source); err != nil {
		return "", errors.NewNotFoundError(fmt.Sprintf("could not find source Excel at %s", source)).
			WithContext("source", source)
	}

	if err := copyFile(source, dest); err != nil {
		return "", errors.NewStorageError("failed to copy workbook into raw data directory", err)
	}

	logger.Info("Copied Excel to raw data directory",
		slog.String("source", source),
		slog.String("dest", dest))

	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
