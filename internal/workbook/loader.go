package workbook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"crmcli/internal/dataframe"
	"crmcli/internal/errors"
)

// Open opens a workbook file for reading
func Open(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	return f, nil
}

// LoadSheet reads the named sheet into a table, using the first row as the
// column header. Rows shorter than the header are padded; rows wider than
// the header are truncated with a warning; rows with no content at all are
// dropped. A missing sheet is a fatal data-access error.
func LoadSheet(f *excelize.File, sheet string, logger *slog.Logger) (*dataframe.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}

	if len(rows) == 0 {
		logger.Warn("Sheet has no rows", slog.String("sheet", sheet))
		return dataframe.New(nil), nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	table := dataframe.New(header)
	truncated := 0
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		if len(row) > len(header) {
			truncated++
		}
		table.Append(row)
	}
	if truncated > 0 {
		logger.Warn("Rows wider than header truncated to header width",
			slog.String("sheet", sheet),
			slog.Int("rows", truncated))
	}

	logger.Info("Loaded sheet",
		slog.String("sheet", sheet),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumCols()))

	return table, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
