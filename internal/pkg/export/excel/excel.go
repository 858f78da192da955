// Package excel writes assembled tables into a xlsx spreadsheet,
// one sheet per table, root table first.
package excel

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kobotools/kobotab/internal/pkg/flatten"
	"github.com/kobotools/kobotab/internal/pkg/model"
)

// ErrNoData is returned when there is nothing to write,
// it mirrors the nil result of the assembler.
var ErrNoData = errors.New("no data to export")

// Writer exports assembly results to xlsx files on the given filesystem.
type Writer struct {
	fs     afero.Fs
	logger *zap.SugaredLogger
}

func NewWriter(fs afero.Fs, logger *zap.SugaredLogger) *Writer {
	return &Writer{fs: fs, logger: logger}
}

// Write serializes the result into the xlsx file at path.
// Sheet names are the sanitized table names, the root sheet comes first and
// the rest follow the table discovery order. Write failures are returned,
// never swallowed.
func (w *Writer) Write(result *flatten.Result, path string, maxSheetNameLength int) error {
	if result == nil || len(result.Order) == 0 {
		return ErrNoData
	}

	order := result.Order
	names := sheetNames(order, maxSheetNameLength)

	file := excelize.NewFile()
	defer file.Close()

	for i, tableName := range order {
		table := result.Tables[tableName]
		sheet := names[tableName]

		if i == 0 {
			// The default sheet becomes the root sheet.
			if err := file.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return err
			}
		}

		if err := writeSheet(file, sheet, table); err != nil {
			return fmt.Errorf(`cannot write sheet "%s": %w`, sheet, err)
		}

		w.logger.Debugf(`Table "%s" -> sheet "%s" (%d rows, %d columns)`, tableName, sheet, table.RowCount(), len(table.Columns))
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	out, err := w.fs.Create(path)
	if err != nil {
		return err
	}
	if err := file.Write(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	w.logger.Infof(`Exported %d sheets to "%s"`, len(order), path)
	return nil
}

func writeSheet(file *excelize.File, sheet string, table *model.Table) error {
	header := make([]any, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = column
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := make([]any, len(row))
		copy(cells, row)
		if err := file.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
