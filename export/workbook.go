// Package export writes inventory reports as xlsx workbooks.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yairfalse/kirja/inventory"
)

// ExportError reports that the workbook could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("write workbook %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Write serializes the report to an xlsx workbook at path, one sheet per
// category. The file is created fresh each run; nothing is merged with
// prior output.
func Write(path string, report *inventory.Report) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &ExportError{Path: path, Err: fmt.Errorf("output must be an .xlsx file")}
	}
	if len(report.Sheets) == 0 {
		return &ExportError{Path: path, Err: fmt.Errorf("report has no sheets")}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, sheet := range report.Sheets {
		if err := addSheet(f, i, sheet); err != nil {
			return &ExportError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

func addSheet(f *excelize.File, index int, sheet inventory.Sheet) error {
	// The workbook starts with a default sheet; rename it for the first
	// category instead of leaving an empty "Sheet1" behind.
	if index == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", sheet.Name, err)
		}
	} else {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("add sheet %s: %w", sheet.Name, err)
		}
	}

	if err := setRow(f, sheet.Name, 1, sheet.Header); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		if err := setRow(f, sheet.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheetName string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d in %s: %w", rowNum, sheetName, err)
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("row %d in %s: %w", rowNum, sheetName, err)
	}
	return nil
}
