package helper

import (
	"io"

	"github.com/pkg/errors"
	excel "github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteSheet renders headers plus rows as a single-sheet xlsx document.
func WriteSheet(w io.Writer, sheet string, headers []string, rows [][]any) error {
	file := excel.NewFile()
	defer file.Close()

	if sheet != "" && sheet != defaultSheet {
		if err := file.SetSheetName(defaultSheet, sheet); err != nil {
			return errors.Wrap(err, "excel.SetSheetName")
		}
	} else {
		sheet = defaultSheet
	}

	for i, header := range headers {
		cell, err := excel.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return errors.Wrap(err, "excel.SetCellValue")
		}
	}

	for r, row := range rows {
		cell, err := excel.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := row
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrap(err, "excel.SetSheetRow")
		}
	}

	return file.Write(w)
}
