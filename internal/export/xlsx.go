package export

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"fjacquet/saldo-xlsx/internal/models"
)

// WriteReportToXLSX renders the report as an XLSX workbook with a single
// sheet named after models.SheetName. The first row carries the column
// headers; every report row follows in order.
func WriteReportToXLSX(rep *models.Report) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("cannot export nil report to XLSX")
	}

	log.WithFields(logrus.Fields{
		"rows":  len(rep.Rows),
		"sheet": models.SheetName,
	}).Info("Rendering report to XLSX")

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	// NewFile starts with a sheet called "Sheet1"; rename it so the workbook
	// carries only the report sheet.
	if err := f.SetSheetName("Sheet1", models.SheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	header := []interface{}{models.HeaderFile, models.HeaderDate, models.HeaderBalance}
	if err := f.SetSheetRow(models.SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("error writing header row: %w", err)
	}

	for i, row := range rep.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("error locating row %d: %w", i+2, err)
		}
		values := []interface{}{row.File, row.Date, row.Balance}
		if err := f.SetSheetRow(models.SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.WithError(err).Error("Failed to serialize workbook")
		return nil, fmt.Errorf("error serializing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
