// Package report turns per-document extraction outcomes into the rows of the
// consolidated report.
package report

import (
	"fjacquet/saldo-xlsx/internal/models"
)

// RowsForDocument converts one document's extraction outcome into report
// rows. Every document contributes at least one row:
//
//   - a failed read yields a single "Erro ao ler PDF" row
//   - a clean read with no matches yields a single "Saldo não encontrado" row
//   - otherwise each extracted balance yields one row, in scan order
func RowsForDocument(name string, result models.ExtractionResult) []models.ReportRow {
	if result.Failed() {
		return []models.ReportRow{{
			File:    name,
			Date:    models.SentinelDate,
			Balance: models.SentinelReadError,
		}}
	}

	if result.Empty() {
		return []models.ReportRow{{
			File:    name,
			Date:    models.SentinelDate,
			Balance: models.SentinelNotFound,
		}}
	}

	rows := make([]models.ReportRow, 0, len(result.Records))
	for _, record := range result.Records {
		rows = append(rows, models.ReportRow{
			File:    name,
			Date:    record.Date,
			Balance: record.Balance,
		})
	}
	return rows
}
