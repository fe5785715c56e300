package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportRow is one line of the consolidated report. The csv tags double as
// the exported column headers.
type ReportRow struct {
	File    string `csv:"Arquivo" json:"arquivo"`
	Date    string `csv:"Data" json:"data"`
	Balance string `csv:"Saldo do Dia" json:"saldo_do_dia"`
}

// Sentinel reports whether the row records a failure instead of an extracted
// balance. Only the balance field decides: file names and dates never make a
// row a failure.
func (r ReportRow) Sentinel() bool {
	return r.Balance == SentinelNotFound || r.Balance == SentinelReadError
}

// Report is the consolidated result of one processing run. Rows keep upload
// order between documents and scan order within a document.
type Report struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time   `json:"generated_at" yaml:"generated_at"`
	Rows        []ReportRow `json:"rows" yaml:"rows"`
}

// NewReport creates a Report with a generated run ID and timestamp.
func NewReport(rows []ReportRow) *Report {
	return &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now(),
		Rows:        rows,
	}
}

// Successes returns the rows holding extracted balances, in report order.
func (r *Report) Successes() []ReportRow {
	var rows []ReportRow
	for _, row := range r.Rows {
		if !row.Sentinel() {
			rows = append(rows, row)
		}
	}
	return rows
}

// Failures returns the sentinel rows, in report order.
func (r *Report) Failures() []ReportRow {
	var rows []ReportRow
	for _, row := range r.Rows {
		if row.Sentinel() {
			rows = append(rows, row)
		}
	}
	return rows
}

// Empty reports whether the report has no rows.
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}
