// Package export renders the consolidated report as downloadable XLSX and
// CSV payloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the column separator for CSV output. It can be configured via
// the report.csv_delimiter setting or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteReportToCSV renders the report rows as CSV bytes, one line per row
// plus a header line.
func WriteReportToCSV(rep *models.Report) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("cannot export nil report to CSV")
	}

	log.WithFields(logrus.Fields{
		"rows":      len(rep.Rows),
		"delimiter": string(Delimiter),
	}).Info("Rendering report to CSV")

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rep.Rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal report rows to CSV")
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}

	return buf.Bytes(), nil
}
