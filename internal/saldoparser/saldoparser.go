// Package saldoparser extracts daily balance lines from bank statement PDFs
// ("extrato razão" layout). A balance line looks like
//
//	04/09/25 123456 SALDO DIA 1.500,00 C 15.043,90 C
//
// date, document number, the SALDO DIA marker, the day's movement amount with
// an optional C/D marker, and the closing balance with an optional C/D
// marker. Only the date and the closing balance are kept.
package saldoparser

import (
	"regexp"

	"github.com/sirupsen/logrus"

	"fjacquet/saldo-xlsx/internal/currencyutils"
	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/models"
	"fjacquet/saldo-xlsx/internal/parsererror"
	"fjacquet/saldo-xlsx/internal/textutils"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// saldoDiaPattern matches one daily balance line anywhere in the document
// text. Group 1 captures the date, group 2 the closing balance; the movement
// amount and the C/D markers are matched but discarded. Downstream files
// depend on the exact shape of this pattern, including the trailing
// whitespace it requires after the balance, so it never changes.
var saldoDiaPattern = regexp.MustCompile(`(?i)(\d{2}/\d{2}/\d{2,4})\s+\d+\s+SALDO DIA\s+[\d.]+,\d{2}\s[CD]?\s+([\d.]+,\d{2})\s[CD]?`)

// Extract scans the whole document text and returns every daily balance in
// scan order. Dates are kept verbatim; balances have their thousands
// separators stripped. Repeated lines produce repeated records.
func Extract(documentText string) []models.BalanceRecord {
	matches := saldoDiaPattern.FindAllStringSubmatch(documentText, -1)
	records := make([]models.BalanceRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, models.BalanceRecord{
			Date:    m[1],
			Balance: currencyutils.StripThousands(m[2]),
		})
	}
	return records
}

// ParseDocument reads the document with the real page extractor and scans the
// joined page text.
func ParseDocument(name string, data []byte) models.ExtractionResult {
	return ParseDocumentWithExtractor(name, data, NewRealPageExtractor(), logging.NewLogrusAdapterFromLogger(log))
}

// ParseDocumentWithExtractor reads the document with the provided extractor
// and scans the joined page text. Any read failure short-circuits to the
// failed variant before the scan runs.
func ParseDocumentWithExtractor(name string, data []byte, extractor PageExtractor, logger logging.Logger) models.ExtractionResult {
	if extractor == nil {
		extractor = NewRealPageExtractor()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(log)
	}

	pages, err := extractor.ExtractPages(data)
	if err != nil {
		logger.WithError(err).Error("Failed to read PDF",
			logging.Field{Key: logging.FieldFile, Value: name})
		return models.ReadFailure(&parsererror.ReadError{File: name, Err: err})
	}

	text := textutils.JoinPages(pages)
	records := Extract(text)

	logger.Debug("Scanned document for daily balances",
		logging.Field{Key: logging.FieldFile, Value: name},
		logging.Field{Key: logging.FieldPages, Value: len(pages)},
		logging.Field{Key: logging.FieldMatches, Value: len(records)})

	return models.FoundBalances(records)
}

// Parser binds a page extractor and a logger into the document pipeline.
type Parser struct {
	logger    logging.Logger
	extractor PageExtractor
}

// NewParser creates a new Parser with dependency injection. A nil extractor
// falls back to the real implementation, a nil logger to the shared one.
func NewParser(logger logging.Logger, extractor PageExtractor) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(log)
	}
	if extractor == nil {
		extractor = NewRealPageExtractor()
	}
	return &Parser{
		logger:    logger,
		extractor: extractor,
	}
}

// ParseDocument processes one uploaded document.
func (p *Parser) ParseDocument(name string, data []byte) models.ExtractionResult {
	return ParseDocumentWithExtractor(name, data, p.extractor, p.logger)
}
