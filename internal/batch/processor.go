// Package batch processes a group of uploaded statement documents into a
// consolidated balance report.
package batch

import (
	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/models"
	"fjacquet/saldo-xlsx/internal/parsererror"
	"fjacquet/saldo-xlsx/internal/report"
)

// Document is one uploaded file, already read into memory. Err carries a
// failure detected before parsing (unreadable upload, rejected validation);
// such documents still contribute a read-error row to the report.
type Document struct {
	Name string
	Data []byte
	Err  error
}

// ParseFunc extracts daily balances from one document's raw bytes.
type ParseFunc func(name string, data []byte) models.ExtractionResult

// ProgressFunc is notified after each document finishes, successful or not.
type ProgressFunc func(done, total int, name string)

// Processor runs a batch of documents through the parser and assembles the
// resulting report rows in upload order.
type Processor struct {
	parse  ParseFunc
	logger logging.Logger

	// OnProgress, when set, is called once per document as it completes.
	OnProgress ProgressFunc
}

// NewProcessor creates a Processor using the given parse function.
func NewProcessor(parse ParseFunc, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Processor{
		parse:  parse,
		logger: logger,
	}
}

// ProcessAll parses every document and builds a fresh report from the rows.
// A document that fails never aborts the batch; it yields its sentinel row
// and processing moves on. An empty batch returns ErrEmptyBatch and no report.
func (p *Processor) ProcessAll(docs []Document) (*models.Report, error) {
	if len(docs) == 0 {
		p.logger.Warn("No documents to process")
		return nil, parsererror.ErrEmptyBatch
	}

	total := len(docs)
	rows := make([]models.ReportRow, 0, total)

	p.logger.Info("Processing uploaded documents",
		logging.Field{Key: logging.FieldTotal, Value: total})

	for i, doc := range docs {
		var result models.ExtractionResult
		if doc.Err != nil {
			p.logger.Error("Skipping unreadable upload",
				logging.Field{Key: logging.FieldFile, Value: doc.Name},
				logging.Field{Key: logging.FieldError, Value: doc.Err})
			result = models.ReadFailure(doc.Err)
		} else {
			result = p.parse(doc.Name, doc.Data)
		}

		docRows := report.RowsForDocument(doc.Name, result)
		rows = append(rows, docRows...)

		p.logger.Debug("Document processed",
			logging.Field{Key: logging.FieldFile, Value: doc.Name},
			logging.Field{Key: logging.FieldIndex, Value: i + 1},
			logging.Field{Key: logging.FieldTotal, Value: total},
			logging.Field{Key: logging.FieldRows, Value: len(docRows)})

		if p.OnProgress != nil {
			p.OnProgress(i+1, total, doc.Name)
		}
	}

	rep := models.NewReport(rows)
	p.logger.Info("Batch complete",
		logging.Field{Key: logging.FieldRunID, Value: rep.RunID},
		logging.Field{Key: logging.FieldCount, Value: total},
		logging.Field{Key: logging.FieldRows, Value: len(rep.Rows)})

	return rep, nil
}
