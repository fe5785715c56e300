package integration

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fjacquet/saldo-xlsx/internal/batch"
	"fjacquet/saldo-xlsx/internal/export"
	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/models"
	"fjacquet/saldo-xlsx/internal/saldoparser"
	"fjacquet/saldo-xlsx/internal/store"
)

const pageSeparator = "\n---PAGE---\n"

// pipelineParse routes each document through the real parser with a mock
// page extractor: the document bytes stand in for its page texts, split on
// pageSeparator, and a FAIL prefix simulates an unreadable PDF.
func pipelineParse(logger logging.Logger) batch.ParseFunc {
	return func(name string, data []byte) models.ExtractionResult {
		var extractor saldoparser.PageExtractor
		if bytes.HasPrefix(data, []byte("FAIL")) {
			extractor = saldoparser.NewMockPageExtractor(nil, errors.New("corrupt document"))
		} else {
			extractor = saldoparser.NewMockPageExtractor(strings.Split(string(data), pageSeparator), nil)
		}
		return saldoparser.ParseDocumentWithExtractor(name, data, extractor, logger)
	}
}

func TestPipeline_UploadToDownloads(t *testing.T) {
	logger := logging.NewMockLogger()

	var progressed []string
	processor := batch.NewProcessor(pipelineParse(logger), logger)
	processor.OnProgress = func(done, total int, name string) {
		progressed = append(progressed, name)
	}

	docs := []batch.Document{
		{
			Name: "setembro.pdf",
			Data: []byte("cabecalho do extrato\n" +
				"01/09/2025 123 SALDO DIA 0,00 C 15.043,90 C\n" +
				pageSeparator +
				"02/09/2025 124 SALDO DIA 1.200,50 D 9.876,00 C\n"),
		},
		{Name: "vazio.pdf", Data: []byte("pagina sem a linha esperada\n")},
		{Name: "quebrado.pdf", Data: []byte("FAIL")},
	}

	rep, err := processor.ProcessAll(docs)
	require.NoError(t, err)
	require.NotNil(t, rep)

	// Row shape: two balances, one not-found, one read error, upload order.
	require.Len(t, rep.Rows, 4)
	assert.Equal(t, models.ReportRow{File: "setembro.pdf", Date: "01/09/2025", Balance: "15043,90"}, rep.Rows[0])
	assert.Equal(t, models.ReportRow{File: "setembro.pdf", Date: "02/09/2025", Balance: "9876,00"}, rep.Rows[1])
	assert.Equal(t, models.ReportRow{File: "vazio.pdf", Date: models.SentinelDate, Balance: models.SentinelNotFound}, rep.Rows[2])
	assert.Equal(t, models.ReportRow{File: "quebrado.pdf", Date: models.SentinelDate, Balance: models.SentinelReadError}, rep.Rows[3])

	// Progress advanced once per file, failures included.
	assert.Equal(t, []string{"setembro.pdf", "vazio.pdf", "quebrado.pdf"}, progressed)

	// Partitions keep the sentinels distinguishable.
	require.Len(t, rep.Successes(), 2)
	require.Len(t, rep.Failures(), 2)
	assert.Equal(t, models.SentinelNotFound, rep.Failures()[0].Balance)
	assert.Equal(t, models.SentinelReadError, rep.Failures()[1].Balance)

	// Store and serve both download formats from the same report.
	reports := store.NewReportStore(logger)
	reports.Replace(rep)

	xlsxData, err := export.WriteReportToXLSX(reports.Current())
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(xlsxData))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, f.Close())
	}()

	assert.Equal(t, []string{models.SheetName}, f.GetSheetList())
	sheetRows, err := f.GetRows(models.SheetName)
	require.NoError(t, err)
	require.Len(t, sheetRows, 5)
	assert.Equal(t, []string{models.HeaderFile, models.HeaderDate, models.HeaderBalance}, sheetRows[0])
	assert.Equal(t, []string{"setembro.pdf", "01/09/2025", "15043,90"}, sheetRows[1])
	assert.Equal(t, []string{"quebrado.pdf", models.SentinelDate, models.SentinelReadError}, sheetRows[4])

	csvData, err := export.WriteReportToCSV(reports.Current())
	require.NoError(t, err)
	csvLines := strings.Split(strings.TrimRight(string(csvData), "\n"), "\n")
	require.Len(t, csvLines, 5)
	assert.Equal(t, "Arquivo,Data,Saldo do Dia", csvLines[0])
	assert.Contains(t, csvLines[3], models.SentinelNotFound)
	assert.Contains(t, csvLines[4], models.SentinelReadError)
}

func TestPipeline_MidBatchFailureDoesNotAbort(t *testing.T) {
	logger := logging.NewMockLogger()
	processor := batch.NewProcessor(pipelineParse(logger), logger)

	rep, err := processor.ProcessAll([]batch.Document{
		{Name: "antes.pdf", Data: []byte("03/09/25 77 SALDO DIA 1,00 C 2.500,00 C\n")},
		{Name: "falha.pdf", Data: []byte("FAIL")},
		{Name: "depois.pdf", Data: []byte("04/09/25 78 SALDO DIA 1,00 C 2.600,00 C\n")},
	})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 3)

	assert.Equal(t, "2500,00", rep.Rows[0].Balance)
	assert.Equal(t, models.SentinelReadError, rep.Rows[1].Balance)
	assert.Equal(t, "2600,00", rep.Rows[2].Balance, "documents after a failure still process")
}

func TestPipeline_RerunReplacesStoredReport(t *testing.T) {
	logger := logging.NewMockLogger()
	processor := batch.NewProcessor(pipelineParse(logger), logger)
	reports := store.NewReportStore(logger)

	first, err := processor.ProcessAll([]batch.Document{
		{Name: "velho.pdf", Data: []byte("05/09/25 1 SALDO DIA 1,00 C 10,00 C\n")},
	})
	require.NoError(t, err)
	reports.Replace(first)

	second, err := processor.ProcessAll([]batch.Document{
		{Name: "novo.pdf", Data: []byte("06/09/25 2 SALDO DIA 1,00 C 20,00 C\n")},
	})
	require.NoError(t, err)
	reports.Replace(second)

	current := reports.Current()
	require.NotNil(t, current)
	require.Len(t, current.Rows, 1)
	assert.Equal(t, "novo.pdf", current.Rows[0].File)
	assert.NotEqual(t, first.RunID, current.RunID)
}

func TestPipeline_ExtractionIsIdempotent(t *testing.T) {
	logger := logging.NewMockLogger()
	parse := pipelineParse(logger)

	data := []byte("07/09/25 9 SALDO DIA 500,00 D 1.234,56 C\noutras linhas\n")

	first := parse("extrato.pdf", data)
	second := parse("extrato.pdf", data)

	require.False(t, first.Failed())
	assert.Equal(t, first.Records, second.Records)
}
