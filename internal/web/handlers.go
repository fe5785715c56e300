package web

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"fjacquet/saldo-xlsx/internal/batch"
	"fjacquet/saldo-xlsx/internal/config"
	"fjacquet/saldo-xlsx/internal/container"
	"fjacquet/saldo-xlsx/internal/export"
	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/models"
	"fjacquet/saldo-xlsx/internal/store"
	"fjacquet/saldo-xlsx/internal/validation"
)

// User-facing messages, pt-BR like the statements themselves.
const (
	msgNoFiles   = "Por favor, faça upload de pelo menos um arquivo PDF."
	msgProcessed = "Processamento concluído! Confira os resultados abaixo."

	flashSuccess = "success"
	flashWarning = "warning"
)

type handler struct {
	processor *batch.Processor
	reports   *store.ReportStore
	config    *config.Config
	logger    logging.Logger
}

func newHandler(c *container.Container) *handler {
	return &handler{
		processor: c.GetProcessor(),
		reports:   c.GetReportStore(),
		config:    c.GetConfig(),
		logger:    c.GetLogger(),
	}
}

func (h *handler) renderPage(c *gin.Context, code int, data pageData) {
	c.HTML(code, "index", data)
}

// index serves the upload page with the current report, if one exists.
func (h *handler) index(c *gin.Context) {
	h.renderPage(c, http.StatusOK, pageData{Report: h.reports.Current()})
}

// process handles the upload form. Zero files is a warned state that leaves
// the stored report untouched; otherwise the batch runs to completion and the
// resulting report replaces the stored one.
func (h *handler) process(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.logger.WithError(err).Warn("Failed to parse multipart form")
		h.renderPage(c, http.StatusBadRequest, pageData{
			Flash:     msgNoFiles,
			FlashKind: flashWarning,
			Report:    h.reports.Current(),
		})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		h.logger.Warn("Processing triggered without files")
		h.renderPage(c, http.StatusBadRequest, pageData{
			Flash:     msgNoFiles,
			FlashKind: flashWarning,
			Report:    h.reports.Current(),
		})
		return
	}

	maxBytes := h.config.MaxUploadBytes()
	docs := make([]batch.Document, 0, len(files))
	for _, fh := range files {
		docs = append(docs, h.readUpload(fh, maxBytes))
	}

	rep, err := h.processor.ProcessAll(docs)
	if err != nil {
		// Only the empty batch returns an error and that is handled above,
		// but never let a future error path replace the stored report.
		h.logger.WithError(err).Error("Processing run failed")
		h.renderPage(c, http.StatusBadRequest, pageData{
			Flash:     msgNoFiles,
			FlashKind: flashWarning,
			Report:    h.reports.Current(),
		})
		return
	}

	h.reports.Replace(rep)
	h.renderPage(c, http.StatusOK, pageData{
		Flash:     msgProcessed,
		FlashKind: flashSuccess,
		Report:    rep,
		Processed: len(docs),
	})
}

// readUpload turns one multipart file into a batch document. Validation or
// read failures are attached to the document instead of failing the request,
// so the batch still produces a row for the file.
func (h *handler) readUpload(fh *multipart.FileHeader, maxBytes int64) batch.Document {
	if err := validation.ValidateUpload(fh.Filename, fh.Size, maxBytes); err != nil {
		h.logger.WithError(err).Warn("Rejected upload",
			logging.Field{Key: logging.FieldFile, Value: fh.Filename},
			logging.Field{Key: logging.FieldSize, Value: fh.Size})
		return batch.Document{Name: fh.Filename, Err: err}
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open upload",
			logging.Field{Key: logging.FieldFile, Value: fh.Filename})
		return batch.Document{Name: fh.Filename, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.logger.WithError(err).Warn("Failed to close upload",
				logging.Field{Key: logging.FieldFile, Value: fh.Filename})
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read upload",
			logging.Field{Key: logging.FieldFile, Value: fh.Filename})
		return batch.Document{Name: fh.Filename, Err: err}
	}

	return batch.Document{Name: fh.Filename, Data: data}
}

// downloadXLSX serves the current report as the Excel workbook.
func (h *handler) downloadXLSX(c *gin.Context) {
	rep := h.reports.Current()
	if rep == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "nenhum relatório disponível"})
		return
	}

	data, err := export.WriteReportToXLSX(rep)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render XLSX download")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar a planilha"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", models.XLSXFileName))
	c.Data(http.StatusOK, models.MIMEXLSX, data)
}

// downloadCSV serves the current report as CSV.
func (h *handler) downloadCSV(c *gin.Context) {
	rep := h.reports.Current()
	if rep == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "nenhum relatório disponível"})
		return
	}

	data, err := export.WriteReportToCSV(rep)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render CSV download")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar o arquivo"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", models.CSVFileName))
	c.Data(http.StatusOK, models.MIMECSV, data)
}

// health reports service liveness and the last run, when one exists.
func (h *handler) health(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": "saldo-xlsx",
	}
	if rep := h.reports.Current(); rep != nil {
		status["last_run_id"] = rep.RunID
		status["rows"] = len(rep.Rows)
	}
	c.JSON(http.StatusOK, status)
}
