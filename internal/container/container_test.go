package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/saldo-xlsx/internal/batch"
	"fjacquet/saldo-xlsx/internal/config"
	"fjacquet/saldo-xlsx/internal/export"
	"fjacquet/saldo-xlsx/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Server.Host = ""
	cfg.Server.Port = 8080
	cfg.Server.MaxUploadMB = 32
	cfg.Report.CSVDelimiter = ","
	return cfg
}

func TestNewContainer_NilConfig(t *testing.T) {
	c, err := NewContainer(nil)
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
}

func TestNewContainer_WiresAllDependencies(t *testing.T) {
	c, err := NewContainer(testConfig())
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetConfig())
	assert.NotNil(t, c.GetParser())
	assert.NotNil(t, c.GetProcessor())
	assert.NotNil(t, c.GetReportStore())

	assert.NoError(t, c.Close())
}

func TestNewContainer_AppliesCSVDelimiter(t *testing.T) {
	t.Cleanup(func() { export.SetDelimiter(',') })

	cfg := testConfig()
	cfg.Report.CSVDelimiter = ";"

	_, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Equal(t, ';', export.Delimiter)
}

// The wired processor runs end to end: an upload that is not a real PDF
// still yields its read-error row instead of failing the batch.
func TestContainer_ProcessorHandlesBadUpload(t *testing.T) {
	c, err := NewContainer(testConfig())
	require.NoError(t, err)

	rep, err := c.GetProcessor().ProcessAll([]batch.Document{
		{Name: "nao_e_pdf.pdf", Data: []byte("plain text, not a PDF")},
	})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, models.SentinelReadError, rep.Rows[0].Balance)
	assert.Equal(t, "nao_e_pdf.pdf", rep.Rows[0].File)
}
