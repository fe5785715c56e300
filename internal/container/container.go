// Package container provides dependency injection for the saldo-xlsx
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/saldo-xlsx/internal/batch"
	"fjacquet/saldo-xlsx/internal/config"
	"fjacquet/saldo-xlsx/internal/currencyutils"
	"fjacquet/saldo-xlsx/internal/export"
	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/saldoparser"
	"fjacquet/saldo-xlsx/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods. This prevents accidental modification
// of dependencies after initialization.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	parser    *saldoparser.Parser
	processor *batch.Processor
	reports   *store.ReportStore
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create the shared logrus logger first and fan it out to the packages
	// that keep a package-level logger.
	logrusLogger := config.ConfigureLoggingFromConfig(cfg)
	saldoparser.SetLogger(logrusLogger)
	currencyutils.SetLogger(logrusLogger)
	export.SetLogger(logrusLogger)

	export.SetDelimiter([]rune(cfg.Report.CSVDelimiter)[0])

	logger := logging.NewLogrusAdapterFromLogger(logrusLogger)

	// Parser with the real page extractor
	parser := saldoparser.NewParser(logger, nil)

	processor := batch.NewProcessor(parser.ParseDocument, logger)
	processor.OnProgress = func(done, total int, name string) {
		logger.Info("Processed file",
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldIndex, Value: done},
			logging.Field{Key: logging.FieldTotal, Value: total})
	}

	reports := store.NewReportStore(logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldAddr, Value: cfg.ListenAddr()})

	return &Container{
		logger:    logger,
		config:    cfg,
		parser:    parser,
		processor: processor,
		reports:   reports,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the container's document parser instance.
func (c *Container) GetParser() *saldoparser.Parser {
	return c.parser
}

// GetProcessor returns the container's batch processor instance.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetReportStore returns the container's report store instance.
func (c *Container) GetReportStore() *store.ReportStore {
	return c.reports
}

// Close performs cleanup of container resources.
// This method should be called when the container is no longer needed.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	// This method is provided for future extensibility
	c.logger.Info("Container closed")
	return nil
}
