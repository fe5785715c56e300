// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/saldo-xlsx/internal/config"
	"fjacquet/saldo-xlsx/internal/container"
	"fjacquet/saldo-xlsx/internal/currencyutils"
	"fjacquet/saldo-xlsx/internal/export"
	"fjacquet/saldo-xlsx/internal/saldoparser"
	"fjacquet/saldo-xlsx/internal/web"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// listenAddr overrides the configured host:port when set via --listen
	listenAddr string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "saldo-xlsx",
		Short: "A web service that extracts daily balances from bank statement PDFs into a spreadsheet.",
		Long: `saldo-xlsx serves a small web UI where bank statement PDFs ("extrato razão")
are uploaded, every SALDO DIA line is extracted as a (date, closing balance)
pair, and the consolidated report is downloadable as XLSX or CSV.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for the packages that keep one
			saldoparser.SetLogger(Log)
			currencyutils.SetLogger(Log)
			export.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				export.SetDelimiter([]rune(delim)[0])
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}

			c, err := container.NewContainer(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := c.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}()

			addr := cfg.ListenAddr()
			if listenAddr != "" {
				addr = listenAddr
			}

			return web.NewServer(c).Run(addr)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (host:port), overrides configuration")
}
