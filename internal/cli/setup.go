// Package cli wires the extraction pipeline, config and ledger backends
// into the kyuyo command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"kyuyo/internal/config"
	"kyuyo/internal/core"
	"kyuyo/internal/ledger"
	"kyuyo/internal/ledger/memory"
	"kyuyo/internal/ledger/sheets"
	"kyuyo/internal/log"
	"kyuyo/internal/payslip"
)

// loadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func loadEnvFile() {
	_ = godotenv.Load()
}

func setupLogger(verbose bool) *log.Logger {
	cfg := log.DefaultConfig()
	if verbose {
		cfg.Level = slog.LevelDebug
	}
	return log.New(cfg)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newReader builds the payslip reader for one period from the loaded
// configuration.
func newReader(cfg *config.Config, year, month int, kind core.Kind, logger *log.Logger) *payslip.Reader {
	return &payslip.Reader{
		Year:       year,
		Month:      month,
		Kind:       kind,
		EmployeeNo: cfg.EmployeeNumber,
		Password:   cfg.PdfPassword,
		ItemsFile:  cfg.ItemsFile,
		SalaryDir:  cfg.SalaryDir,
		Logger:     logger.WithComponent(log.ComponentPayslip),
	}
}

// newRecordWriter selects the ledger backend.
func newRecordWriter(ctx context.Context, cfg *config.Config, logger *log.Logger) (ledger.RecordWriter, error) {
	switch cfg.LedgerBackend {
	case config.BackendSheets:
		cli, err := sheets.New(ctx, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets backend: %w", err)
		}
		logger.Info("initialized Google Sheets ledger", log.FieldBackend, cfg.LedgerBackend)
		return cli, nil
	default:
		logger.Info("initialized in-memory ledger (records are printed, not persisted)",
			log.FieldBackend, cfg.LedgerBackend)
		return memory.New(), nil
	}
}
