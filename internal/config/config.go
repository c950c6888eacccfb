// Package config loads process configuration from the environment. The
// value is constructed once in cmd and passed by reference into every
// component that needs it; nothing reads it as ambient global state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendSheets = "sheets"
)

type Config struct {
	// Userdata layout
	UserdataDir string // holds items.yml and the salaryData directory
	ItemsFile   string
	SalaryDir   string

	// Payslip PDF
	PdfPassword    string
	EmployeeNumber string

	// Upload
	DefaultPayday int    // day-of-month suggested at the confirmation prompt
	LedgerBackend string // memory | sheets
	SpreadsheetID string
	SheetName     string
}

func Load() *Config {
	userdata := getEnv("KYUYO_USERDATA_DIR", "userdata")
	cfg := &Config{
		UserdataDir: userdata,
		ItemsFile:   getEnv("KYUYO_ITEMS_FILE", filepath.Join(userdata, "items.yml")),
		SalaryDir:   getEnv("KYUYO_SALARY_DIR", filepath.Join(userdata, "salaryData")),

		PdfPassword:    getEnv("KYUYO_PDF_PASSWORD", ""),
		EmployeeNumber: getEnv("KYUYO_EMPLOYEE_NUMBER", ""),

		DefaultPayday: getEnvInt("KYUYO_DEFAULT_PAYDAY", 25),
		LedgerBackend: getEnv("KYUYO_LEDGER_BACKEND", BackendMemory),
		SpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		SheetName:     getEnv("GOOGLE_SHEET_NAME", "Deductions"),
	}
	return cfg
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.EmployeeNumber) == "" {
		errs = append(errs, "employee number is required (set KYUYO_EMPLOYEE_NUMBER)")
	}
	if c.DefaultPayday < 1 || c.DefaultPayday > 31 {
		errs = append(errs, fmt.Sprintf("invalid default payday %d: must be between 1 and 31", c.DefaultPayday))
	}
	switch c.LedgerBackend {
	case BackendMemory:
	case BackendSheets:
		if c.SpreadsheetID == "" {
			errs = append(errs, "Google Spreadsheet ID is required when using the sheets backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid ledger backend %q: must be one of [%s %s]", c.LedgerBackend, BackendMemory, BackendSheets))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
