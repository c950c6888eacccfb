package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kyuyo/internal/core"
	"kyuyo/internal/dictionary"
	"kyuyo/internal/log"
	"kyuyo/internal/payslip"
)

var bonus bool

var uploadCmd = &cobra.Command{
	Use:   "upload <year> <month>",
	Short: "Extract one period's deductions and record them at the confirmed payday",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loadEnvFile()
		logger := setupLogger(verbose)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		year, month, err := parsePeriod(args[0], args[1])
		if err != nil {
			return err
		}
		kind := core.KindNormal
		if bonus {
			kind = core.KindBonus
		}
		logger.Info("registering deduction records",
			log.FieldYear, year, log.FieldMonth, month, log.FieldKind, kind.Label())

		salary, err := core.NewSalary(year, month, kind, newReader(cfg, year, month, kind, logger))
		if err != nil {
			return describe(err)
		}

		out := cmd.OutOrStdout()
		printItems(out, salary)

		ok, err := confirmPayday(cmd.InOrStdin(), out, salary, cfg.DefaultPayday)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Upload cancelled.")
			return nil
		}

		ctx := cmd.Context()
		writer, err := newRecordWriter(ctx, cfg, logger)
		if err != nil {
			return err
		}
		payday, err := salary.Payday()
		if err != nil {
			return err
		}
		for _, it := range salary.Deductions(payslip.DeductionSumLabel) {
			ref, err := writer.Append(ctx, payday, it)
			if err != nil {
				return fmt.Errorf("record %s: %w", it.Name, err)
			}
			logger.Info("recorded deduction", log.FieldItemName, it.Name,
				log.FieldAmount, it.Amount, log.FieldRowRef, ref)
		}
		logger.Info("upload finished", log.FieldYear, year, log.FieldMonth, month)
		return nil
	},
}

func init() {
	uploadCmd.Flags().BoolVarP(&bonus, "bonus", "b", false, "treat the period as a bonus payslip")
	rootCmd.AddCommand(uploadCmd)
}

// parsePeriod parses the year and month arguments.
func parsePeriod(yearArg, monthArg string) (int, int, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", yearArg)
	}
	month, err := strconv.Atoi(monthArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", monthArg)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	return year, month, nil
}

// printItems shows the record table the user is about to confirm.
func printItems(out io.Writer, s *core.Salary) {
	fmt.Fprintln(out, "--- deduction records to register ---")
	for _, it := range s.Items {
		fmt.Fprintln(out, it)
	}
	fmt.Fprintln(out, "-------------------------------------")
}

// confirmPayday prompts for the payday day-of-month (empty input takes the
// default) and asks for a final Y/n confirmation. Returns false when the
// user cancels.
func confirmPayday(in io.Reader, out io.Writer, s *core.Salary, defaultDay int) (bool, error) {
	r := bufio.NewReader(in)

	fmt.Fprintf(out, "Enter the payday for %d/%02d (%d): ", s.Year, s.Month, defaultDay)
	line, _ := r.ReadString('\n')
	day := strings.TrimSpace(line)
	if day == "" {
		day = strconv.Itoa(defaultDay)
	}
	if !s.SetPayday(day) {
		return false, fmt.Errorf("day %q does not exist in %d/%02d", day, s.Year, s.Month)
	}

	payday, err := s.Payday()
	if err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Register %s as the payday? (Y/n): ", payday)
	line, _ = r.ReadString('\n')
	switch strings.TrimSpace(line) {
	case "", "Y", "y":
		return true, nil
	default:
		return false, nil
	}
}

// describe adds a user-actionable hint to the pipeline's error taxonomy.
func describe(err error) error {
	var le *dictionary.LoadError
	var re *payslip.ReconciliationError
	switch {
	case errors.Is(err, payslip.ErrDocumentNotFound):
		return fmt.Errorf("%w — check the year/month or place the PDF in the salary directory", err)
	case errors.As(err, &le):
		return fmt.Errorf("%w — fix the item dictionary before retrying", err)
	case errors.As(err, &re):
		return fmt.Errorf("%w — an item is missing from the dictionary or the payslip layout changed", err)
	case errors.Is(err, payslip.ErrTotalMissing):
		return fmt.Errorf("%w — is this PDF really a payslip?", err)
	default:
		return err
	}
}
