package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kyuyo/internal/core"
)

var previewCmd = &cobra.Command{
	Use:   "preview <year> <month> [<year> <month>...]",
	Short: "Extract and display one or more periods without uploading",
	Long: `preview runs the extraction pipeline for each year/month pair and prints
the validated record tables. Periods are independent, so they are extracted
concurrently; nothing is written to any ledger.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("expected year/month pairs, got %d arguments", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		loadEnvFile()
		logger := setupLogger(verbose)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		kind := core.KindNormal
		if bonusPreview {
			kind = core.KindBonus
		}

		type period struct{ year, month int }
		periods := make([]period, 0, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			year, month, err := parsePeriod(args[i], args[i+1])
			if err != nil {
				return err
			}
			periods = append(periods, period{year, month})
		}

		salaries := make([]*core.Salary, len(periods))
		var g errgroup.Group
		for i, p := range periods {
			i, p := i, p // per-iteration copies; required under the go 1.21 language version
			g.Go(func() error {
				s, err := core.NewSalary(p.year, p.month, kind, newReader(cfg, p.year, p.month, kind, logger))
				if err != nil {
					return describe(fmt.Errorf("%d/%02d: %w", p.year, p.month, err))
				}
				salaries[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, s := range salaries {
			fmt.Fprintf(out, "%d/%02d (%s)\n", periods[i].year, periods[i].month, kind.Label())
			printItems(out, s)
		}
		logger.Info("preview finished", "periods", len(periods))
		return nil
	},
}

var bonusPreview bool

func init() {
	previewCmd.Flags().BoolVarP(&bonusPreview, "bonus", "b", false, "treat the periods as bonus payslips")
	rootCmd.AddCommand(previewCmd)
}
