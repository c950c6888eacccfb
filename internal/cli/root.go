package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kyuyo",
	Short: "Extract payslip deductions and record them in a personal ledger",
	Long: `kyuyo reads the monthly payslip PDF, extracts the deduction line items
listed in the item dictionary, checks them against the payslip's stated
deduction sum and records them in the configured ledger backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug output")
}
