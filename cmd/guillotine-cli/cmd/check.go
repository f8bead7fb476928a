package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rectguillotine/solver/internal/ioformat"
	"github.com/rectguillotine/solver/internal/solution"
)

var (
	checkItemsPath    string
	checkBinsPath     string
	checkDefectsPath  string
	checkSolutionPath string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-validate a previously written solution file against its instance",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkItemsPath, "items", "", "item CSV file (required)")
	checkCmd.Flags().StringVar(&checkBinsPath, "bins", "", "bin CSV file (required)")
	checkCmd.Flags().StringVar(&checkDefectsPath, "defects", "", "defect CSV file (optional)")
	checkCmd.Flags().StringVar(&checkSolutionPath, "solution", "", "solution JSON file to validate (required)")
	checkCmd.MarkFlagRequired("items")
	checkCmd.MarkFlagRequired("bins")
	checkCmd.MarkFlagRequired("solution")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	inst, err := loadInstance(checkItemsPath, checkBinsPath, checkDefectsPath)
	if err != nil {
		return err
	}

	solFile, err := os.Open(checkSolutionPath)
	if err != nil {
		return err
	}
	defer solFile.Close()

	sol, err := ioformat.ReadJSON(solFile)
	if err != nil {
		return fmt.Errorf("reading solution: %w", err)
	}

	if err := solution.Check(inst, sol); err != nil {
		return fmt.Errorf("solution failed validation: %w", err)
	}

	log.Info("solution valid: %d bins used, %d items placed, profit %d", sol.BinsUsed, sol.ItemsPlaced, sol.Profit)
	fmt.Println("OK")
	return nil
}
