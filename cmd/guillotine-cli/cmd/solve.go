package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rectguillotine/solver/internal/checkpoint"
	"github.com/rectguillotine/solver/internal/config"
	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/ioformat"
	"github.com/rectguillotine/solver/internal/solution"
	"github.com/rectguillotine/solver/internal/solver"
)

var (
	solveItemsPath   string
	solveBinsPath    string
	solveDefectsPath string
	solveOutputPath  string
	solveFormat      string
	solveResume      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a packing instance and write the best placement found",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveItemsPath, "items", "", "item CSV file (required)")
	solveCmd.Flags().StringVar(&solveBinsPath, "bins", "", "bin CSV file (required)")
	solveCmd.Flags().StringVar(&solveDefectsPath, "defects", "", "defect CSV file (optional)")
	solveCmd.Flags().StringVarP(&solveOutputPath, "output", "o", "solution.json", "output file path")
	solveCmd.Flags().StringVar(&solveFormat, "format", "", `output format: "json" or "csv" (default: inferred from --output extension)`)
	solveCmd.Flags().BoolVar(&solveResume, "resume", false, "load and persist run state via the checkpoint store")
	solveCmd.MarkFlagRequired("items")
	solveCmd.MarkFlagRequired("bins")
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	inst, err := loadInstance(solveItemsPath, solveBinsPath, solveDefectsPath)
	if err != nil {
		return err
	}
	log.Info("loaded instance: %d item types, %d bins", inst.ItemTypeNumber(), inst.BinNumber())

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	params, err := cfg.Scheme.Parameters()
	if err != nil {
		return err
	}

	scheme := solver.NewBranchingScheme(inst, params)
	searcher := solver.NewSearcher(scheme)

	var store *checkpoint.Store
	if solveResume {
		store, err = checkpoint.Open()
		if err != nil {
			return err
		}
		defer store.Close()

		if prior, found, err := store.Load(inst); err != nil {
			return err
		} else if found {
			log.Info("resuming: prior run explored %d nodes, profit %d", prior.NodesExplored, prior.Solution.Profit)
		}
	}

	deadline := cfg.Search.Deadline
	if deadline <= 0 {
		deadline = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	guideIDs := cfg.Search.GuideIDs
	if len(guideIDs) == 0 {
		guideIDs = []int{0}
	}

	log.Info("searching with %d guide(s), deadline %s", len(guideIDs), deadline)
	var result solver.Result
	if len(guideIDs) == 1 {
		result = searcher.Run(ctx, guideIDs[0])
	} else {
		result = searcher.RunParallel(ctx, guideIDs)
	}

	if result.Best == nil {
		return fmt.Errorf("no solution found within %s", deadline)
	}
	log.Info("search explored %d nodes", searcher.NodesExplored())

	sol := solution.Convert(scheme, result.Best)
	if err := solution.Check(inst, sol); err != nil {
		return fmt.Errorf("converted solution failed validation: %w", err)
	}
	log.Info("solution: %d bins used, %d items placed, profit %d, waste %d, full=%v",
		sol.BinsUsed, sol.ItemsPlaced, sol.Profit, sol.Waste, sol.Full)

	if err := writeSolution(solveOutputPath, solveFormat, sol); err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(inst, checkpoint.Run{NodesExplored: searcher.NodesExplored(), Solution: sol}); err != nil {
			return err
		}
	}

	return nil
}

func loadInstance(itemsPath, binsPath, defectsPath string) (*instance.Instance, error) {
	itemsFile, err := os.Open(itemsPath)
	if err != nil {
		return nil, err
	}
	defer itemsFile.Close()
	items, err := ioformat.LoadItems(itemsFile)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}

	binsFile, err := os.Open(binsPath)
	if err != nil {
		return nil, err
	}
	defer binsFile.Close()
	bins, err := ioformat.LoadBins(binsFile)
	if err != nil {
		return nil, fmt.Errorf("loading bins: %w", err)
	}

	if defectsPath != "" {
		defectsFile, err := os.Open(defectsPath)
		if err != nil {
			return nil, err
		}
		defer defectsFile.Close()
		if err := ioformat.LoadDefects(defectsFile, bins); err != nil {
			return nil, fmt.Errorf("loading defects: %w", err)
		}
	}

	return instance.New(items, bins)
}

func writeSolution(path, format string, sol *solution.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if format == "" {
		if strings.HasSuffix(strings.ToLower(path), ".csv") {
			format = "csv"
		} else {
			format = "json"
		}
	}

	switch format {
	case "json":
		return ioformat.WriteJSON(f, sol)
	case "csv":
		return ioformat.WriteCSV(f, sol)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
