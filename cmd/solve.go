package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mkce-it/timetabler/internal/logger"
	"github.com/mkce-it/timetabler/internal/model"
)

// Exit codes mirror the outcome so scripts can tell infeasible from timeout.
const (
	exitInfeasible = 20
	exitTimeout    = 21
)

var (
	solveFile    string
	solveOut     string
	solveSection string
	solveCourses []uint
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a timetable from a JSON snapshot file",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "path to the input snapshot (required)")
	solveCmd.Flags().StringVarP(&solveOut, "out", "o", "", "write the solved grid as JSON to this file instead of printing")
	solveCmd.Flags().StringVar(&solveSection, "section", "", "section name, overrides the one in the input file")
	solveCmd.Flags().UintSliceVar(&solveCourses, "courses", nil, "course ids to schedule, overrides the input file scope")
	_ = solveCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	input, err := model.InputFromJson(solveFile)
	if err != nil {
		return fmt.Errorf("cannot parse input file: %w", err)
	}
	snapshot, err := input.Snapshot()
	if err != nil {
		return err
	}

	scope := input.Scope()
	if solveSection != "" {
		scope.Section = solveSection
	}
	if len(solveCourses) > 0 {
		scope.CourseIds = lo.Map(solveCourses, func(id uint, _ int) uint64 { return uint64(id) })
	}

	log := logger.New("solve-command")
	timetabler := model.NewTimetabler(model.Config{
		NodeBudget: cfg.Engine.NodeBudget,
		Candidates: cfg.Engine.Candidates,
		Logger:     log,
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Engine.TimeoutSeconds)*time.Second)
	defer cancel()

	result, err := timetabler.Build(ctx, snapshot, scope)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case model.OutcomeInfeasible:
		fmt.Println(result.Message)
		os.Exit(exitInfeasible)
	case model.OutcomeTimeout:
		fmt.Println(result.Message)
		os.Exit(exitTimeout)
	}

	if solveOut == "" {
		fmt.Print(result.Grid.Render())
		return nil
	}

	gridJson, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}
	if err := os.WriteFile(solveOut, gridJson, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}
