package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkce-it/timetabler/internal/api"
	"github.com/mkce-it/timetabler/internal/logger"
	"github.com/mkce-it/timetabler/internal/metrics"
	"github.com/mkce-it/timetabler/internal/model"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timetable generation API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("api-server")

	sink, err := metrics.NewPromSink(nil)
	if err != nil {
		return fmt.Errorf("prometheus sink: %w", err)
	}

	timetabler := model.NewTimetabler(model.Config{
		NodeBudget: cfg.Engine.NodeBudget,
		Candidates: cfg.Engine.Candidates,
		Logger:     logger.New("timetabler"),
		Metrics:    sink,
	})

	go func() {
		if err := metrics.StartPromServer(ctx, cfg.Server.MetricsAddr); err != nil {
			log.Errorf("metrics server: %v", err)
		}
	}()

	server := api.NewServer(timetabler, time.Duration(cfg.Engine.TimeoutSeconds)*time.Second, log)
	log.Infof("serving timetable API on %v", cfg.Server.Addr)
	return server.Run(ctx, cfg.Server.Addr)
}
