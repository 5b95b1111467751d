package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/taskforge/core/internal/adapters/observers"
	"github.com/taskforge/core/internal/application/filters"
	"github.com/taskforge/core/internal/application/store"
	"github.com/taskforge/core/internal/domain/entities"
	"github.com/taskforge/core/internal/infrastructure/config"
	"github.com/taskforge/core/internal/infrastructure/logger"
)

// NewDemoCommand creates the demo command. The demo is a throwaway driver:
// it only calls the store's public API and prints what comes back.
func NewDemoCommand() *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted tour of the task store",
		Long:  "Create, update, delete, undo and redo tasks against an in-memory store, with events logged as they happen",
		Run: func(cmd *cobra.Command, args []string) {
			seedPath, _ := cmd.Flags().GetString("seed")
			runDemo(seedPath)
		},
	}

	demoCmd.Flags().String("seed", "", "YAML file with tasks to pre-load")
	return demoCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print TaskForge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("TaskForge Core v1.0.0")
		},
	}
}

func runDemo(seedPath string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	s := store.Default()
	s.Subscribe(observers.NewLoggingObserver(appLogger))

	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		metrics, err := observers.NewMetricsObserver(registry)
		if err != nil {
			appLogger.Fatal("Failed to register metrics", "error", err)
		}
		s.Subscribe(metrics)
	}

	if seedPath != "" {
		count, err := seedTasks(s, seedPath)
		if err != nil {
			appLogger.Fatal("Failed to seed tasks", "error", err)
		}
		appLogger.Info("Seeded tasks from file", "file", seedPath, "count", count)
	}

	dueAt := time.Now().Add(48 * time.Hour)

	report, err := s.RunCreate("basic", entities.TaskFields{Title: "Write status report"})
	if err != nil {
		appLogger.Fatal("Create failed", "error", err)
	}

	_, err = s.RunCreate("deadline", entities.TaskFields{
		Title:    "File tax return",
		Priority: entities.PriorityHigh,
		DueAt:    &dueAt,
	})
	if err != nil {
		appLogger.Fatal("Create failed", "error", err)
	}

	workout, err := s.RunCreate("recurring", entities.TaskFields{
		Title:            "Morning workout",
		Interval:         entities.IntervalDaily,
		TotalOccurrences: 3,
	})
	if err != nil {
		appLogger.Fatal("Create failed", "error", err)
	}

	groceries, err := s.RunCreate("checklist", entities.TaskFields{Title: "Grocery run"})
	if err != nil {
		appLogger.Fatal("Create failed", "error", err)
	}

	// Exercise variant behavior through the store.
	s.AddSubtask(groceries.Base().ID, "Milk", "")
	sub, _ := s.AddSubtask(groceries.Base().ID, "Bread", "whole grain")
	s.CompleteSubtask(groceries.Base().ID, sub.ID)
	s.Complete(workout.Base().ID)

	// A reversible update, then roll it back and forward again.
	high := entities.PriorityHigh
	s.RunUpdate(report.Base().ID, entities.TaskChanges{Priority: &high})
	s.Undo()
	s.Redo()

	// Delete and resurrect.
	s.RunDelete(report.Base().ID)
	s.Undo()

	fmt.Println("\nOpen high-priority tasks:")
	openHigh := s.ListTasks(filters.ByCompleted(false), filters.ByPriority(entities.PriorityHigh))
	for _, task := range openHigh {
		fmt.Println("  " + task.Summary())
	}

	fmt.Println("\nAll tasks:")
	for _, task := range s.ListTasks() {
		fmt.Println("  " + task.Summary())
	}

	stats := s.Statistics()
	fmt.Printf("\nTotal: %d  Completed: %d  Pending: %d\n", stats.Total, stats.Completed, stats.Pending)
	for kind, n := range stats.ByKind {
		fmt.Printf("  %s: %d\n", kind, n)
	}
}
