package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskforge/core/cmd/taskforge/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskforge",
		Short: "TaskForge task-tracking kernel",
		Long:  `TaskForge is an in-memory task-tracking kernel with reversible commands, linear undo/redo and observable mutations.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewDemoCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
