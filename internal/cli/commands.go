package cli

import (
	"github.com/spf13/cobra"
)

func newHazardCommand(runner Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "hazard",
		Short: "Generate a hazardous occurrence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Hazard()
		},
	}
}

func newErrorCommand(runner Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "error",
		Short: "Simulate an error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.SimulateError()
		},
	}
}

func newConfigCommand(runner Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show Configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Config()
		},
	}
}
