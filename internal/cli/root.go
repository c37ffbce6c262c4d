// Package cli builds the bigly command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is the released version of bigly
const Version = "0.0.1"

const logo = `    ____  ______ _     __ __
   / __ )/  _/ /|   / // /
  / __  |/ // /_|  / // /_
 / /_/ // // __/ / /__  __/
/_____/___/_/   /_/  /_/   

    "BIGLY!" 

A CLI tool that greps all files under the current directory`

// ConfigMerger merges an optional user config file into the running configuration
type ConfigMerger interface {
	MergeConfig(path string) error
}

// Runner executes the operations behind each command
type Runner interface {
	Search(term, target string) error
	Hazard() error
	Config() error
	SimulateError() error
}

// NewRootCommand creates the root command with its subcommands attached
func NewRootCommand(merger ConfigMerger, runner Runner) *cobra.Command {
	var (
		configPath string
		targetFile string
	)

	rootCmd := &cobra.Command{
		Use:     "bigly [search-term]",
		Short:   "Grep all files under the current directory",
		Long:    logo,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return merger.MergeConfig(configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runner.Search(args[0], targetFile)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Set a custom config file")
	rootCmd.Flags().StringVar(&targetFile, "file", "", "Target a specific file")

	rootCmd.AddCommand(
		newHazardCommand(runner),
		newErrorCommand(runner),
		newConfigCommand(runner),
	)

	return rootCmd
}
