package app

import (
	"github.com/spf13/cobra"
)

// App represents the main application
type App struct {
	root *cobra.Command
}

// Run executes the command line given in args (without the program name)
func (a *App) Run(args []string) error {
	a.root.SetArgs(args)
	return a.root.Execute()
}
