package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/computerscienceiscool/bigly/internal/app"
	"github.com/computerscienceiscool/bigly/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	application, err := app.Bootstrap(app.Options{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Fs:            afero.NewOsFs(),
		Root:          ".",
		DefaultConfig: config.DefaultConfig,
		Seed:          time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}

	return application.Run(args)
}
