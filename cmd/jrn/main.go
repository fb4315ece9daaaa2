package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/jrn/internal/cli"
	"github.com/dmitrijs2005/jrn/internal/config"
	"github.com/dmitrijs2005/jrn/internal/encryptor"
	"github.com/dmitrijs2005/jrn/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app := cli.NewApp(cfg, encryptor.Secure{}, log)

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}
