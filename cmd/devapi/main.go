package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/fletes/internal/buildinfo"
	"github.com/dmitrijs2005/fletes/internal/devapi"
	"github.com/dmitrijs2005/fletes/internal/devapi/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := devapi.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
