package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/fletes/internal/buildinfo"
	"github.com/dmitrijs2005/fletes/internal/client/cli"
	"github.com/dmitrijs2005/fletes/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v (set -a, FLETES_API_BASE_URL or api_base_url)", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
