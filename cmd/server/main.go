package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/employwise/internal/buildinfo"
	"github.com/dmitrijs2005/employwise/internal/server"
	"github.com/dmitrijs2005/employwise/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
