package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railscout/railscout/pkg/api"
	"github.com/railscout/railscout/pkg/consumer"
	"github.com/railscout/railscout/pkg/scraper"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILSCOUT_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILSCOUT_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railscout",
		Description: "Single binary of truth for railscout - runs all the services",

		Commands: []*cli.Command{
			scraper.RegisterCLI(),
			consumer.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
