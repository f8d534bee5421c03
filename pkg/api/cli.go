package api

import (
	"github.com/urfave/cli/v2"

	"github.com/railscout/railscout/pkg/cache"
	"github.com/railscout/railscout/pkg/config"
	"github.com/railscout/railscout/pkg/redis_client"
	"github.com/railscout/railscout/pkg/scraper"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: "",
						Usage: "listen target for the web server, overrides config",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "",
						Usage: "path to a railscout config file",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						return err
					}

					listen := cfg.API.Listen
					if c.String("listen") != "" {
						listen = c.String("listen")
					}

					searcher := scraper.NewSearcher(cfg.Endpoint)
					resultCache := cache.NewResultCache(cfg.Cache.TTL())

					return SetupServer(listen, searcher, resultCache)
				},
			},
		},
	}
}
