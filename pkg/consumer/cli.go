package consumer

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/railscout/railscout/pkg/cache"
	"github.com/railscout/railscout/pkg/config"
	"github.com/railscout/railscout/pkg/redis_client"
	"github.com/railscout/railscout/pkg/scraper"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "consumer",
		Usage: "Process queued search requests in the background",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run search request consumers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "",
						Usage: "path to a railscout config file",
					},
					&cli.StringFlag{
						Name:  "stats-listen",
						Value: ":8081",
						Usage: "listen target for the consumer stats server",
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

					searcher := scraper.NewSearcher(cfg.Endpoint)
					resultCache := cache.NewResultCache(cfg.Cache.TTL())

					if err := StartConsumers(searcher, resultCache); err != nil {
						return err
					}

					StartStatsServer(c.String("stats-listen"))

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					<-signals

					return nil
				},
			},
		},
	}
}
