package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/urfave/cli/v2"

	"github.com/railscout/railscout/pkg/bahn"
	"github.com/railscout/railscout/pkg/config"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "scraper",
		Usage: "Extract journeys from the booking interface",
		Subcommands: []*cli.Command{
			{
				Name:  "search",
				Usage: "search journeys between two stations and print them as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin station name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination station name",
						Required: true,
					},
					&cli.TimestampFlag{
						Name:   "when",
						Usage:  "departure time, RFC3339",
						Layout: time.RFC3339,
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

					when := time.Now()
					if c.Timestamp("when") != nil {
						when = *c.Timestamp("when")
					}

					searcher := NewSearcher(cfg.Endpoint)
					results, err := searcher.Search(c.Context, SearchRequest{
						From: c.String("from"),
						To:   c.String("to"),
						When: when,
					})
					if err != nil {
						return err
					}

					return printResults(results)
				},
			},
			{
				Name:  "parse",
				Usage: "parse a saved result page and print the journeys as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to a saved result page",
						Required: true,
					},
					&cli.TimestampFlag{
						Name:   "reference",
						Usage:  "anchor departure time for clock resolution, RFC3339",
						Layout: time.RFC3339,
					},
					&cli.BoolFlag{
						Name:  "return",
						Usage: "treat the page as return journey results",
					},
				},
				Action: func(c *cli.Context) error {
					file, err := os.Open(c.String("file"))
					if err != nil {
						return err
					}
					defer file.Close()

					doc, err := goquery.NewDocumentFromReader(file)
					if err != nil {
						return err
					}

					reference := time.Now()
					if c.Timestamp("reference") != nil {
						reference = *c.Timestamp("reference")
					}

					anchor := bahn.ReferenceJourney(reference)
					isReturn := c.Bool("return")

					outbound, returning := anchor, (*bahn.Journey)(nil)
					if isReturn {
						outbound, returning = nil, anchor
					}

					return printResults(ParsePage(doc, outbound, returning, isReturn))
				},
			},
		},
	}
}

func printResults(results []Result) error {
	resultsJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(resultsJSON))

	return nil
}
