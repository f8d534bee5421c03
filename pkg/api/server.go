package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railscout/railscout/pkg/api/routes"
	"github.com/railscout/railscout/pkg/cache"
	"github.com/railscout/railscout/pkg/scraper"
)

func SetupServer(listen string, searcher *scraper.Searcher, resultCache *cache.ResultCache) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.JourneysRouter(group.Group("/journeys"), searcher, resultCache)

	return webApp.Listen(listen)
}
