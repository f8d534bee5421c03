package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"

	"github.com/railscout/railscout/pkg/cache"
	"github.com/railscout/railscout/pkg/scraper"
)

func JourneysRouter(router fiber.Router, searcher *scraper.Searcher, resultCache *cache.ResultCache) {
	router.Get("/search", func(c *fiber.Ctx) error {
		return getJourneySearch(c, searcher, resultCache)
	})
}

func getJourneySearch(c *fiber.Ctx, searcher *scraper.Searcher, resultCache *cache.ResultCache) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "from and to station names are required",
		})
	}

	when, err := queryTime(c, "when", time.Now())
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "when must be RFC3339",
		})
	}

	request := scraper.SearchRequest{
		From: from,
		To:   to,
		When: when,
	}

	if c.Query("returnWhen") != "" {
		returnWhen, err := queryTime(c, "returnWhen", time.Time{})
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "returnWhen must be RFC3339",
			})
		}
		request.ReturnWhen = &returnWhen
	}

	results, cached := resultCache.Get(c.Context(), request.CacheKey())
	if !cached {
		results, err = searcher.Search(c.Context(), request)
		if err != nil {
			log.Error().Err(err).Str("from", from).Str("to", to).Msg("Journey search failed")

			c.SendStatus(fiber.StatusBadGateway)
			return c.JSON(fiber.Map{
				"error": "journey search failed",
			})
		}

		resultCache.Set(c.Context(), request.CacheKey(), results)
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = append(groups, "detailed")
	}

	resultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, results)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "could not reduce search results",
		})
	}

	return c.JSON(resultsReduced)
}

func queryTime(c *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return fallback, nil
	}

	return time.Parse(time.RFC3339, value)
}
