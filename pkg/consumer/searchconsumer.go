package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"

	"github.com/railscout/railscout/pkg/cache"
	"github.com/railscout/railscout/pkg/redis_client"
	"github.com/railscout/railscout/pkg/scraper"
)

const (
	queueName    = "search-requests"
	numConsumers = 5
)

// SearchConsumer drains queued search requests, runs them through the
// searcher and parks the parsed results in the shared result cache for the
// web API to pick up.
type SearchConsumer struct {
	id          int
	searcher    *scraper.Searcher
	resultCache *cache.ResultCache
}

func StartConsumers(searcher *scraper.Searcher, resultCache *cache.ResultCache) error {
	log.Info().Str("queue", queueName).Msg("Starting search request consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(queueName)
	if err != nil {
		return err
	}
	if err := queue.StartConsuming(numConsumers*10, 1*time.Second); err != nil {
		return err
	}

	for i := 0; i < numConsumers; i++ {
		consumer := &SearchConsumer{id: i, searcher: searcher, resultCache: resultCache}
		if _, err := queue.AddConsumer(fmt.Sprintf("search-requests-%d", i), consumer); err != nil {
			return err
		}
	}

	return nil
}

func (c *SearchConsumer) Consume(delivery rmq.Delivery) {
	var request scraper.SearchRequest
	if err := json.Unmarshal([]byte(delivery.Payload()), &request); err != nil {
		log.Error().Err(err).Int("consumer", c.id).Msg("Rejecting undecodable search request")
		if err := delivery.Reject(); err != nil {
			log.Error().Err(err).Msg("Failed to reject search request")
		}
		return
	}

	results, err := c.searcher.Search(context.Background(), request)
	if err != nil {
		log.Error().Err(err).Str("from", request.From).Str("to", request.To).Msg("Search failed")
		if err := delivery.Reject(); err != nil {
			log.Error().Err(err).Msg("Failed to reject search request")
		}
		return
	}

	c.resultCache.Set(context.Background(), request.CacheKey(), results)

	log.Info().
		Int("consumer", c.id).
		Str("from", request.From).
		Str("to", request.To).
		Int("results", len(results)).
		Msg("Processed search request")

	if err := delivery.Ack(); err != nil {
		log.Error().Err(err).Msg("Failed to ack search request")
	}
}

// Publish enqueues a search request for background processing.
func Publish(request scraper.SearchRequest) error {
	queue, err := redis_client.QueueConnection.OpenQueue(queueName)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}

	return queue.PublishBytes(payload)
}
