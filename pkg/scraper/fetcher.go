package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

const (
	fetchTimeout    = 20 * time.Second
	maxFetchRetries = 3
)

// FetchDocument downloads one result page and builds a queryable document
// from it. The booking interface serves ISO-8859-1, so the body is decoded by
// its Content-Type charset label before parsing. Transient failures are
// retried with exponential backoff; client errors are not.
func FetchDocument(ctx context.Context, requestURL string, userAgent string) (*goquery.Document, error) {
	operation := func() (*goquery.Document, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if userAgent != "" {
			request.Header.Set("User-Agent", userAgent)
		}

		client := &http.Client{Timeout: fetchTimeout}
		response, err := client.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status %d fetching result page", response.StatusCode)
			if response.StatusCode >= 400 && response.StatusCode < 500 {
				return nil, backoff.Permanent(err)
			}

			log.Warn().Int("status", response.StatusCode).Str("url", requestURL).Msg("Retrying result page fetch")
			return nil, err
		}

		reader, err := charset.NewReader(response.Body, response.Header.Get("Content-Type"))
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		return goquery.NewDocumentFromReader(reader)
	}

	return backoff.RetryWithData(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries), ctx))
}
