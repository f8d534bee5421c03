package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/railscout/railscout/pkg/bahn"
	"github.com/railscout/railscout/pkg/config"
	"github.com/railscout/railscout/pkg/util"
)

// SearchRequest is one trip-search: station names and a departure time, plus
// an optional return departure for round trips.
type SearchRequest struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	When       time.Time  `json:"when"`
	ReturnWhen *time.Time `json:"returnWhen,omitempty"`
}

func (r SearchRequest) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

// CacheKey is stable across equivalent requests.
func (r SearchRequest) CacheKey() string {
	key := fmt.Sprintf("search:%s:%s:%d", util.Slugify(r.From), util.Slugify(r.To), r.When.Unix())
	if r.ReturnWhen != nil {
		key = fmt.Sprintf("%s:%d", key, r.ReturnWhen.Unix())
	}

	return key
}

// Searcher fetches result pages from the configured booking endpoint and runs
// the page parser over them. The parsing core itself stays pure; all network
// access lives here.
type Searcher struct {
	Endpoint config.Endpoint
}

func NewSearcher(endpoint config.Endpoint) *Searcher {
	return &Searcher{Endpoint: endpoint}
}

// Search fetches and parses the outbound result page, and the return page as
// well for round trips. The two directions are independent, so they are
// fetched concurrently. Results keep page order, outbound before return.
func (s *Searcher) Search(ctx context.Context, request SearchRequest) ([]Result, error) {
	outboundReference := bahn.ReferenceJourney(request.When)

	var (
		waitGroup        conc.WaitGroup
		outboundResults  []Result
		returningResults []Result
		outboundErr      error
		returningErr     error
	)

	waitGroup.Go(func() {
		outboundResults, outboundErr = s.searchDirection(ctx, request, false, outboundReference, nil)
	})

	if request.ReturnWhen != nil {
		returningReference := bahn.ReferenceJourney(*request.ReturnWhen)
		waitGroup.Go(func() {
			returningResults, returningErr = s.searchDirection(ctx, request, true, outboundReference, returningReference)
		})
	}

	waitGroup.Wait()

	if outboundErr != nil {
		return nil, outboundErr
	}
	if returningErr != nil {
		return nil, returningErr
	}

	return append(outboundResults, returningResults...), nil
}

func (s *Searcher) searchDirection(ctx context.Context, request SearchRequest, isReturn bool, outbound *bahn.Journey, returning *bahn.Journey) ([]Result, error) {
	doc, err := FetchDocument(ctx, s.queryURL(request, isReturn), s.Endpoint.UserAgent)
	if err != nil {
		return nil, err
	}

	return ParsePage(doc, outbound, returning, isReturn), nil
}

func (s *Searcher) queryURL(request SearchRequest, isReturn bool) string {
	from, to := request.From, request.To
	when := request.When
	if isReturn {
		from, to = request.To, request.From
		if request.ReturnWhen != nil {
			when = *request.ReturnWhen
		}
	}

	local := when.In(location)

	query := url.Values{}
	query.Set("S", from)
	query.Set("Z", to)
	query.Set("date", local.Format("02.01.06"))
	query.Set("time", local.Format("15:04"))
	query.Set("start", "1")

	return s.Endpoint.BaseURL + "?" + query.Encode()
}
