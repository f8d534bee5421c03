package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/railscout/railscout/pkg/bahn"
	"github.com/railscout/railscout/pkg/util"
)

const (
	connectionSelector = ".scheduledCon, .liveCon"
	rowSelector        = "tr"

	discountSelector = ".farePep .fareOutput"
	priceSelector    = ".fareStd .fareOutput"

	detailsParam = "details"
	detailsValue = "opened"
)

// Anchors whose slugified link text names a way to continue with the offer.
var continuationSlugs = []string{"return", "back-to-offer-selection"}

// Result pairs a parsed journey with the continuation URL the caller follows
// to proceed with booking it.
type Result struct {
	Journey  *bahn.Journey `groups:"basic" json:"journey"`
	NextStep string        `groups:"basic" json:"nextStep"`
}

// ParsePage walks every journey block of a result document in page order and
// assembles a journey per block. Blocks without a continuation link or
// without any price information are silently dropped; they are not bookable
// offers. outbound and returning supply the anchor departure for time
// resolution and may be partial or nil.
func ParsePage(doc *goquery.Document, outbound *bahn.Journey, returning *bahn.Journey, isReturn bool) []Result {
	var results []Result

	doc.Find(connectionSelector).Each(func(position int, block *goquery.Selection) {
		result, ok := assembleJourney(block, position, isReturn, outbound, returning)
		if ok {
			results = append(results, result)
		}
	})

	return results
}

func assembleJourney(block *goquery.Selection, position int, isReturn bool, outbound *bahn.Journey, returning *bahn.Journey) (Result, bool) {
	nextStep := continuationLink(block)
	if nextStep == "" {
		log.Debug().Int("position", position).Msg("Dropping journey block without continuation link")
		return Result{}, false
	}

	legs := buildLegs(block.Find(rowSelector), isReturn, outbound, returning)
	util.InPlaceFilter(&legs, func(leg *bahn.Leg) bool { return leg != nil })

	reconcileStations(legs, block)

	discount := ParsePrice(block.Find(discountSelector).First().Text())
	price := ParsePrice(block.Find(priceSelector).First().Text())
	if discount.Amount == nil && price.Amount == nil {
		log.Debug().Int("position", position).Msg("Dropping journey block without any price")
		return Result{}, false
	}

	direction := bahn.DirectionOutbound
	if isReturn {
		direction = bahn.DirectionReturning
	}

	journey := bahn.NewJourney(direction, position)
	journey.Legs = legs
	journey.Price = price
	journey.Discount = discount
	journey.DeriveEndpoints()

	return Result{Journey: journey, NextStep: nextStep}, true
}

// continuationLink finds the first anchor in the block whose text names a
// continuation action and re-encodes its URL with the show-details flag. The
// original query parameters survive; the raw query string is rebuilt.
func continuationLink(block *goquery.Selection) string {
	var found string

	block.Find("a").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		if !slices.Contains(continuationSlugs, util.Slugify(anchor.Text())) {
			return true
		}

		href := strings.TrimSpace(anchor.AttrOr("href", ""))
		if href == "" {
			return true
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return true
		}

		query := parsed.Query()
		query.Set(detailsParam, detailsValue)
		parsed.RawQuery = query.Encode()

		found = parsed.String()
		return false
	})

	return found
}
