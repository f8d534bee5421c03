package scraper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railscout/railscout/pkg/bahn"
)

func TestParsePage(t *testing.T) {
	doc := parseFixture(t, pageFixture)
	anchor := bahn.ReferenceJourney(utc(2020, 4, 8, 17, 16))

	results := ParsePage(doc, anchor, nil, false)

	// four blocks on the page: the second has no continuation link and the
	// third has no parseable fare, so two survive in page order
	require.Len(t, results, 2)

	first := results[0].Journey
	assert.Equal(t, "journey", first.Type)
	assert.Equal(t, "outbound-0", first.ID)
	assert.Equal(t, bahn.DirectionOutbound, first.Direction)

	// sparse slots 0 and 2 compacted without holes
	require.Len(t, first.Legs, 2)

	require.NotNil(t, first.Price.Amount)
	assert.InDelta(t, 29.90, *first.Price.Amount, 1e-9)
	assert.Equal(t, "EUR", first.Price.Currency)
	require.NotNil(t, first.Discount.Amount)
	assert.InDelta(t, 19.90, *first.Discount.Amount, 1e-9)

	// endpoints derived from first and last leg
	require.NotNil(t, first.Origin)
	assert.Equal(t, "Berlin Hbf", first.Origin.Name)
	require.NotNil(t, first.Destination)
	assert.Equal(t, "Kiel Hbf", first.Destination.Name)
	require.NotNil(t, first.Departure)
	assert.True(t, first.Departure.Equal(utc(2020, 4, 8, 18, 58)))
	require.NotNil(t, first.DepartureDelay)
	assert.Equal(t, 300, *first.DepartureDelay)
	require.NotNil(t, first.Arrival)
	assert.True(t, first.Arrival.Equal(utc(2020, 4, 8, 21, 40)))
	assert.Nil(t, first.ArrivalDelay)

	// station ids backfilled where the block carried evidence
	assert.Equal(t, "8011160", first.Origin.ID)
	assert.Equal(t, "8002549", first.Legs[0].Destination.ID)
	assert.Equal(t, "8002549", first.Legs[1].Origin.ID)
	assert.Empty(t, first.Destination.ID)

	// the surviving live block keeps its page position in the id
	second := results[1].Journey
	assert.Equal(t, "outbound-3", second.ID)
	require.NotNil(t, second.Price.Amount)
	assert.InDelta(t, 39, *second.Price.Amount, 1e-9)
	assert.Nil(t, second.Discount.Amount)
}

func TestParsePageContinuationLink(t *testing.T) {
	doc := parseFixture(t, pageFixture)

	results := ParsePage(doc, bahn.ReferenceJourney(utc(2020, 4, 8, 17, 16)), nil, false)
	require.NotEmpty(t, results)

	nextStep, err := url.Parse(results[0].NextStep)
	require.NoError(t, err)

	assert.Equal(t, "reiseauskunft.bahn.de", nextStep.Host)

	query := nextStep.Query()
	assert.Equal(t, "opened", query.Get("details"))

	// original query parameters survive the re-encode
	assert.Equal(t, "1234", query.Get("ld"))
	assert.Equal(t, "1", query.Get("seqnr"))
	assert.Equal(t, "ab.cd", query.Get("ident"))
}

func TestParsePageReturnDirection(t *testing.T) {
	doc := parseFixture(t, pageFixture)
	returning := bahn.ReferenceJourney(utc(2020, 4, 8, 17, 16))

	results := ParsePage(doc, nil, returning, true)
	require.NotEmpty(t, results)

	assert.Equal(t, "returning-0", results[0].Journey.ID)
	assert.Equal(t, bahn.DirectionReturning, results[0].Journey.Direction)
}

func TestParsePageEmptyDocument(t *testing.T) {
	doc := parseFixture(t, `<html><body><p>Keine Verbindungen gefunden</p></body></html>`)

	results := ParsePage(doc, nil, nil, false)

	assert.Empty(t, results)
}
