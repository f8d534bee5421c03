package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/railscout/railscout/pkg/bahn"
	"github.com/railscout/railscout/pkg/util"
)

// The markup never carries a station's name and numeric identity in the same
// place. Two auxiliary sources inside a journey block pair them back up: the
// per-station detail links, and the single print-view link whose id belongs
// to the station shown in the active slider.
const (
	detailLinkSelector = "a.arrowlink"
	printLinkSelector  = "a.printview"
	sliderSelector     = ".activeslider"

	detailIDParam = "evaId"
	printIDParam  = "stationId"
)

type stationEvidence struct {
	name string
	id   string
}

// reconcileStations backfills leg station ids by matching slugified station
// names against the (name, id) evidence found in the block's auxiliary links.
// Matching is heuristic: there is no stable join key in the source data, so
// an unmatched name simply keeps a blank id. One name may tag several legs,
// since the destination of leg N is usually the origin of leg N+1. Already
// set ids are left alone, so running this twice changes nothing.
func reconcileStations(legs []*bahn.Leg, block *goquery.Selection) {
	for _, evidence := range collectEvidence(block) {
		slug := util.Slugify(evidence.name)
		if slug == "" || evidence.id == "" {
			continue
		}

		for _, leg := range legs {
			tagStation(leg.Origin, slug, evidence.id)
			tagStation(leg.Destination, slug, evidence.id)
		}
	}
}

func collectEvidence(block *goquery.Selection) []stationEvidence {
	var evidence []stationEvidence

	block.Find(detailLinkSelector).Each(func(_ int, anchor *goquery.Selection) {
		id := queryParam(anchor.AttrOr("href", ""), detailIDParam)
		name := util.NormalizeWhitespace(anchor.Text())
		if id == "" || name == "" {
			return
		}

		evidence = append(evidence, stationEvidence{name: name, id: id})
	})

	printID := queryParam(block.Find(printLinkSelector).First().AttrOr("href", ""), printIDParam)
	sliderName := util.NormalizeWhitespace(block.Find(sliderSelector).First().Text())
	if printID != "" && sliderName != "" {
		evidence = append(evidence, stationEvidence{name: sliderName, id: printID})
	}

	return evidence
}

func tagStation(station *bahn.Station, slug string, id string) {
	if station == nil || station.ID != "" {
		return
	}

	if util.Slugify(station.Name) == slug {
		station.ID = id
	}
}

func queryParam(href string, key string) string {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}

	return parsed.Query().Get(key)
}
