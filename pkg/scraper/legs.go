package scraper

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/railscout/railscout/pkg/bahn"
	"github.com/railscout/railscout/pkg/util"
)

// Row classification tokens taken from the class attribute. Next to these a
// "first" row carries exactly one integer token naming the leg slot it opens.
const (
	rowTagFirst        = "first"
	rowTagLast         = "last"
	rowTagIntermediate = "intermediate"
)

const (
	stationSelector  = ".station"
	platformSelector = ".platform"
	timeSelector     = ".time"
	productsSelector = ".products a"
)

// legState is the fold state carried across the rows of one journey block:
// the slot index of the leg currently being filled and the sparse slot list.
type legState struct {
	current int
	legs    []*bahn.Leg
}

// buildLegs folds the ordered detail rows of one journey block into a sparse
// list of leg slots. Every row's clock times are anchored to the planned
// first-leg departure of the direction's own reference journey rather than to
// the row itself; later rows list bare clock times with no date, and a single
// anchor per journey keeps multi-leg journeys from drifting while the
// resolver still detects date rollover. Slots may be announced out of order
// and are compacted by the caller.
func buildLegs(rows *goquery.Selection, isReturn bool, outbound, returning *bahn.Journey) []*bahn.Leg {
	referenceJourney := outbound
	if isReturn {
		referenceJourney = returning
	}
	reference := referenceJourney.PlannedDeparture()

	state := &legState{current: -1}
	rows.Each(func(_ int, row *goquery.Selection) {
		state.fold(row, reference)
	})

	return state.legs
}

func (s *legState) fold(row *goquery.Selection, reference *time.Time) {
	tags := strings.Fields(row.AttrOr("class", ""))

	// Pure transfer/walk rows carry nothing and do not reset state.
	if util.ContainsString(tags, rowTagIntermediate) {
		return
	}

	if util.ContainsString(tags, rowTagFirst) {
		slot, ok := integerTag(tags)
		if !ok {
			// A first row without a slot index is malformed markup.
			return
		}

		s.openLeg(slot)

		leg := s.legs[s.current]
		leg.Origin = stationName(row)
		leg.DeparturePlatform = platform(row)
		leg.Departure, leg.DepartureDelay = resolveTimePair(reference, row.Find(timeSelector).First())
		leg.Lines = parseLines(row)
	}

	if util.ContainsString(tags, rowTagLast) {
		leg := s.currentLeg()
		if leg == nil {
			return
		}

		leg.Destination = stationName(row)
		leg.ArrivalPlatform = platform(row)
		leg.Arrival, leg.ArrivalDelay = resolveTimePair(reference, row.Find(timeSelector).First())
	}
}

func (s *legState) openLeg(slot int) {
	for len(s.legs) <= slot {
		s.legs = append(s.legs, nil)
	}

	s.legs[slot] = &bahn.Leg{
		Public:   true,
		Operator: bahn.DB,
	}
	s.current = slot
}

func (s *legState) currentLeg() *bahn.Leg {
	if s.current < 0 || s.current >= len(s.legs) {
		return nil
	}

	return s.legs[s.current]
}

func integerTag(tags []string) (int, bool) {
	for _, tag := range tags {
		if n, err := strconv.Atoi(tag); err == nil && n >= 0 {
			return n, true
		}
	}

	return 0, false
}

func stationName(row *goquery.Selection) *bahn.Station {
	name := strings.TrimSpace(row.Find(stationSelector).First().Text())
	if name == "" {
		return nil
	}

	return bahn.NewStation(name)
}

func platform(row *goquery.Selection) string {
	return strings.TrimSpace(row.Find(platformSelector).First().Text())
}

func parseLines(row *goquery.Selection) []bahn.Line {
	var lines []bahn.Line

	row.Find(productsSelector).Each(func(_ int, anchor *goquery.Selection) {
		name := util.NormalizeWhitespace(anchor.Text())
		id := util.Slugify(name)
		if name == "" || id == "" {
			return
		}

		lines = append(lines, bahn.Line{
			Type: "line",
			ID:   id,
			Name: name,
		})
	})

	return lines
}
