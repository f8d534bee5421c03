package scraper

import (
	"math"
	"regexp"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/railscout/railscout/pkg/util"
)

// All clock times in the result markup are local times of the source market,
// with no date or zone attached.
const marketTimezone = "Europe/Berlin"

var location = mustLoadLocation(marketTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

var clockPattern = regexp.MustCompile(`[0-9]{1,2}:[0-9]{2}`)

// ResolveTime extracts the first HH:MM clock time from text and anchors it to
// the calendar date of reference, both interpreted in the market timezone.
// A resolved instant strictly before the reference is pushed to the next day,
// which covers overnight journeys whose arrival reads earlier than their
// departure. Returns nil when text carries no usable clock time.
func ResolveTime(reference time.Time, text string) *time.Time {
	match := clockPattern.FindString(text)
	if match == "" {
		return nil
	}

	clock, err := time.Parse("15:04", match)
	if err != nil {
		return nil
	}

	resolved := util.AddTimeToDate(reference.In(location), clock)
	if resolved.Before(reference) {
		resolved = resolved.AddDate(0, 0, 1)
	}

	resolved = resolved.UTC()

	return &resolved
}

const delayMarkerSelector = ".delay"

// resolveTimePair reads a planned time from the element's own text and an
// actual time from its delay marker child, returning the effective instant
// and the signed delay in seconds. Rows without any timing, such as walking
// transfers, come back as (nil, nil); that is a normal outcome, not an error.
func resolveTimePair(reference *time.Time, sel *goquery.Selection) (*time.Time, *int) {
	if reference == nil || sel == nil || sel.Length() == 0 {
		return nil, nil
	}

	planned := ResolveTime(*reference, ownText(sel))
	actual := ResolveTime(*reference, sel.Find(delayMarkerSelector).Text())

	var delay *int
	if planned != nil && actual != nil {
		seconds := int(math.Round(actual.Sub(*planned).Seconds()))
		delay = &seconds
	}

	when := actual
	if when == nil {
		when = planned
	}

	return when, delay
}

// ownText concatenates the element's direct text nodes, skipping anything
// inside child elements. The delay marker lives in a child element, so this
// yields the planned time only.
func ownText(sel *goquery.Selection) string {
	var builder strings.Builder

	for _, node := range sel.Contents().Nodes {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}
	}

	return builder.String()
}
