package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railscout/railscout/pkg/bahn"
)

func twoLegJourney() []*bahn.Leg {
	return []*bahn.Leg{
		{
			Origin:      bahn.NewStation("Berlin Hbf"),
			Destination: bahn.NewStation("Hamburg Hbf"),
		},
		{
			Origin:      bahn.NewStation("Hamburg Hbf"),
			Destination: bahn.NewStation("Kiel Hbf"),
		},
	}
}

func TestReconcileStations(t *testing.T) {
	doc := parseFixture(t, reconcileBlockFixture)
	block := doc.Find(".scheduledCon")
	require.Equal(t, 1, block.Length())

	legs := twoLegJourney()
	reconcileStations(legs, block)

	assert.Equal(t, "8011160", legs[0].Origin.ID)

	// the same station appears as destination of leg one and origin of leg
	// two; both get tagged from one piece of evidence
	assert.Equal(t, "8002549", legs[0].Destination.ID)
	assert.Equal(t, "8002549", legs[1].Origin.ID)

	// id via print view link paired with the active slider name
	assert.Equal(t, "8000199", legs[1].Destination.ID)
}

func TestReconcileStationsFirstEvidenceWins(t *testing.T) {
	doc := parseFixture(t, reconcileBlockFixture)
	legs := twoLegJourney()

	reconcileStations(legs, doc.Find(".scheduledCon"))

	// the fixture carries a second Berlin link with a different id; an id set
	// once is never overwritten
	assert.Equal(t, "8011160", legs[0].Origin.ID)
}

func TestReconcileStationsIdempotent(t *testing.T) {
	doc := parseFixture(t, reconcileBlockFixture)
	block := doc.Find(".scheduledCon")

	legs := twoLegJourney()
	reconcileStations(legs, block)
	reconcileStations(legs, block)

	assert.Equal(t, "8011160", legs[0].Origin.ID)
	assert.Equal(t, "8002549", legs[0].Destination.ID)
	assert.Equal(t, "8002549", legs[1].Origin.ID)
	assert.Equal(t, "8000199", legs[1].Destination.ID)
}

func TestReconcileStationsNoMatchIsSilent(t *testing.T) {
	doc := parseFixture(t, reconcileBlockFixture)

	legs := []*bahn.Leg{
		{
			Origin:      bahn.NewStation("München Hbf"),
			Destination: nil,
		},
	}
	reconcileStations(legs, doc.Find(".scheduledCon"))

	assert.Empty(t, legs[0].Origin.ID)
}
