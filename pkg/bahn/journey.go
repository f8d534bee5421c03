package bahn

import (
	"fmt"
	"time"
)

type Direction string

const (
	DirectionOutbound  Direction = "outbound"
	DirectionReturning Direction = "returning"
)

// Journey is one complete bookable offer in one direction, possibly spanning
// several legs. Origin/Destination/Departure/Arrival are derived from the
// first and last leg and are refreshed via DeriveEndpoints, never set
// independently.
type Journey struct {
	Type string `groups:"basic" json:"type"`
	ID   string `groups:"basic" json:"id"`

	Direction Direction `groups:"detailed" json:"direction,omitempty"`

	Legs []*Leg `groups:"detailed" json:"legs"`

	Price    Price `groups:"basic" json:"price"`
	Discount Price `groups:"basic" json:"discount"`

	Origin      *Station `groups:"basic" json:"origin,omitempty"`
	Destination *Station `groups:"basic" json:"destination,omitempty"`

	Departure      *time.Time `groups:"basic" json:"departure,omitempty"`
	DepartureDelay *int       `groups:"basic" json:"departureDelay,omitempty"`
	Arrival        *time.Time `groups:"basic" json:"arrival,omitempty"`
	ArrivalDelay   *int       `groups:"basic" json:"arrivalDelay,omitempty"`
}

func NewJourney(direction Direction, position int) *Journey {
	return &Journey{
		Type:      "journey",
		ID:        fmt.Sprintf("%s-%d", direction, position),
		Direction: direction,
	}
}

// ReferenceJourney builds a minimal journey carrying only an anchor departure
// time. Callers that have no previously parsed journey for a direction use it
// to seed time resolution.
func ReferenceJourney(departure time.Time) *Journey {
	return &Journey{
		Type: "journey",
		Legs: []*Leg{
			{
				Public:    true,
				Operator:  DB,
				Departure: &departure,
			},
		},
	}
}

// DeriveEndpoints copies origin/departure from the first leg and
// destination/arrival from the last. A journey without legs keeps everything
// unset; it is normally filtered out upstream.
func (j *Journey) DeriveEndpoints() {
	if len(j.Legs) == 0 {
		return
	}

	first := j.Legs[0]
	last := j.Legs[len(j.Legs)-1]

	j.Origin = first.Origin
	j.Departure = first.Departure
	j.DepartureDelay = first.DepartureDelay

	j.Destination = last.Destination
	j.Arrival = last.Arrival
	j.ArrivalDelay = last.ArrivalDelay
}

// PlannedDeparture is the scheduled departure of the first leg with any known
// delay rolled back off it. Returns nil when no departure has been recorded.
func (j *Journey) PlannedDeparture() *time.Time {
	if j == nil || len(j.Legs) == 0 {
		return nil
	}

	first := j.Legs[0]
	if first == nil || first.Departure == nil {
		return nil
	}

	planned := *first.Departure
	if first.DepartureDelay != nil {
		planned = planned.Add(-time.Duration(*first.DepartureDelay) * time.Second)
	}

	return &planned
}
