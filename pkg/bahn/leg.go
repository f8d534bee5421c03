package bahn

import "time"

// Leg is one uninterrupted segment of travel within a journey. Timing fields
// stay nil for rows that legitimately carry no timing information, such as
// walking transfers.
type Leg struct {
	Public   bool      `groups:"detailed" json:"public"`
	Operator *Operator `groups:"detailed" json:"operator,omitempty"`

	Origin      *Station `groups:"detailed" json:"origin,omitempty"`
	Destination *Station `groups:"detailed" json:"destination,omitempty"`

	DeparturePlatform string `groups:"detailed" json:"departurePlatform,omitempty"`
	ArrivalPlatform   string `groups:"detailed" json:"arrivalPlatform,omitempty"`

	Departure      *time.Time `groups:"detailed" json:"departure,omitempty"`
	DepartureDelay *int       `groups:"detailed" json:"departureDelay,omitempty"`
	Arrival        *time.Time `groups:"detailed" json:"arrival,omitempty"`
	ArrivalDelay   *int       `groups:"detailed" json:"arrivalDelay,omitempty"`

	Lines []Line `groups:"detailed" json:"lines,omitempty"`
}
