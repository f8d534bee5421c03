package bahn

// Operator identifies a carrier. The booking interface only ever serves a
// single carrier, so the one known value is constructed once and shared.
type Operator struct {
	Type string `groups:"detailed" json:"type"`
	ID   string `groups:"detailed" json:"id"`
	Name string `groups:"detailed" json:"name"`
}

var DB = &Operator{
	Type: "operator",
	ID:   "deutsche-bahn",
	Name: "Deutsche Bahn",
}
