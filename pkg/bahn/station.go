package bahn

// Station is a named stop. ID starts empty and may be backfilled by the
// station identity reconciler; once set it is never overwritten within the
// same pass.
type Station struct {
	Type string `groups:"basic" json:"type"`
	ID   string `groups:"basic" json:"id,omitempty"`
	Name string `groups:"basic" json:"name"`
}

func NewStation(name string) *Station {
	return &Station{
		Type: "station",
		Name: name,
	}
}
