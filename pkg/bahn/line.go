package bahn

// Line identifies a product/line a leg runs on, e.g. "ICE 123". ID is the
// slugified form of Name.
type Line struct {
	Type string `groups:"detailed" json:"type"`
	ID   string `groups:"detailed" json:"id"`
	Name string `groups:"detailed" json:"name"`
}
