package bahn

// Price is an amount in a currency. Amount stays nil when the source text
// carried nothing parseable; Currency is empty in that case too.
type Price struct {
	Amount   *float64 `groups:"basic" json:"amount"`
	Currency string   `groups:"basic" json:"currency,omitempty"`
}
