package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		amount   float64
		currency string
		none     bool
	}{
		{name: "comma separated with code", text: "19,90 EUR", amount: 19.90, currency: "EUR"},
		{name: "integer without code", text: "5", amount: 5, currency: "EUR"},
		{name: "space separated", text: "139 00 CHF", amount: 139, currency: "CHF"},
		{name: "surrounding text", text: "ab 39,90 EUR", amount: 39.90, currency: "EUR"},
		{name: "empty", text: "", none: true},
		{name: "sold out", text: "ausverkauft", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := ParsePrice(tt.text)

			if tt.none {
				assert.Nil(t, price.Amount)
				assert.Empty(t, price.Currency)
				return
			}

			require.NotNil(t, price.Amount)
			assert.InDelta(t, tt.amount, *price.Amount, 1e-9)
			assert.Equal(t, tt.currency, price.Currency)
		})
	}
}
