package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/railscout/railscout/pkg/bahn"
)

var pricePattern = regexp.MustCompile(`([0-9]+)(?:[,\s]([0-9]+))?\s*([A-Z]{3})?`)

const defaultCurrency = "EUR"

// ParsePrice reads a localised amount like "19,90 EUR" or "5". The fractional
// part may be separated by a comma or a space; a missing currency code means
// the default market currency. Text without any amount yields the zero Price.
func ParsePrice(text string) bahn.Price {
	match := pricePattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return bahn.Price{}
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return bahn.Price{}
	}

	if match[2] != "" {
		if fractional, err := strconv.ParseFloat(match[2], 64); err == nil {
			amount += fractional * 0.01
		}
	}

	currency := defaultCurrency
	if match[3] != "" {
		currency = match[3]
	}

	return bahn.Price{
		Amount:   &amount,
		Currency: currency,
	}
}
