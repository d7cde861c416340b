package currency

import (
	"math"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
)

// defaultRates expresses how many units of each currency one unit of the
// settlement base (ADA) buys.
var defaultRates = map[string]float64{
	"ADA": 1,
	"USD": 0.45,
	"INR": 37.5,
	"EUR": 0.41,
}

// Converter performs stateless rate-table lookups between a quoted currency
// and the settlement currency.
type Converter struct {
	rates      map[string]float64
	settlement string
}

// NewConverter builds a converter settling into the given currency using the
// built-in rate table.
func NewConverter(settlement string) *Converter {
	return &Converter{rates: defaultRates, settlement: settlement}
}

// NewConverterWithRates builds a converter with an explicit rate table.
func NewConverterWithRates(settlement string, rates map[string]float64) *Converter {
	return &Converter{rates: rates, settlement: settlement}
}

// Settlement returns the settlement currency code.
func (c *Converter) Settlement() string {
	return c.settlement
}

// Convert maps an amount in the source currency to the settlement currency,
// rounding up to the next whole settlement unit.
func (c *Converter) Convert(amount float64, from string) (float64, error) {
	fromRate, ok := c.rates[from]
	if !ok || fromRate == 0 {
		return 0, domainErrors.ErrUnknownCurrency
	}
	toRate, ok := c.rates[c.settlement]
	if !ok {
		return 0, domainErrors.ErrUnknownCurrency
	}
	return math.Ceil(amount / (fromRate / toRate)), nil
}
