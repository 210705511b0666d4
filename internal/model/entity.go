package model

// Entity is one guessable instrument in the catalog. Records are immutable
// once loaded; the JSON tags match the stocks.json deployment format.
type Entity struct {
	Ticker           string  `json:"ticker" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	Sector           string  `json:"sector" validate:"required"`
	Country          string  `json:"country" validate:"required"`
	MarketCap        float64 `json:"marketCap" validate:"gte=0"` // billions
	Price            float64 `json:"price" validate:"gt=0"`
	IPOYear          int     `json:"ipoYear" validate:"gte=1600,lte=2100"`
	OneYearReturnPct float64 `json:"oneYearReturnPct"`
	DividendYieldPct float64 `json:"dividendYieldPct" validate:"gte=0"`
}

// dividendEpsilon separates real yields from zero and rounding noise.
const dividendEpsilon = 0.01

// PaysDividend reports whether the instrument pays a dividend at all.
func (e Entity) PaysDividend() bool {
	return e.DividendYieldPct > dividendEpsilon
}
