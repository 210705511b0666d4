package model

// Attribute names one compared column of the guess board.
type Attribute string

const (
	AttrSector        Attribute = "sector"
	AttrCountry       Attribute = "country"
	AttrMarketCap     Attribute = "marketCap"
	AttrPrice         Attribute = "price"
	AttrIPOYear       Attribute = "ipoYear"
	AttrOneYearReturn Attribute = "oneYearReturnPct"
	AttrDividendYield Attribute = "dividendYieldPct"
)

// Category is the three-tier proximity classification for one attribute.
type Category string

const (
	CategoryMatch Category = "match"
	CategoryNear  Category = "near"
	CategoryMiss  Category = "miss"
)

// Direction hints whether the secret's value is above or below the guess.
// The arrow points toward the target: up means the secret is higher.
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// AttributeResult is the feedback for one attribute of one guess.
type AttributeResult struct {
	Category  Category
	Direction Direction
}

// Comparison maps each attribute to its feedback for a single guess.
// It is derived fresh from the guess and the secret, never stored.
type Comparison map[Attribute]AttributeResult
