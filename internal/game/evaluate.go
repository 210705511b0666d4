package game

import (
	"math"

	"Investle/internal/model"
)

// MarketCapBucket maps a market cap in billions to its ordinal size bucket.
func MarketCapBucket(cap float64) int {
	switch {
	case cap < 2:
		return 0
	case cap < 10:
		return 1
	case cap < 50:
		return 2
	case cap < 200:
		return 3
	default:
		return 4
	}
}

var bucketLabels = [...]string{"Small", "Small/Mid", "Mid", "Large", "Mega"}

// BucketLabel returns the display label for a market-cap bucket.
func BucketLabel(bucket int) string {
	if bucket < 0 || bucket >= len(bucketLabels) {
		return "?"
	}
	return bucketLabels[bucket]
}

// compareKind selects how one attribute is scored.
type compareKind int

const (
	compareExact    compareKind = iota // string equality, no direction
	compareBucketed                    // bucket distance 0/1/2+, direction from raw values
	compareAbsolute                    // fixed |diff| thresholds
	compareRelative                    // thresholds as fractions of the secret's value
	comparePresence                    // pays/no-pays gate, then fixed |diff| thresholds
)

// rule binds one attribute to its comparison kind and thresholds. close and
// medium are absolute differences for compareAbsolute and comparePresence,
// and fractions of the secret's value for compareRelative.
type rule struct {
	attr   model.Attribute
	kind   compareKind
	close  float64
	medium float64
	str    func(model.Entity) string
	num    func(model.Entity) float64
}

var rules = []rule{
	{attr: model.AttrSector, kind: compareExact,
		str: func(e model.Entity) string { return e.Sector }},
	{attr: model.AttrCountry, kind: compareExact,
		str: func(e model.Entity) string { return e.Country }},
	{attr: model.AttrMarketCap, kind: compareBucketed,
		num: func(e model.Entity) float64 { return e.MarketCap }},
	{attr: model.AttrIPOYear, kind: compareAbsolute, close: 2, medium: 5,
		num: func(e model.Entity) float64 { return float64(e.IPOYear) }},
	{attr: model.AttrOneYearReturn, kind: compareAbsolute, close: 3, medium: 10,
		num: func(e model.Entity) float64 { return e.OneYearReturnPct }},
	{attr: model.AttrPrice, kind: compareRelative, close: 0.02, medium: 0.08,
		num: func(e model.Entity) float64 { return e.Price }},
	{attr: model.AttrDividendYield, kind: comparePresence, close: 0.5, medium: 1.5,
		num: func(e model.Entity) float64 { return e.DividendYieldPct }},
}

// Evaluate scores a guess against the secret attribute by attribute. Each
// attribute is independent; the win condition is checked separately on
// tickers, never here.
func Evaluate(guess, secret model.Entity) model.Comparison {
	cmp := make(model.Comparison, len(rules))
	for _, r := range rules {
		cmp[r.attr] = r.apply(guess, secret)
	}
	return cmp
}

func (r rule) apply(guess, secret model.Entity) model.AttributeResult {
	switch r.kind {
	case compareExact:
		category := model.CategoryMiss
		if r.str(guess) == r.str(secret) {
			category = model.CategoryMatch
		}
		return model.AttributeResult{Category: category, Direction: model.DirectionNone}

	case compareBucketed:
		g, s := r.num(guess), r.num(secret)
		dist := MarketCapBucket(g) - MarketCapBucket(s)
		if dist < 0 {
			dist = -dist
		}
		var category model.Category
		switch {
		case dist == 0:
			category = model.CategoryMatch
		case dist == 1:
			category = model.CategoryNear
		default:
			category = model.CategoryMiss
		}
		// Direction reads the raw values, not the bucket indices.
		return model.AttributeResult{Category: category, Direction: direction(g, s)}

	case compareAbsolute:
		g, s := r.num(guess), r.num(secret)
		return model.AttributeResult{
			Category:  categoryForDiff(math.Abs(g-s), r.close, r.medium),
			Direction: direction(g, s),
		}

	case compareRelative:
		// Thresholds scale with the secret's value so that cheap and
		// expensive instruments are equally hard to narrow down.
		g, s := r.num(guess), r.num(secret)
		return model.AttributeResult{
			Category:  categoryForDiff(math.Abs(g-s), r.close*s, r.medium*s),
			Direction: direction(g, s),
		}

	case comparePresence:
		guessPays, secretPays := guess.PaysDividend(), secret.PaysDividend()
		var category model.Category
		switch {
		case !guessPays && !secretPays:
			category = model.CategoryMatch
		case guessPays != secretPays:
			category = model.CategoryMiss
		default:
			category = categoryForDiff(math.Abs(r.num(guess)-r.num(secret)), r.close, r.medium)
		}
		return model.AttributeResult{Category: category, Direction: model.DirectionNone}
	}

	return model.AttributeResult{Category: model.CategoryMiss, Direction: model.DirectionNone}
}

func categoryForDiff(diff, close, medium float64) model.Category {
	switch {
	case diff <= close:
		return model.CategoryMatch
	case diff <= medium:
		return model.CategoryNear
	default:
		return model.CategoryMiss
	}
}

// direction points the arrow toward the target: up when the secret is higher
// than the guess.
func direction(guess, secret float64) model.Direction {
	switch {
	case guess < secret:
		return model.DirectionUp
	case guess > secret:
		return model.DirectionDown
	default:
		return model.DirectionNone
	}
}
