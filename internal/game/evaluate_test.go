package game

import (
	"testing"

	"Investle/internal/model"
)

func entity(mut func(*model.Entity)) model.Entity {
	e := model.Entity{
		Ticker:           "BASE",
		Name:             "Base Corp",
		Sector:           "Technology",
		Country:          "US",
		MarketCap:        25,
		Price:            100,
		IPOYear:          2010,
		OneYearReturnPct: 12,
		DividendYieldPct: 1.0,
	}
	if mut != nil {
		mut(&e)
	}
	return e
}

func TestEvaluate_SelfIsAllMatch(t *testing.T) {
	e := entity(nil)
	cmp := Evaluate(e, e)
	if len(cmp) != 7 {
		t.Fatalf("expected 7 attributes, got %d", len(cmp))
	}
	for attr, res := range cmp {
		if res.Category != model.CategoryMatch {
			t.Errorf("%s: category = %s, want match", attr, res.Category)
		}
		if res.Direction != model.DirectionNone {
			t.Errorf("%s: direction = %s, want none", attr, res.Direction)
		}
	}
}

func TestMarketCapBucket_Breakpoints(t *testing.T) {
	tests := []struct {
		cap  float64
		want int
	}{
		{0, 0}, {1.99, 0}, {2, 1}, {9.99, 1}, {10, 2},
		{49.99, 2}, {50, 3}, {199.99, 3}, {200, 4}, {3500, 4},
	}
	for _, tt := range tests {
		if got := MarketCapBucket(tt.cap); got != tt.want {
			t.Errorf("MarketCapBucket(%v) = %d, want %d", tt.cap, got, tt.want)
		}
	}
}

func TestBucketLabel(t *testing.T) {
	tests := []struct {
		bucket int
		want   string
	}{
		{0, "Small"}, {1, "Small/Mid"}, {2, "Mid"}, {3, "Large"}, {4, "Mega"}, {5, "?"}, {-1, "?"},
	}
	for _, tt := range tests {
		if got := BucketLabel(tt.bucket); got != tt.want {
			t.Errorf("BucketLabel(%d) = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}

func TestEvaluate_MarketCapBucketDistance(t *testing.T) {
	tests := []struct {
		name      string
		guessCap  float64
		secretCap float64
		category  model.Category
		direction model.Direction
	}{
		{"same bucket different value", 5, 7, model.CategoryMatch, model.DirectionUp},
		{"boundary straddle is near", 2.00, 1.99, model.CategoryNear, model.DirectionDown},
		{"two buckets apart is miss", 1, 25, model.CategoryMiss, model.DirectionUp},
		{"equal caps", 25, 25, model.CategoryMatch, model.DirectionNone},
		{"mega vs small", 3000, 1.5, model.CategoryMiss, model.DirectionDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess := entity(func(e *model.Entity) { e.MarketCap = tt.guessCap })
			secret := entity(func(e *model.Entity) { e.MarketCap = tt.secretCap })
			res := Evaluate(guess, secret)[model.AttrMarketCap]
			if res.Category != tt.category {
				t.Errorf("category = %s, want %s", res.Category, tt.category)
			}
			if res.Direction != tt.direction {
				t.Errorf("direction = %s, want %s", res.Direction, tt.direction)
			}
		})
	}
}

func TestEvaluate_CategoricalAttributes(t *testing.T) {
	secret := entity(nil)

	guess := entity(func(e *model.Entity) { e.Sector = "Energy" })
	if res := Evaluate(guess, secret)[model.AttrSector]; res.Category != model.CategoryMiss {
		t.Errorf("different sector: category = %s, want miss", res.Category)
	}

	guess = entity(func(e *model.Entity) { e.Country = "Japan" })
	res := Evaluate(guess, secret)[model.AttrCountry]
	if res.Category != model.CategoryMiss {
		t.Errorf("different country: category = %s, want miss", res.Category)
	}
	if res.Direction != model.DirectionNone {
		t.Errorf("categorical attribute must have no direction, got %s", res.Direction)
	}

	// Categorical comparison is case-sensitive as stored.
	guess = entity(func(e *model.Entity) { e.Sector = "technology" })
	if res := Evaluate(guess, secret)[model.AttrSector]; res.Category != model.CategoryMiss {
		t.Errorf("case-different sector: category = %s, want miss", res.Category)
	}
}

func TestEvaluate_IPOYearThresholds(t *testing.T) {
	// close=2, medium=5
	tests := []struct {
		guessYear int
		category  model.Category
		direction model.Direction
	}{
		{2010, model.CategoryMatch, model.DirectionNone},
		{2012, model.CategoryMatch, model.DirectionDown},
		{2008, model.CategoryMatch, model.DirectionUp},
		{2015, model.CategoryNear, model.DirectionDown},
		{2005, model.CategoryNear, model.DirectionUp},
		{2016, model.CategoryMiss, model.DirectionDown},
		{1980, model.CategoryMiss, model.DirectionUp},
	}
	secret := entity(nil) // IPO 2010
	for _, tt := range tests {
		guess := entity(func(e *model.Entity) { e.IPOYear = tt.guessYear })
		res := Evaluate(guess, secret)[model.AttrIPOYear]
		if res.Category != tt.category || res.Direction != tt.direction {
			t.Errorf("ipoYear %d: got (%s,%s), want (%s,%s)",
				tt.guessYear, res.Category, res.Direction, tt.category, tt.direction)
		}
	}
}

func TestEvaluate_OneYearReturnThresholds(t *testing.T) {
	// close=3, medium=10; secret return is 12
	tests := []struct {
		guessReturn float64
		category    model.Category
	}{
		{12, model.CategoryMatch},
		{15, model.CategoryMatch},
		{9, model.CategoryMatch},
		{22, model.CategoryNear},
		{2, model.CategoryNear},
		{-20, model.CategoryMiss},
		{40, model.CategoryMiss},
	}
	secret := entity(nil)
	for _, tt := range tests {
		guess := entity(func(e *model.Entity) { e.OneYearReturnPct = tt.guessReturn })
		if res := Evaluate(guess, secret)[model.AttrOneYearReturn]; res.Category != tt.category {
			t.Errorf("return %v: category = %s, want %s", tt.guessReturn, res.Category, tt.category)
		}
	}
}

func TestEvaluate_PriceRelativeThresholds(t *testing.T) {
	// Thresholds are 2% and 8% of the secret's price, not the guess's.
	tests := []struct {
		name        string
		guessPrice  float64
		secretPrice float64
		category    model.Category
	}{
		{"within 2% of 100", 101.5, 100, model.CategoryMatch},
		{"within 8% of 100", 107, 100, model.CategoryNear},
		{"beyond 8% of 100", 110, 100, model.CategoryMiss},
		{"within 2% of 1000", 1015, 1000, model.CategoryMatch},
		{"asymmetric: band follows secret", 100, 93, model.CategoryNear}, // diff 7 vs medium 7.44
		{"cheap secret tight band", 52, 50, model.CategoryNear},          // diff 2 > close 1, <= medium 4
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess := entity(func(e *model.Entity) { e.Price = tt.guessPrice })
			secret := entity(func(e *model.Entity) { e.Price = tt.secretPrice })
			if res := Evaluate(guess, secret)[model.AttrPrice]; res.Category != tt.category {
				t.Errorf("category = %s, want %s", res.Category, tt.category)
			}
		})
	}
}

func TestEvaluate_DividendPresenceAndMagnitude(t *testing.T) {
	tests := []struct {
		name        string
		guessYield  float64
		secretYield float64
		category    model.Category
	}{
		{"neither pays", 0, 0, model.CategoryMatch},
		{"epsilon still counts as no dividend", 0.01, 0, model.CategoryMatch},
		{"only guess pays", 2.0, 0, model.CategoryMiss},
		{"only secret pays", 0, 2.0, model.CategoryMiss},
		{"tiny guess vs paying secret", 0.005, 3.0, model.CategoryMiss},
		{"both pay close", 1.0, 1.4, model.CategoryMatch},
		{"both pay near", 1.0, 2.3, model.CategoryNear},
		{"both pay far", 1.0, 3.0, model.CategoryMiss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess := entity(func(e *model.Entity) { e.DividendYieldPct = tt.guessYield })
			secret := entity(func(e *model.Entity) { e.DividendYieldPct = tt.secretYield })
			res := Evaluate(guess, secret)[model.AttrDividendYield]
			if res.Category != tt.category {
				t.Errorf("category = %s, want %s", res.Category, tt.category)
			}
			if res.Direction != model.DirectionNone {
				t.Errorf("dividend attribute must have no direction, got %s", res.Direction)
			}
		})
	}
}
