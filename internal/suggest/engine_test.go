package suggest

import (
	"testing"

	"Investle/internal/catalog"
	"Investle/internal/model"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	entities := []model.Entity{
		{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", Country: "US",
			MarketCap: 2800, Price: 190, IPOYear: 1980, OneYearReturnPct: 12, DividendYieldPct: 0.5},
		{Ticker: "MSFT", Name: "Microsoft", Sector: "Technology", Country: "US",
			MarketCap: 3000, Price: 420, IPOYear: 1986, OneYearReturnPct: 20, DividendYieldPct: 0.7},
		{Ticker: "KO", Name: "Coca-Cola", Sector: "Consumer Staples", Country: "US",
			MarketCap: 260, Price: 61, IPOYear: 1919, OneYearReturnPct: 4, DividendYieldPct: 3.1},
	}
	cat, err := catalog.New(entities)
	if err != nil {
		t.Fatal(err)
	}
	eng, err := NewEngine(cat)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { eng.Close() })
	return eng
}

func contains(entities []model.Entity, ticker string) bool {
	for _, e := range entities {
		if e.Ticker == ticker {
			return true
		}
	}
	return false
}

func TestSuggest_TickerPrefix(t *testing.T) {
	eng := testEngine(t)
	got := eng.Suggest("AAP", 5)
	if !contains(got, "AAPL") {
		t.Errorf("Suggest(AAP) = %v, want AAPL among candidates", got)
	}
}

func TestSuggest_FuzzyName(t *testing.T) {
	eng := testEngine(t)
	// one edit away from "microsoft"
	got := eng.Suggest("microsft", 5)
	if !contains(got, "MSFT") {
		t.Errorf("Suggest(microsft) = %v, want MSFT among candidates", got)
	}
}

func TestSuggest_Sector(t *testing.T) {
	eng := testEngine(t)
	got := eng.Suggest("technology", 5)
	if !contains(got, "AAPL") || !contains(got, "MSFT") {
		t.Errorf("Suggest(technology) = %v, want both technology stocks", got)
	}
}

func TestSuggest_LimitAndEmpty(t *testing.T) {
	eng := testEngine(t)
	if got := eng.Suggest("technology", 1); len(got) > 1 {
		t.Errorf("limit 1 returned %d candidates", len(got))
	}
	if got := eng.Suggest("", 5); got != nil {
		t.Errorf("empty input should return nil, got %v", got)
	}
	if got := eng.Suggest("aapl", 0); got != nil {
		t.Errorf("zero limit should return nil, got %v", got)
	}
}
