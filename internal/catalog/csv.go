package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"Investle/internal/model"
)

// csvColumns is the expected column count per record.
const csvColumns = 9

// CSVSource loads the catalog from a CSV dump with the columns
// ticker,name,sector,country,market_cap,price,ipo_year,one_year_return_pct,dividend_yield_pct.
// A header row is skipped when the first cell reads "ticker".
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv" }

// Load reads and parses the CSV catalog file.
func (s *CSVSource) Load() ([]model.Entity, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog csv: %w", err)
	}

	// Skip header row if present
	if len(records) > 0 && strings.EqualFold(records[0][0], "ticker") {
		records = records[1:]
	}

	entities := make([]model.Entity, 0, len(records))
	for i, record := range records {
		if len(record) != csvColumns {
			return nil, fmt.Errorf("catalog csv row %d: expected %d columns, got %d", i+1, csvColumns, len(record))
		}
		e, err := parseCSVRecord(record)
		if err != nil {
			return nil, fmt.Errorf("catalog csv row %d: %w", i+1, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func parseCSVRecord(record []string) (model.Entity, error) {
	marketCap, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return model.Entity{}, fmt.Errorf("market_cap: %w", err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return model.Entity{}, fmt.Errorf("price: %w", err)
	}
	ipoYear, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil {
		return model.Entity{}, fmt.Errorf("ipo_year: %w", err)
	}
	oneYearReturn, err := strconv.ParseFloat(strings.TrimSpace(record[7]), 64)
	if err != nil {
		return model.Entity{}, fmt.Errorf("one_year_return_pct: %w", err)
	}
	dividendYield, err := strconv.ParseFloat(strings.TrimSpace(record[8]), 64)
	if err != nil {
		return model.Entity{}, fmt.Errorf("dividend_yield_pct: %w", err)
	}

	return model.Entity{
		Ticker:           strings.TrimSpace(record[0]),
		Name:             strings.TrimSpace(record[1]),
		Sector:           strings.TrimSpace(record[2]),
		Country:          strings.TrimSpace(record[3]),
		MarketCap:        marketCap,
		Price:            price,
		IPOYear:          ipoYear,
		OneYearReturnPct: oneYearReturn,
		DividendYieldPct: dividendYield,
	}, nil
}
