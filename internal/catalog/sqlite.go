package catalog

import (
	"database/sql"
	"fmt"

	"Investle/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteSource loads the catalog from a SQLite database. Rows are read in
// rowid order, which is the catalog order.
type SQLiteSource struct {
	Path string
}

// NewSQLiteSource creates a SQLiteSource for the given database path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{Path: path}
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// Load opens the database and reads the stocks table.
func (s *SQLiteSource) Load() ([]model.Entity, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT ticker, name, sector, country, market_cap, price,
		ipo_year, one_year_return_pct, dividend_yield_pct
		FROM stocks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query stocks: %w", err)
	}
	defer rows.Close()

	var entities []model.Entity
	for rows.Next() {
		var e model.Entity
		if err := rows.Scan(&e.Ticker, &e.Name, &e.Sector, &e.Country, &e.MarketCap,
			&e.Price, &e.IPOYear, &e.OneYearReturnPct, &e.DividendYieldPct); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock rows: %w", err)
	}
	return entities, nil
}
