// Package suggest proposes catalog entities for player input that resolved
// to nothing. It is presentation-side only: core guess resolution never
// consults it.
package suggest

import (
	"fmt"
	"strings"

	"Investle/internal/catalog"
	"Investle/internal/model"

	"github.com/blevesearch/bleve/v2"
	"github.com/rs/zerolog/log"
)

// Engine holds an in-memory full-text index over the catalog. The index is
// derived from the catalog and rebuilt per run, never persisted.
type Engine struct {
	index bleve.Index
	cat   *catalog.Catalog
}

// NewEngine indexes the catalog's tickers, names, and sectors.
func NewEngine(cat *catalog.Catalog) (*Engine, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create suggestion index: %w", err)
	}

	batch := index.NewBatch()
	for _, e := range cat.Entities() {
		doc := map[string]interface{}{
			"ticker": e.Ticker,
			"name":   e.Name,
			"sector": e.Sector,
		}
		if err := batch.Index(strings.ToUpper(e.Ticker), doc); err != nil {
			return nil, fmt.Errorf("index entity %s: %w", e.Ticker, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("execute index batch: %w", err)
	}

	return &Engine{index: index, cat: cat}, nil
}

// Suggest returns up to limit candidate entities for the given input,
// best-scoring first. Returns nil when nothing plausible matches.
func (e *Engine) Suggest(input string, limit int) []model.Entity {
	q := strings.TrimSpace(input)
	if q == "" || limit <= 0 {
		return nil
	}

	ticker := bleve.NewPrefixQuery(strings.ToLower(q))
	ticker.SetField("ticker")
	name := bleve.NewMatchQuery(q)
	name.SetField("name")
	name.SetFuzziness(1)
	sector := bleve.NewMatchQuery(q)
	sector.SetField("sector")

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(ticker, name, sector), limit, 0, false)
	res, err := e.index.Search(req)
	if err != nil {
		log.Warn().Err(err).Str("input", q).Msg("suggestion search failed")
		return nil
	}

	out := make([]model.Entity, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if ent, ok := e.cat.ByTicker(hit.ID); ok {
			out = append(out, ent)
		}
	}
	return out
}

// Close releases the index.
func (e *Engine) Close() error { return e.index.Close() }
