package catalog

import (
	"errors"
	"fmt"
	"strings"

	"Investle/internal/model"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog indicates the catalog is empty or malformed. It is fatal
// to session start; no guess can be submitted without a valid catalog.
var ErrInvalidCatalog = errors.New("invalid catalog")

var validate = validator.New()

// Catalog is the ordered, read-only universe of guessable entities.
// Positional order matters: it is the domain of the daily permutation and the
// tie-break order for guess resolution.
type Catalog struct {
	entities []model.Entity
	byTicker map[string]int // upper-cased ticker -> position
}

// New validates the entities and builds a catalog. Tickers must be unique
// case-insensitively and every record must pass field validation.
func New(entities []model.Entity) (*Catalog, error) {
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: no entities", ErrInvalidCatalog)
	}

	byTicker := make(map[string]int, len(entities))
	for i, e := range entities {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entity %d (%q): %v", ErrInvalidCatalog, i, e.Ticker, err)
		}
		key := strings.ToUpper(e.Ticker)
		if prev, ok := byTicker[key]; ok {
			return nil, fmt.Errorf("%w: duplicate ticker %q at positions %d and %d",
				ErrInvalidCatalog, e.Ticker, prev, i)
		}
		byTicker[key] = i
	}

	return &Catalog{entities: entities, byTicker: byTicker}, nil
}

// Len returns the number of entities.
func (c *Catalog) Len() int { return len(c.entities) }

// At returns the entity at position i.
func (c *Catalog) At(i int) model.Entity { return c.entities[i] }

// Entities returns a copy of the catalog in order.
func (c *Catalog) Entities() []model.Entity {
	out := make([]model.Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// ByTicker looks up an entity by exact ticker, case-insensitively.
func (c *Catalog) ByTicker(ticker string) (model.Entity, bool) {
	i, ok := c.byTicker[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return model.Entity{}, false
	}
	return c.entities[i], true
}

// Resolve maps raw player input to a catalog entity: an exact ticker match
// wins first, then the first case-insensitive substring match against entity
// names in catalog order. Empty input never resolves.
func (c *Catalog) Resolve(input string) (model.Entity, bool) {
	v := strings.TrimSpace(input)
	if v == "" {
		return model.Entity{}, false
	}

	if i, ok := c.byTicker[strings.ToUpper(v)]; ok {
		return c.entities[i], true
	}

	lower := strings.ToLower(v)
	for _, e := range c.entities {
		if strings.Contains(strings.ToLower(e.Name), lower) {
			return e, true
		}
	}
	return model.Entity{}, false
}
