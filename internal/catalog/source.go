package catalog

import "Investle/internal/model"

// Source defines the interface for loading the entity universe from a
// backing store. The returned slice order is the catalog order.
type Source interface {
	Load() ([]model.Entity, error)
	Name() string
}
