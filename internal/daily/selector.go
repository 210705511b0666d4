package daily

import (
	"time"

	"Investle/internal/catalog"
	"Investle/internal/model"
)

// shuffleSeed is a fixed constant of the game. It is not derived from the
// catalog or the date; changing it reassigns every day's secret.
const shuffleSeed uint32 = 20240101

// Permutation returns the fixed Fisher-Yates shuffle of n catalog positions
// under the game seed. The same n always yields the same permutation.
func Permutation(n int) []int {
	rng := NewMulberry32(shuffleSeed)
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		j := int(rng.Float64() * float64(i+1))
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// SelectSecret deterministically picks the secret entity for the calendar day
// of now. Stable for all instants within the same reference-timezone day, and
// stable in assignment as long as the catalog ordering is unchanged.
func SelectSecret(cat *catalog.Catalog, now time.Time) (model.Entity, error) {
	if cat == nil || cat.Len() == 0 {
		return model.Entity{}, catalog.ErrInvalidCatalog
	}

	idx, err := DayIndex(now)
	if err != nil {
		return model.Entity{}, err
	}

	n := cat.Len()
	slot := ((idx % n) + n) % n // true modulo, idx may be negative
	return cat.At(Permutation(n)[slot]), nil
}
