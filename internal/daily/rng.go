// Package daily deterministically selects the catalog entity hidden on a
// given calendar day. Every client holding the same catalog order derives the
// same secret for the same day, regardless of its own timezone.
package daily

// Mulberry32 is a small 32-bit state-transition pseudo-random generator.
// It is implemented explicitly instead of going through math/rand so that the
// sequence is bit-identical across runtimes and language ports: the same seed
// always yields the same float64 stream in [0,1).
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 returns a generator seeded with the given value.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Float64 advances the generator and returns the next value in [0,1).
func (m *Mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	z := m.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	return float64(z^z>>14) / (1 << 32)
}
