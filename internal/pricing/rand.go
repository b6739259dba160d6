package pricing

// mulberry32 is a 32-bit xorshift-multiply mix PRNG. The state update and
// output mix use uint32 wraparound arithmetic and must stay bit-exact: every
// synthetic price series derives from this exact sequence.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// Float64 returns the next value in [0, 1)
func (m *mulberry32) Float64() float64 {
	m.state += 0x6d2b79f5
	t := m.state ^ (m.state >> 15)
	t *= 1 | m.state
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return float64(t^(t>>14)) / 4294967296
}
