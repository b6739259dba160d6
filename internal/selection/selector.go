// Package selection implements the deterministic daily item picker. A date
// string plus a per-channel salt is hashed with a 32-bit polynomial rolling
// hash and reduced modulo the catalog size, so a fixed date always maps to
// the same catalog index for the lifetime of a fixed catalog.
package selection

// Salts decorrelating the independent selection channels
const (
	SaltDaily         = "-daily"
	SaltProprietary   = "-proprietary"
	SaltInstitutional = "-institutional"
)

// HashString computes a 32-bit polynomial rolling hash (multiplier 31) over
// the UTF-8 bytes of s and returns its absolute value. Accumulation uses
// 32-bit wraparound multiply-add semantics; the numeric sequence depends on
// integer overflow behavior and must stay bit-exact across implementations.
func HashString(s string) int64 {
	var h int32
	for _, b := range []byte(s) {
		h = h*31 + int32(b)
	}
	// Take abs in 64-bit space: -MinInt32 is not representable in int32.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// SelectIndex maps a date and salt to a catalog index in [0, catalogSize).
// Pure and safe for concurrent use. Panics if catalogSize is not positive:
// an empty catalog cannot produce an item and callers must guarantee one.
func SelectIndex(dateISO string, salt string, catalogSize int) int {
	if catalogSize <= 0 {
		panic("selection: catalog must not be empty")
	}
	return int(HashString(dateISO+salt) % int64(catalogSize))
}

// SelectPair computes two independent channel indices for the same date. If
// the secondary channel collides with the primary, the secondary
// deterministically advances to the next index modulo the catalog size, so
// the two channels never surface the same item (requires catalogSize >= 2
// for distinctness; with a single-item catalog both channels return 0).
func SelectPair(dateISO string, primarySalt, secondarySalt string, catalogSize int) (primary, secondary int) {
	primary = SelectIndex(dateISO, primarySalt, catalogSize)
	secondary = SelectIndex(dateISO, secondarySalt, catalogSize)
	if secondary == primary {
		secondary = (secondary + 1) % catalogSize
	}
	return primary, secondary
}
