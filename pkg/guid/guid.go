package guid

import (
	"fmt"

	"github.com/google/uuid"
)

// GUID is a 128-bit identifier held in GPT on-disk byte order: the first
// three fields are little-endian, the last two are stored as written.
type GUID [16]byte

// Zero is the all-zero GUID, marking an unused entry.
var Zero GUID

// New returns a random GUID drawn from a cryptographically strong source.
func New() (GUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return Zero, fmt.Errorf("generating GUID: %w", err)
	}
	return fromUUID(u), nil
}

// Parse reads the canonical XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX text
// form, in either case, back into on-disk byte order. It is the exact
// inverse of String.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid GUID %q: %w", s, err)
	}
	return fromUUID(u), nil
}

// String renders the canonical uppercase mixed-endian text form: the
// 4-2-2 byte fields are byte-reversed for display, the 2 and 6 byte
// fields are printed in stored order.
func (g GUID) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g[3], g[2], g[1], g[0],
		g[5], g[4],
		g[7], g[6],
		g[8], g[9],
		g[10], g[11], g[12], g[13], g[14], g[15])
}

// IsZero reports whether g marks an unused entry.
func (g GUID) IsZero() bool {
	return g == Zero
}

// fromUUID converts from the textual byte order used by uuid.UUID to
// on-disk order by reversing the first three fields. The swap is its
// own inverse.
func fromUUID(u uuid.UUID) GUID {
	var g GUID
	g[0], g[1], g[2], g[3] = u[3], u[2], u[1], u[0]
	g[4], g[5] = u[5], u[4]
	g[6], g[7] = u[7], u[6]
	copy(g[8:], u[8:])
	return g
}
