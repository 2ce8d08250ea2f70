package gpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeNameEmpty(t *testing.T) {
	var name [NameLength]uint16
	assert.Equal(t, "", DecodeName(name))
}

func TestDecodeNameSkipsEmbeddedZeros(t *testing.T) {
	var name [NameLength]uint16
	// zeros interleaved with ASCII must be dropped, not treated as a
	// terminator
	name[0] = 's'
	name[2] = 'y'
	name[4] = 's'
	assert.Equal(t, "sys", DecodeName(name))
}

func TestDecodeNameMasksTo7Bits(t *testing.T) {
	var name [NameLength]uint16
	name[0] = 0x1F5 // low 7 bits: 0x75 'u'
	name[1] = 0x80  // low 7 bits are zero: dropped entirely
	name[2] = 'x'
	assert.Equal(t, "ux", DecodeName(name))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	name := EncodeName("system-a")
	assert.Equal(t, "system-a", DecodeName(name))
	assert.Equal(t, "system-a", nameString(name))
}

func TestEncodeNameTruncates(t *testing.T) {
	long := "0123456789012345678901234567890123456789" // 40 chars
	name := EncodeName(long)
	assert.Equal(t, long[:NameLength], DecodeName(name))
}

func TestNameStringStopsAtFirstZero(t *testing.T) {
	var name [NameLength]uint16
	name[0] = 'a'
	name[2] = 'b' // unreachable past the zero at index 1
	assert.Equal(t, "a", nameString(name))
}
