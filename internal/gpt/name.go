package gpt

import "unicode/utf16"

// NameLength is the fixed number of UTF-16 code units in a partition
// name entry.
const NameLength = 36

// DecodeName flattens a fixed-width UTF-16 name field into printable
// ASCII. Each code unit is masked to its low 7 bits; zero-valued units
// are skipped rather than treated as a terminator, so names with
// embedded padding still come out whole. Non-ASCII characters are
// mangled to their low 7 bits.
func DecodeName(name [NameLength]uint16) string {
	out := make([]byte, 0, NameLength)
	for _, u := range name {
		c := byte(u & 0x7f)
		if c == 0 {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// EncodeName converts s into the fixed-width UTF-16 field, truncating
// anything beyond the 36 code unit capacity.
func EncodeName(s string) [NameLength]uint16 {
	var name [NameLength]uint16
	units := utf16.Encode([]rune(s))
	if len(units) > NameLength {
		units = units[:NameLength]
	}
	copy(name[:], units)
	return name
}

// nameString decodes the field as genuine UTF-16 up to the first zero
// unit. This is the faithful form handed to the table codec, as opposed
// to the lossy DecodeName used for display.
func nameString(name [NameLength]uint16) string {
	end := len(name)
	for i, u := range name {
		if u == 0 {
			end = i
			break
		}
	}
	return string(utf16.Decode(name[:end]))
}
