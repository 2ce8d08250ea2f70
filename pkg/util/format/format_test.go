package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{1 << 10, "1KB"},
		{1536, "1.50KB"},
		{1 << 20, "1MB"},
		{25600, "25KB"},
		{3 << 30, "3GB"},
		{1 << 40, "1TB"},
		{(1 << 40) + (1 << 39), "1.50TB"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatBytes(c.in), "FormatBytes(%d)", c.in)
	}
}
