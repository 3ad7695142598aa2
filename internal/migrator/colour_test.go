package migrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourHex(t *testing.T) {
	tests := []struct {
		name   string
		colour int64
		want   string
	}{
		{"black", 0, "0xff000000"},
		{"white from two's complement", -1, "0xffffffff"},
		{"green", 0x00FF00, "0xff00ff00"},
		{"negative ARGB keeps low 24 bits", -16776961, "0xff0000ff"},
		{"alpha bits are masked", 0x7F123456, "0xff123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, colourHex(tt.colour))
		})
	}
}
