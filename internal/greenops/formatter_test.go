package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "small number no separators", n: 123, want: "123"},
		{name: "four digits with separator", n: 1234, want: "1,234"},
		{name: "millions", n: 1234567, want: "1,234,567"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative number", n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{name: "two decimals with separator", f: 1234.567, precision: 2, want: "1,234.57"},
		{name: "zero precision", f: 1234.567, precision: 0, want: "1,235"},
		{name: "small value", f: 4.7827, precision: 2, want: "4.78"},
		{name: "zero", f: 0, precision: 2, want: "0.00"},
		{name: "negative", f: -1234.5, precision: 2, want: "-1,234.50"},
		{name: "negative rounding to zero drops sign", f: -0.001, precision: 2, want: "0.00"},
		{name: "negative precision treated as zero", f: 9.6, precision: -1, want: "10"},
		{name: "four decimals", f: 0.022365, precision: 4, want: "0.0224"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want string
	}{
		{name: "below threshold uses comma format", n: 999999, want: "999,999"},
		{name: "exactly one million", n: 1000000, want: "~1.0 million"},
		{name: "millions with decimal", n: 5200000, want: "~5.2 million"},
		{name: "exactly one billion", n: 1000000000, want: "~1.0 billion"},
		{name: "zero", n: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLarge(tt.n))
		})
	}
}

func TestFormatEmissions(t *testing.T) {
	assert.Equal(t, "4.78 kg CO2-eq", FormatEmissions(4.7827, "kg", 2))
	assert.Equal(t, "4,782.70 g CO2-eq", FormatEmissions(4.7827, "g", 2))
	assert.Equal(t, "1.500 t CO2-eq", FormatEmissions(1500, "t", 3))
	assert.Equal(t, "4.78 kg CO2-eq", FormatEmissions(4.7827, "stone", 2), "unknown unit falls back to kg")
}
