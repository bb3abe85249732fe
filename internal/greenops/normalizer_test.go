package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "g", want: UnitGrams},
		{in: "KG", want: UnitKilograms},
		{in: "kgCO2e", want: UnitKilograms},
		{in: "kg CO2-eq", want: UnitKilograms},
		{in: "", want: UnitKilograms},
		{in: "tCO2e", want: UnitTons},
		{in: "lb", want: UnitPounds},
		{in: "oz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalUnit(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidUnit)
				assert.False(t, IsRecognizedUnit(tt.in))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsRecognizedUnit(tt.in))
		})
	}
}

func TestToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		wantKg  float64
		wantErr error
	}{
		{name: "grams", value: 1000, unit: "g", wantKg: 1},
		{name: "kilograms", value: 150, unit: "kg", wantKg: 150},
		{name: "tons", value: 1, unit: "t", wantKg: 1000},
		{name: "pounds", value: 1, unit: "lb", wantKg: 0.453592},
		{name: "zero", value: 0, unit: "kg", wantKg: 0},
		{name: "negative", value: -1, unit: "kg", wantErr: ErrNegativeValue},
		{name: "unknown unit", value: 1, unit: "oz", wantErr: ErrInvalidUnit},
		{name: "NaN", value: math.NaN(), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "overflow", value: math.MaxFloat64, unit: "t", wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, got, 1e-9)
		})
	}
}

func TestFromKg(t *testing.T) {
	got, err := FromKg(1, "g")
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 1e-9)

	got, err = FromKg(2500, "t")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)

	got, err = FromKg(-5, "kg")
	require.NoError(t, err)
	assert.InDelta(t, -5.0, got, 1e-12)

	_, err = FromKg(1, "oz")
	require.ErrorIs(t, err, ErrInvalidUnit)

	_, err = FromKg(math.Inf(1), "kg")
	require.ErrorIs(t, err, ErrCalculationOverflow)
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "kg CO2-eq", UnitLabel("kg"))
	assert.Equal(t, "t CO2-eq", UnitLabel("tCO2e"))
	assert.Equal(t, "kg CO2-eq", UnitLabel("bogus"))
}
