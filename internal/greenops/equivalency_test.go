package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		kg          float64
		wantMiles   float64
		wantPhones  float64
		wantTrees   float64
		wantDays    float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "150 kg reference value",
			kg:         150,
			wantMiles:  781.25,   // 150 / 0.192
			wantPhones: 18248.18, // 150 / 0.00822
			wantTrees:  2.5,      // 150 / 60
			wantDays:   8.1967,   // 150 / 18.3
		},
		{
			name:       "exactly at threshold",
			kg:         1,
			wantMiles:  5.208333,
			wantPhones: 121.65,
			wantTrees:  0.016667,
			wantDays:   0.054645,
		},
		{
			name:        "below threshold returns empty",
			kg:          0.5,
			wantIsEmpty: true,
		},
		{
			name:        "zero returns empty",
			kg:          0,
			wantIsEmpty: true,
		},
		{
			name:    "negative is an error",
			kg:      -10,
			wantErr: ErrNegativeValue,
		},
		{
			name:    "NaN is an overflow",
			kg:      math.NaN(),
			wantErr: ErrCalculationOverflow,
		},
		{
			name:    "infinity is an overflow",
			kg:      math.Inf(1),
			wantErr: ErrCalculationOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.kg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty, "IsEmpty should be true on error")
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				assert.InDelta(t, tt.kg, got.InputKg, 1e-12)
				assert.Empty(t, got.Results)
				return
			}

			assert.False(t, got.IsEmpty)
			require.Len(t, got.Results, 4)

			want := map[EquivalencyType]float64{
				EquivalencyMilesDriven:        tt.wantMiles,
				EquivalencySmartphonesCharged: tt.wantPhones,
				EquivalencyTreeSeedlings:      tt.wantTrees,
				EquivalencyHomeDays:           tt.wantDays,
			}
			for kind, value := range want {
				r, ok := got.Result(kind)
				require.True(t, ok, kind.String())
				assert.InDelta(t, value, r.Value, value*0.01, kind.String())
				assert.NotEmpty(t, r.Label)
			}
		})
	}
}

func TestCalculate_DisplayText(t *testing.T) {
	got, err := Calculate(150)
	require.NoError(t, err)

	assert.Equal(t, "Equivalent to driving ~781 miles or charging ~18,248 smartphones", got.DisplayText)
	assert.Equal(t, "(≈ 781 mi, 18,248 phones)", got.CompactText)

	trees, ok := got.Result(EquivalencyTreeSeedlings)
	require.True(t, ok)
	assert.Equal(t, "~3 tree seedlings grown for 10 years", trees.Text())
}

func TestCalculate_LargeNumbers(t *testing.T) {
	got, err := Calculate(10_000_000)
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "million")
	assert.NotContains(t, got.DisplayText, "~~")

	got, err = Calculate(1_000_000_000)
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "billion")
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "HomeDays", EquivalencyHomeDays.String())
	assert.Equal(t, "EquivalencyType(42)", EquivalencyType(42).String())

	text, err := EquivalencyTreeSeedlings.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "TreeSeedlings", string(text))

	var decoded EquivalencyType
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, EquivalencyTreeSeedlings, decoded)
	require.Error(t, decoded.UnmarshalText([]byte("Flights")))
}

func BenchmarkCalculate(b *testing.B) {
	for b.Loop() {
		_, _ = Calculate(150)
	}
}
