package greenops

import (
	"fmt"
	"math"
	"strings"
)

// equivalencySpec pairs an equivalency type with its factor and label.
type equivalencySpec struct {
	kind   EquivalencyType
	factor float64
	label  string
}

//nolint:gochecknoglobals // Fixed lookup table.
var equivalencySpecs = []equivalencySpec{
	{kind: EquivalencyMilesDriven, factor: MilesDrivenFactor, label: "miles driven"},
	{kind: EquivalencySmartphonesCharged, factor: SmartphoneChargeFactor, label: "smartphones charged"},
	{kind: EquivalencyTreeSeedlings, factor: TreeSeedlingFactor, label: "tree seedlings grown for 10 years"},
	{kind: EquivalencyHomeDays, factor: HomeDayFactor, label: "days of home electricity"},
}

// Calculate computes the everyday equivalencies of kg CO2-eq.
//
// Totals below MinEquivalencyThresholdKg return an empty output with
// InputKg set and no error. Negative totals return ErrNegativeValue and
// NaN or infinite totals return ErrCalculationOverflow, both with an empty
// output.
func Calculate(kg float64) (EquivalencyOutput, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencySpecs))
	for _, spec := range equivalencySpecs {
		v := kg / spec.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           spec.kind,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          spec.label,
		})
	}

	miles := results[EquivalencyMilesDriven].FormattedValue
	phones := results[EquivalencySmartphonesCharged].FormattedValue

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// formatEquivalencyValue rounds to a whole number with separators, switching
// to the abbreviated million/billion form for large values.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return strings.TrimPrefix(FormatLarge(v), "~")
	}
	return FormatNumber(int64(math.Round(v)))
}
