package greenops

import (
	"math"
	"strings"
)

// CanonicalUnit maps a unit string to one of g, kg, t or lb. Matching is
// case-insensitive and accepts CO2e-suffixed forms such as "kgCO2e".
func CanonicalUnit(unit string) (string, error) {
	u := strings.ToLower(strings.ReplaceAll(unit, " ", ""))
	u = strings.TrimSuffix(u, "co2e")
	u = strings.TrimSuffix(u, "co2-eq")
	switch u {
	case "g":
		return UnitGrams, nil
	case "kg", "":
		return UnitKilograms, nil
	case "t":
		return UnitTons, nil
	case "lb":
		return UnitPounds, nil
	default:
		return "", ErrInvalidUnit
	}
}

// unitFactor returns the kilograms per one of unit.
func unitFactor(unit string) (float64, error) {
	canonical, err := CanonicalUnit(unit)
	if err != nil {
		return 0, err
	}
	switch canonical {
	case UnitGrams:
		return GramsToKg, nil
	case UnitTons:
		return TonsToKg, nil
	case UnitPounds:
		return PoundsToKg, nil
	default:
		return KgToKg, nil
	}
}

// ToKg converts value in unit to kilograms.
//
// Returns ErrInvalidUnit for an unknown unit, ErrNegativeValue for negative
// input and ErrCalculationOverflow for NaN, infinite or overflowing values.
func ToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	factor, err := unitFactor(unit)
	if err != nil {
		return 0, err
	}
	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// FromKg converts kilograms to unit. Negative input is allowed so that
// differences can be displayed.
func FromKg(kg float64, unit string) (float64, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return 0, ErrCalculationOverflow
	}
	factor, err := unitFactor(unit)
	if err != nil {
		return 0, err
	}
	result := kg / factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// IsRecognizedUnit reports whether unit is accepted by CanonicalUnit.
func IsRecognizedUnit(unit string) bool {
	_, err := CanonicalUnit(unit)
	return err == nil
}

// UnitLabel returns the display label for a canonical unit, e.g. "kg CO2-eq".
func UnitLabel(unit string) string {
	canonical, err := CanonicalUnit(unit)
	if err != nil {
		canonical = DefaultUnit
	}
	return canonical + " CO2-eq"
}
