// Package greenops turns kg CO2-eq figures into display-ready text: unit
// conversion (g, kg, t, lb), thousand-separated number formatting and
// relatable equivalencies such as "miles driven" or "smartphones charged".
package greenops

import "fmt"

// EquivalencyType is a kind of everyday comparison.
type EquivalencyType int

const (
	// EquivalencyMilesDriven compares to miles driven in an average car.
	EquivalencyMilesDriven EquivalencyType = iota
	// EquivalencySmartphonesCharged compares to full smartphone charges.
	EquivalencySmartphonesCharged
	// EquivalencyTreeSeedlings compares to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings
	// EquivalencyHomeDays compares to days of home electricity use.
	EquivalencyHomeDays
)

// String returns the type name.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText encodes the type name.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes a type name written by MarshalText.
func (e *EquivalencyType) UnmarshalText(text []byte) error {
	for _, spec := range equivalencySpecs {
		if spec.kind.String() == string(text) {
			*e = spec.kind
			return nil
		}
	}
	return fmt.Errorf("unknown equivalency type %q", text)
}

// EquivalencyResult is one calculated comparison.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// Text renders the result as "~781 miles driven".
func (r EquivalencyResult) Text() string {
	return fmt.Sprintf("~%s %s", r.FormattedValue, r.Label)
}

// EquivalencyOutput holds all comparisons for one emission total.
type EquivalencyOutput struct {
	// InputKg is the total the comparisons were computed from.
	InputKg float64 `json:"input_kg"`

	// Results are in EquivalencyType order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the one-line prose form, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form, e.g. "(≈ 781 mi, 18,248 phones)".
	CompactText string `json:"compact_text"`

	// IsEmpty is true when the total was too small for comparisons.
	IsEmpty bool `json:"is_empty"`
}

// Result returns the comparison of the given type.
func (o EquivalencyOutput) Result(t EquivalencyType) (EquivalencyResult, bool) {
	for _, r := range o.Results {
		if r.Type == t {
			return r, true
		}
	}
	return EquivalencyResult{}, false
}
