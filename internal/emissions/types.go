// Package emissions converts everyday activity quantities into estimated
// CO2-equivalent emissions (kg CO2-eq).
//
// A Catalog holds the fixed set of activities, each with a linear emission
// factor and exactly one lifestyle Category. Estimate applies the catalog to
// a set of raw user-entered quantities and aggregates the results per
// category and in total. Quantities that cannot be parsed as numbers count
// as zero; they never fail a calculation.
package emissions

import (
	"fmt"
	"strings"
)

// Category is one of the four fixed lifestyle groupings used to aggregate
// emissions.
type Category int

const (
	// CategoryFood covers food and drink consumed.
	CategoryFood Category = iota
	// CategoryTransport covers distances travelled.
	CategoryTransport
	// CategoryConsumption covers purchased goods.
	CategoryConsumption
	// CategoryHousehold covers energy and water used at home.
	CategoryHousehold
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryTransport, CategoryConsumption, CategoryHousehold}
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryTransport:
		return "Transport"
	case CategoryConsumption:
		return "Consumption"
	case CategoryHousehold:
		return "Household"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Key returns the lowercase identifier used in flags and structured output.
func (c Category) Key() string {
	return strings.ToLower(c.String())
}

// Valid reports whether c is one of the four defined categories.
func (c Category) Valid() bool {
	return c >= CategoryFood && c <= CategoryHousehold
}

// MarshalText encodes the category as its lowercase key.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText decodes a category key (case-insensitive).
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category from its key or display name,
// ignoring case and surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	want := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(want, c.Key()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ConversionFunc maps a quantity to kg CO2-eq. Implementations are pure.
type ConversionFunc func(quantity float64) float64

// Definition describes one activity before it is assigned to a category.
type Definition struct {
	// ID is the stable identifier used in flags and files (e.g. "car_combustion").
	ID string
	// Name is the human-readable name (e.g. "Car (combustion)").
	Name string
	// Prompt is the question shown when collecting the quantity.
	Prompt string
	// Unit names what the quantity counts (km, kg, slices, ...).
	Unit string
	// Convert turns the quantity into kg CO2-eq.
	Convert ConversionFunc
}

// Activity is a registered activity with its category.
type Activity struct {
	ID       string
	Name     string
	Prompt   string
	Unit     string
	Category Category
	convert  ConversionFunc
}

// Emissions parses raw and returns the resulting kg CO2-eq.
// Unparseable input yields 0.
func (a Activity) Emissions(raw string) float64 {
	q, ok := ParseQuantity(raw)
	if !ok {
		return 0
	}
	return a.convert(q)
}

// EmissionsFor applies the activity's conversion to an already parsed quantity.
func (a Activity) EmissionsFor(quantity float64) float64 {
	return a.convert(quantity)
}

// Factor is the emissions of one unit of the activity.
func (a Activity) Factor() float64 {
	return a.convert(1)
}
