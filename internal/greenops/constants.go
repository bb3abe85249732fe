package greenops

// Equivalency factors, kg CO2-eq per unit of the everyday comparison.
// Source: EPA Greenhouse Gas Equivalencies Calculator (2024 edition).
//
//	equivalency = kg_CO2e / factor
const (
	// MilesDrivenFactor is kg CO2-eq per mile in an average passenger car.
	MilesDrivenFactor = 0.192

	// SmartphoneChargeFactor is kg CO2-eq per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kg CO2-eq absorbed by one tree seedling grown for 10 years.
	TreeSeedlingFactor = 60.0

	// HomeDayFactor is kg CO2-eq of one day of average home electricity use.
	HomeDayFactor = 18.3
)

// Conversion factors from each display unit to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Canonical display units.
const (
	UnitGrams     = "g"
	UnitKilograms = "kg"
	UnitTons      = "t"
	UnitPounds    = "lb"

	// DefaultUnit is the unit emissions are calculated in.
	DefaultUnit = UnitKilograms
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest total that gets equivalencies.
	// Below it the comparisons round to zero and say nothing.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
