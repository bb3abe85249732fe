package emissions

import "sync"

// Activity IDs of the built-in catalog.
const (
	ElectricityHeating = "electricity_heating"
	HotWater           = "hot_water"
	Cooking            = "cooking"
	Bus                = "bus"
	CarCombustion      = "car_combustion"
	CarElectric        = "car_electric"
	Train              = "train"
	Bicycle            = "bicycle"
	OrderedClothing    = "ordered_clothing"
	Vegetables         = "vegetables"
	Rice               = "rice"
	Apples             = "apples"
	Bananas            = "bananas"
	Beef               = "beef"
	Chicken            = "chicken"
	Fish               = "fish"
	Bread              = "bread"
	Eggs               = "eggs"
	Cheese             = "cheese"
	DrinkingWater      = "drinking_water"
	NewspapersBooks    = "newspapers_books"
)

// builtinDefinitions is the emission factor table. The literals come from
// the ProBas process database combined with the everyday-unit assumptions
// listed in package assumptions; changing any of them changes the answer.
func builtinDefinitions() []Definition {
	return []Definition{
		{
			ID: ElectricityHeating, Name: "Electricity & heating", Unit: "days",
			Prompt:  "How many days long is the period you are looking at?",
			Convert: func(x float64) float64 { return x*4.7*0.405 + x*12.2*0.236 },
		},
		{
			ID: HotWater, Name: "Hot water (showering)", Unit: "showers",
			Prompt:  "How often did you shower in this period?",
			Convert: func(x float64) float64 { return x*3.5 + x*0.000242 },
		},
		{
			ID: Cooking, Name: "Cooking", Unit: "meals",
			Prompt:  "How often did you cook a hot meal in this period?",
			Convert: func(x float64) float64 { return x * 0.139 * 0.601 },
		},
		{
			ID: Bus, Name: "Bus", Unit: "km",
			Prompt:  "How many kilometers did you travel by bus?",
			Convert: func(x float64) float64 { return x * 0.0555 },
		},
		{
			ID: CarCombustion, Name: "Car (combustion)", Unit: "km",
			Prompt:  "How many kilometers did you drive in a combustion-engine car?",
			Convert: func(x float64) float64 { return x * 0.16 },
		},
		{
			ID: CarElectric, Name: "Car (electric)", Unit: "km",
			Prompt:  "How many kilometers did you drive in an electric car?",
			Convert: func(x float64) float64 { return x * 0.0479 },
		},
		{
			ID: Train, Name: "Train", Unit: "km",
			Prompt:  "How many kilometers did you travel by train?",
			Convert: func(x float64) float64 { return x * 0.071 },
		},
		{
			ID: Bicycle, Name: "Bicycle", Unit: "km",
			Prompt:  "How many kilometers did you ride a bicycle?",
			Convert: func(x float64) float64 { return x * 0.00407 },
		},
		{
			ID: OrderedClothing, Name: "Ordered clothing", Unit: "items",
			Prompt:  "How many items of clothing did you order?",
			Convert: func(x float64) float64 { return x * 0.25 * 36.6 },
		},
		{
			ID: Vegetables, Name: "Vegetables", Unit: "kg",
			Prompt:  "How many kilograms of vegetables did you eat?",
			Convert: func(x float64) float64 { return x * 0.137 },
		},
		{
			ID: Rice, Name: "Rice", Unit: "kg",
			Prompt:  "How many kilograms of rice did you eat?",
			Convert: func(x float64) float64 { return x * 4.85 },
		},
		{
			ID: Apples, Name: "Apples", Unit: "apples",
			Prompt:  "How many apples did you eat?",
			Convert: func(x float64) float64 { return x * 0.879 / 5 },
		},
		{
			ID: Bananas, Name: "Bananas", Unit: "bananas",
			Prompt:  "How many bananas did you eat?",
			Convert: func(x float64) float64 { return x * 0.0392 / 8 },
		},
		{
			ID: Beef, Name: "Beef", Unit: "kg",
			Prompt:  "How many kilograms of beef did you eat?",
			Convert: func(x float64) float64 { return x * 26 },
		},
		{
			ID: Chicken, Name: "Chicken", Unit: "kg",
			Prompt:  "How many kilograms of chicken did you eat?",
			Convert: func(x float64) float64 { return x * 13.1 },
		},
		{
			ID: Fish, Name: "Fish", Unit: "kg",
			Prompt:  "How many kilograms of fish did you eat?",
			Convert: func(x float64) float64 { return x * 2.46 },
		},
		{
			ID: Bread, Name: "Bread", Unit: "slices",
			Prompt:  "How many slices of bread did you eat?",
			Convert: func(x float64) float64 { return x * 35 / 1000 * 0.639 },
		},
		{
			ID: Eggs, Name: "Eggs", Unit: "eggs",
			Prompt:  "How many eggs did you eat?",
			Convert: func(x float64) float64 { return x * 60 / 1000 * 1.22 },
		},
		{
			ID: Cheese, Name: "Cheese", Unit: "slices",
			Prompt:  "How many slices of cheese did you eat?",
			Convert: func(x float64) float64 { return x * 30 / 1000 * 8.18 },
		},
		{
			ID: DrinkingWater, Name: "Drinking water", Unit: "liters",
			Prompt:  "How many liters of water did you drink?",
			Convert: func(x float64) float64 { return x * 0.000242 },
		},
		{
			ID: NewspapersBooks, Name: "Newspapers/books", Unit: "items",
			Prompt:  "How many newspapers/books did you buy?",
			Convert: func(x float64) float64 { return x * 350 / 1000 * (1.34 + 1.27) / 2 },
		},
	}
}

// builtinMembers assigns every built-in activity to its category.
func builtinMembers() map[Category][]string {
	return map[Category][]string{
		CategoryFood: {
			Vegetables, Rice, Apples, Bananas, Beef, Chicken, Fish, Bread, Eggs, Cheese,
		},
		CategoryTransport:   {Bus, CarCombustion, CarElectric, Train, Bicycle},
		CategoryConsumption: {OrderedClothing, NewspapersBooks},
		CategoryHousehold:   {ElectricityHeating, HotWater, Cooking, DrinkingWater},
	}
}

// defaultCatalog is built on first use. A partition error in the built-in
// tables is a programming defect and panics.
//
//nolint:gochecknoglobals // Immutable catalog shared by all callers.
var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(builtinDefinitions(), builtinMembers())
	if err != nil {
		panic("emissions: invalid built-in catalog: " + err.Error())
	}
	return c
})

// Default returns the built-in activity catalog.
func Default() *Catalog {
	return defaultCatalog()
}
