// Package assumptions documents the simplifications behind the emission
// factors and points to the public database they were taken from.
package assumptions

import (
	"fmt"
	"strings"
)

// Reference database the emission factors were derived from.
const (
	DatabaseName = "ProBas (process-oriented base data for environmental management instruments)"
	DatabaseURL  = "https://www.probas.umweltbundesamt.de/einblick/#/"
)

// Entry is one modelled process and the simplification applied to it.
type Entry struct {
	Process    string `json:"process"`
	Assumption string `json:"assumption"`
}

// Section groups entries under a heading.
type Section struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Sections returns the assumption table in display order.
func Sections() []Section {
	return []Section{
		{
			Name: "Energy supply",
			Entries: []Entry{
				{
					Process: "Household electricity, German average",
					Assumption: "Annual electricity use of a one-person household in Germany by building type, " +
						"2023 (kWh), Statista, 2023",
				},
				{
					Process: "Space heating, German average",
					Assumption: "Household of three or more; per-capita energy use for housing and heating, " +
						"2019, Destatis, 2019",
				},
				{
					Process:    "Hot water, German average",
					Assumption: "3.5 kWh per shower; water heated from 10 °C to 40 °C at 13 l per minute",
				},
				{
					Process: "Cooking on an electric stove",
					Assumption: "4.19 kJ raise 1 kg of water by 1 °C; boiling potatoes takes about 500 kJ " +
						"(0.139 kWh)",
				},
			},
		},
		{
			Name: "Transport processes",
			Entries: []Entry{
				{Process: "City bus"},
				{Process: "Diesel car, small", Assumption: "Diesel and petrol averaged, small car"},
				{Process: "Electric car, small", Assumption: "Small car"},
				{Process: "Petrol car, small", Assumption: "Diesel and petrol averaged, small car"},
				{Process: "Regional train, diesel locomotive", Assumption: "Diesel locomotive"},
				{Process: "Bicycle"},
			},
		},
		{
			Name: "Food",
			Entries: []Entry{
				{Process: "Vegetables"},
				{Process: "Rice"},
				{Process: "Apples", Assumption: "One apple weighs 200 g"},
				{Process: "Bananas", Assumption: "One banana weighs 110 g"},
				{Process: "Beef"},
				{Process: "Chicken"},
				{Process: "Imported fish"},
				{Process: "Bread", Assumption: "One slice of bread weighs 35 g"},
				{Process: "Eggs", Assumption: "One egg weighs 60 g"},
				{Process: "Cheese", Assumption: "One slice of cheese weighs 30 g"},
				{Process: "Milk"},
				{Process: "Tap drinking water", Assumption: "Drinking water only"},
			},
		},
		{
			Name: "Bio-based products",
			Entries: []Entry{
				{
					Process:    "Paper production",
					Assumption: "Books and newspapers averaged, 350 g per book",
				},
				{
					Process:    "Cotton T-shirt",
					Assumption: "One T-shirt weighs 250 g, transport neglected",
				},
				{
					Process:    "Newsprint",
					Assumption: "Books and newspapers averaged, 350 g per book",
				},
			},
		},
	}
}

// Find returns the section whose name matches, ignoring case. A unique
// prefix is accepted ("energy" finds "Energy supply").
func Find(name string) (Section, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	var matches []Section
	for _, s := range Sections() {
		got := strings.ToLower(s.Name)
		if got == want {
			return s, nil
		}
		if want != "" && strings.HasPrefix(got, want) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Section{}, fmt.Errorf("unknown assumptions section %q (have: %s)", name, strings.Join(Names(), ", "))
	default:
		return Section{}, fmt.Errorf("ambiguous assumptions section %q", name)
	}
}

// Names returns the section names in display order.
func Names() []string {
	sections := Sections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}
