package emissions

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultQuantity is the raw value assumed for activities without an observation.
const DefaultQuantity = "0"

// Observations maps an activity name or ID to the raw text the user entered.
type Observations map[string]string

// ActivityResult is the outcome of converting one observation.
type ActivityResult struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Unit     string   `json:"unit"`
	// Raw is the text that was converted.
	Raw string `json:"raw"`
	// Quantity is the parsed value, 0 when Valid is false.
	Quantity float64 `json:"quantity"`
	// Valid is false when Raw could not be parsed and 0 was substituted.
	Valid bool `json:"valid"`
	// Kg is the emissions in kg CO2-eq.
	Kg float64 `json:"kg_co2e"`
}

// CategoryResult holds the activities of one category and their sum.
type CategoryResult struct {
	Category   Category         `json:"category"`
	Activities []ActivityResult `json:"activities"`
	Total      float64          `json:"total_kg_co2e"`
}

// Result is a complete calculation pass.
type Result struct {
	// Categories always holds all four categories in display order.
	Categories []CategoryResult `json:"categories"`
	Total      float64          `json:"total_kg_co2e"`
}

// ParseQuantity parses raw as a real number. Surrounding whitespace is
// ignored. Empty, non-numeric, hexadecimal, NaN and infinite input report
// false.
func ParseQuantity(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || isHexLiteral(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// isHexLiteral reports whether s is a hexadecimal float such as "0x1p4".
// Only decimal notation counts as a quantity.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Estimate converts obs using every activity in the catalog. Activities
// missing from obs use DefaultQuantity. Keys of obs may be IDs or display
// names; a key that matches no activity is an error, listing every unknown
// key. Two keys naming the same activity are an error as well.
// Unparseable quantities are never an error.
func (c *Catalog) Estimate(obs Observations) (Result, error) {
	raw := make(map[string]string, len(obs))
	keyFor := make(map[string]string, len(obs))
	var unknown, dup []string
	for key, value := range obs {
		a, ok := c.Lookup(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if prev, seen := keyFor[a.ID]; seen {
			pair := []string{prev, key}
			sort.Strings(pair)
			dup = append(dup, strings.Join(pair, "/"))
			continue
		}
		keyFor[a.ID] = key
		raw[a.ID] = value
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownActivity, strings.Join(unknown, ", "))
	}
	if len(dup) > 0 {
		sort.Strings(dup)
		return Result{}, fmt.Errorf("%w: %s", ErrDuplicateActivity, strings.Join(dup, ", "))
	}

	results := make([]ActivityResult, 0, len(c.activities))
	for _, a := range c.activities {
		text, ok := raw[a.ID]
		if !ok {
			text = DefaultQuantity
		}
		results = append(results, convertOne(a, text))
	}
	return Aggregate(results), nil
}

func convertOne(a Activity, text string) ActivityResult {
	r := ActivityResult{
		ID:       a.ID,
		Name:     a.Name,
		Category: a.Category,
		Unit:     a.Unit,
		Raw:      text,
	}
	q, ok := ParseQuantity(text)
	if !ok {
		return r
	}
	r.Quantity = q
	r.Valid = true
	r.Kg = a.convert(q)
	return r
}

// Aggregate groups per-activity results by category and sums them. The
// result lists all four categories in display order; activities keep their
// relative input order within a category. The grand total is the sum of
// the category totals.
func Aggregate(results []ActivityResult) Result {
	cats := Categories()
	out := Result{Categories: make([]CategoryResult, len(cats))}
	pos := make(map[Category]int, len(cats))
	for i, c := range cats {
		out.Categories[i] = CategoryResult{Category: c, Activities: []ActivityResult{}}
		pos[c] = i
	}

	for _, r := range results {
		i, ok := pos[r.Category]
		if !ok {
			continue
		}
		out.Categories[i].Activities = append(out.Categories[i].Activities, r)
		out.Categories[i].Total += r.Kg
	}
	for _, cr := range out.Categories {
		out.Total += cr.Total
	}
	return out
}

// Category returns the result for one category.
func (r Result) Category(c Category) (CategoryResult, bool) {
	for _, cr := range r.Categories {
		if cr.Category == c {
			return cr, true
		}
	}
	return CategoryResult{}, false
}

// Activity returns the result for one activity ID.
func (r Result) Activity(id string) (ActivityResult, bool) {
	for _, cr := range r.Categories {
		for _, ar := range cr.Activities {
			if ar.ID == id {
				return ar, true
			}
		}
	}
	return ActivityResult{}, false
}

// Invalid returns the activities whose raw input was replaced by 0.
func (r Result) Invalid() []ActivityResult {
	var out []ActivityResult
	for _, cr := range r.Categories {
		for _, ar := range cr.Activities {
			if !ar.Valid {
				out = append(out, ar)
			}
		}
	}
	return out
}

// ByCategory returns category name -> activity name -> kg CO2-eq.
func (r Result) ByCategory() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(r.Categories))
	for _, cr := range r.Categories {
		m := make(map[string]float64, len(cr.Activities))
		for _, ar := range cr.Activities {
			m[ar.Name] = ar.Kg
		}
		out[cr.Category.String()] = m
	}
	return out
}
