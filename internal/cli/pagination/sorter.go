package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/footprint/internal/emissions"
)

// Activity sort fields.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldFactor   = "factor"
)

// ActivitySorter orders catalog activities by one field.
type ActivitySorter struct {
	validFields map[string]bool
}

// NewActivitySorter creates an ActivitySorter with the supported fields.
func NewActivitySorter() *ActivitySorter {
	return &ActivitySorter{
		validFields: map[string]bool{
			FieldID:       true,
			FieldName:     true,
			FieldCategory: true,
			FieldFactor:   true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *ActivitySorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *ActivitySorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate reports an unknown field, listing the valid ones.
func (s *ActivitySorter) Validate(field string) error {
	if field == DefaultSortField || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a sorted copy of activities. An empty or unknown field keeps
// registration order. Ties keep registration order in both directions.
func (s *ActivitySorter) Sort(activities []emissions.Activity, field, order string) []emissions.Activity {
	sorted := make([]emissions.Activity, len(activities))
	copy(sorted, activities)
	if !s.IsValidField(field) {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i], sorted[j], field)
		if order == SortOrderDesc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func compare(a, b emissions.Activity, field string) int {
	switch field {
	case FieldName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case FieldCategory:
		return int(a.Category) - int(b.Category)
	case FieldFactor:
		switch fa, fb := a.Factor(), b.Factor(); {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(a.ID, b.ID)
	}
}
