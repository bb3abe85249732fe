package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli/pagination"
	"github.com/rshade/footprint/internal/emissions"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{input: "", wantField: "", wantOrder: "asc"},
		{input: "factor", wantField: "factor", wantOrder: "asc"},
		{input: "factor:DESC", wantField: "factor", wantOrder: "desc"},
		{input: " name : asc ", wantField: "name", wantOrder: "asc"},
		{input: "a:b:c", wantErr: pagination.ErrInvalidSortFormat},
		{input: ":desc", wantErr: pagination.ErrEmptySortField},
		{input: "name:up", wantErr: pagination.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := pagination.ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestParams(t *testing.T) {
	require.NoError(t, pagination.NewParams().Validate())
	require.ErrorIs(t, pagination.Params{Limit: -1}.Validate(), pagination.ErrInvalidLimit)
	require.ErrorIs(t, pagination.Params{Offset: -1}.Validate(), pagination.ErrInvalidOffset)

	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, items, pagination.Apply(pagination.Params{}, items))
	assert.Equal(t, []int{1, 2}, pagination.Apply(pagination.Params{Limit: 2}, items))
	assert.Equal(t, []int{4, 5}, pagination.Apply(pagination.Params{Offset: 3, Limit: 10}, items))
	assert.Empty(t, pagination.Apply(pagination.Params{Offset: 5}, items))
}

func TestActivitySorter(t *testing.T) {
	s := pagination.NewActivitySorter()
	activities := emissions.Default().Activities()

	assert.Equal(t, []string{"category", "factor", "id", "name"}, s.GetValidFields())
	require.NoError(t, s.Validate(""))
	require.ErrorIs(t, s.Validate("colour"), pagination.ErrInvalidSortField)

	byFactor := s.Sort(activities, pagination.FieldFactor, pagination.SortOrderDesc)
	require.Len(t, byFactor, len(activities))
	assert.Equal(t, emissions.Beef, byFactor[0].ID)
	for i := 1; i < len(byFactor); i++ {
		assert.GreaterOrEqual(t, byFactor[i-1].Factor(), byFactor[i].Factor())
	}

	byID := s.Sort(activities, pagination.FieldID, pagination.SortOrderAsc)
	assert.Equal(t, emissions.Apples, byID[0].ID)

	byCategory := s.Sort(activities, pagination.FieldCategory, pagination.SortOrderAsc)
	assert.Equal(t, emissions.CategoryFood, byCategory[0].Category)
	assert.Equal(t, emissions.Vegetables, byCategory[0].ID, "ties keep registration order")

	unchanged := s.Sort(activities, "colour", pagination.SortOrderAsc)
	assert.Equal(t, activities, unchanged)
}
