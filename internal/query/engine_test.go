package query

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID         int64
	Name       string
	Mobile     string
	Department string
	Age        int
	CPR        bool
}

func (r testRow) QueryField(name string) (string, bool) {
	switch name {
	case "name":
		return r.Name, true
	case "mobile_number":
		return r.Mobile, true
	case "department":
		return r.Department, true
	case "age":
		return strconv.Itoa(r.Age), true
	case "cpr_training":
		return strconv.FormatBool(r.CPR), true
	}
	return "", false
}

var testConfig = Config{
	SearchableFields: []string{"name", "mobile_number", "department"},
	FilterableFields: []string{"department", "cpr_training"},
	SortableFields:   []string{"name", "age"},
}

func sampleRows() []testRow {
	return []testRow{
		{ID: 1, Name: "Ram Kumar", Mobile: "9876543210", Department: "Cardiology", Age: 42, CPR: true},
		{ID: 2, Name: "Sita Devi", Mobile: "9123456789", Department: "Pediatrics", Age: 35, CPR: false},
		{ID: 3, Name: "Vikram Singh", Mobile: "9988776655", Department: "Cardiology", Age: 29, CPR: true},
		{ID: 4, Name: "Priya Raman", Mobile: "9000011111", Department: "Orthopedics", Age: 51, CPR: false},
	}
}

func TestApplySearchCaseInsensitiveSubstring(t *testing.T) {
	rows := sampleRows()

	// "Ram Kumar", "Vikram Singh" and "Priya Raman" all contain "ram"
	for _, needle := range []string{"ram", "RAM", "Ram"} {
		result := Apply(rows, testConfig, needle, nil)
		require.Len(t, result.Matches, 3, "needle %q", needle)
		assert.Equal(t, int64(1), result.Matches[0].ID)
		assert.Equal(t, int64(3), result.Matches[1].ID)
		assert.Equal(t, int64(4), result.Matches[2].ID)
	}

	// interior substring with a space
	result := Apply(rows, testConfig, "am ku", nil)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, int64(1), result.Matches[0].ID)
}

func TestApplySearchMatchesAnySearchableField(t *testing.T) {
	result := Apply(sampleRows(), testConfig, "912345", nil)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Sita Devi", result.Matches[0].Name)

	result = Apply(sampleRows(), testConfig, "pediat", nil)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, int64(2), result.Matches[0].ID)
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	rows := sampleRows()

	result := Apply(rows, testConfig, "", map[string]string{"department": "Cardiology"})
	require.Len(t, result.Matches, 2)

	result = Apply(rows, testConfig, "", map[string]string{
		"department":   "Cardiology",
		"cpr_training": "true",
	})
	require.Len(t, result.Matches, 2)

	result = Apply(rows, testConfig, "vikram", map[string]string{"department": "Cardiology"})
	require.Len(t, result.Matches, 1)
	assert.Equal(t, int64(3), result.Matches[0].ID)

	// filter and search both active but disjoint
	result = Apply(rows, testConfig, "sita", map[string]string{"department": "Cardiology"})
	assert.Empty(t, result.Matches)
}

func TestApplyFilterExactMatchOnly(t *testing.T) {
	// substring of a filter value must not match
	result := Apply(sampleRows(), testConfig, "", map[string]string{"department": "Cardio"})
	assert.Empty(t, result.Matches)
}

func TestApplyInactiveFilters(t *testing.T) {
	rows := sampleRows()

	// empty value is inactive
	result := Apply(rows, testConfig, "", map[string]string{"department": ""})
	assert.Len(t, result.Matches, len(rows))

	// undeclared field is inactive
	result = Apply(rows, testConfig, "", map[string]string{"age": "42"})
	assert.Len(t, result.Matches, len(rows))
}

func TestApplyBooleanFilter(t *testing.T) {
	result := Apply(sampleRows(), testConfig, "", map[string]string{"cpr_training": "false"})
	require.Len(t, result.Matches, 2)
	assert.Equal(t, int64(2), result.Matches[0].ID)
	assert.Equal(t, int64(4), result.Matches[1].ID)
}

func TestApplyEmptyQueryReturnsAllInOrder(t *testing.T) {
	rows := sampleRows()
	result := Apply(rows, testConfig, "", nil)
	require.Len(t, result.Matches, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].ID, result.Matches[i].ID)
	}
}

func TestApplyTotalCountMatchesLen(t *testing.T) {
	cases := []struct {
		search  string
		filters map[string]string
	}{
		{"", nil},
		{"ram", nil},
		{"", map[string]string{"department": "Cardiology"}},
		{"nomatch", nil},
	}
	for _, tc := range cases {
		result := Apply(sampleRows(), testConfig, tc.search, tc.filters)
		assert.Equal(t, len(result.Matches), result.TotalCount)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	result := Apply([]testRow(nil), testConfig, "anything", map[string]string{"department": "Cardiology"})
	assert.Empty(t, result.Matches)
	assert.Zero(t, result.TotalCount)
}

func TestSortByNumericField(t *testing.T) {
	sorted := SortBy(sampleRows(), testConfig, "age")
	ages := make([]int, 0, len(sorted))
	for _, r := range sorted {
		ages = append(ages, r.Age)
	}
	assert.Equal(t, []int{29, 35, 42, 51}, ages)
}

func TestSortByStringFieldCaseInsensitive(t *testing.T) {
	rows := []testRow{
		{ID: 1, Name: "vikram"},
		{ID: 2, Name: "Anita"},
		{ID: 3, Name: "ram"},
	}
	sorted := SortBy(rows, testConfig, "name")
	assert.Equal(t, []int64{2, 3, 1}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortByStableOnTies(t *testing.T) {
	rows := []testRow{
		{ID: 1, Name: "Same", Age: 30},
		{ID: 2, Name: "Same", Age: 30},
		{ID: 3, Name: "Same", Age: 30},
	}
	sorted := SortBy(rows, testConfig, "age")
	assert.Equal(t, []int64{1, 2, 3}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortByUnknownFieldReturnsInputOrder(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, rows, SortBy(rows, testConfig, "mobile_number"))
	assert.Equal(t, rows, SortBy(rows, testConfig, ""))
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	firstBefore := rows[0].ID
	_ = SortBy(rows, testConfig, "age")
	assert.Equal(t, firstBefore, rows[0].ID)
}
