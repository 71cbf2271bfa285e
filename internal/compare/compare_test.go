package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

func intPtr(n int) *int { return &n }

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$950", FormatPrice(950))
	assert.Equal(t, "$25,000", FormatPrice(25000))
	assert.Equal(t, "$1,250,000", FormatPrice(1250000))
}

func TestHasFeatureCaseInsensitive(t *testing.T) {
	car := models.Car{Features: []string{"bluetooth", "Backup Camera"}}
	assert.True(t, HasFeature(car, "Bluetooth"))
	assert.True(t, HasFeature(car, "backup camera"))
	assert.False(t, HasFeature(car, "Sunroof"))
}

func TestHasFeatureSubstringMatch(t *testing.T) {
	car := models.Car{Features: []string{"Premium Bluetooth Audio"}}
	assert.True(t, HasFeature(car, "Bluetooth"))
}

func findRow(t *testing.T, table Table, category, key string) Row {
	t.Helper()
	for _, c := range table.Categories {
		if c.Name != category {
			continue
		}
		for _, row := range c.Rows {
			if row.Key == key {
				return row
			}
		}
	}
	t.Fatalf("row %s/%s not found", category, key)
	return Row{}
}

func TestBuildTable(t *testing.T) {
	cars := []models.Car{
		{
			ID: 1, Make: "Toyota", Model: "Camry", Year: 2022, Price: 25000,
			Mileage: intPtr(5000), Color: "Silver", FuelType: "Gasoline",
			Transmission: "Automatic", Condition: "Excellent", Location: "New York, NY",
			Features: []string{"Bluetooth", "Backup Camera"},
		},
		{
			ID: 2, Make: "Honda", Model: "Civic", Year: 2019, Price: 16500,
			Features: []string{"Apple CarPlay"},
		},
	}

	table := BuildTable(cars)
	assert.Equal(t, []int{1, 2}, table.CarIDs)
	require.Len(t, table.Categories, 3)

	assert.Equal(t, []string{"Toyota", "Honda"}, findRow(t, table, "basic", "make").Values)
	assert.Equal(t, []string{"$25,000", "$16,500"}, findRow(t, table, "basic", "price").Values)
	assert.Equal(t, []string{"2022", "2019"}, findRow(t, table, "basic", "year").Values)
	assert.Equal(t, []string{"Excellent", NotAvailable}, findRow(t, table, "basic", "condition").Values)

	assert.Equal(t, []string{"5,000 mi", NotAvailable}, findRow(t, table, "details", "mileage").Values)
	assert.Equal(t, []string{"Silver", NotAvailable}, findRow(t, table, "details", "color").Values)

	assert.Equal(t, []string{"New York, NY", NotAvailable}, findRow(t, table, "location", "location").Values)

	require.Len(t, table.Features, len(Features))
	byName := make(map[string][]string)
	for _, row := range table.Features {
		byName[row.Name] = row.Values
	}
	assert.Equal(t, []string{"Yes", "No"}, byName["Bluetooth"])
	assert.Equal(t, []string{"Yes", "No"}, byName["Backup Camera"])
	assert.Equal(t, []string{"No", "Yes"}, byName["Apple CarPlay"])
	assert.Equal(t, []string{"No", "No"}, byName["Sunroof"])
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(nil)
	assert.Empty(t, table.CarIDs)
	for _, c := range table.Categories {
		for _, row := range c.Rows {
			assert.Empty(t, row.Values)
		}
	}
}
