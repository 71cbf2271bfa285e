package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

func intPtr(n int) *int { return &n }

func testCars() []models.Car {
	return []models.Car{
		{ID: 1, Make: "Toyota", Model: "Camry", Year: 2022, Price: 25000, FuelType: "Gasoline", UserID: 1, IsActive: true},
		{ID: 2, Make: "Honda", Model: "Civic", Year: 2019, Price: 16500, FuelType: "Gasoline", UserID: 1, IsActive: true},
		{ID: 3, Make: "Tesla", Model: "Model 3", Year: 2022, Price: 42000, FuelType: "Electric", UserID: 2, IsActive: true},
		{ID: 4, Make: "Toyota", Model: "Corolla", Year: 2020, Price: 19000, FuelType: "Hybrid", UserID: 2, IsActive: false},
	}
}

func carIDs(cars []models.Car) []int {
	ids := make([]int, 0, len(cars))
	for _, car := range cars {
		ids = append(ids, car.ID)
	}
	return ids
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	cars := testCars()
	assert.Equal(t, cars, Filter(cars, CarFilter{}))
	assert.Equal(t, cars, Filter(cars, CarFilter{Equals: map[string]string{}}))
}

func TestFilterEquality(t *testing.T) {
	got := Filter(testCars(), CarFilter{Equals: map[string]string{"make": "Toyota"}})
	assert.Equal(t, []int{1, 4}, carIDs(got))
}

func TestFilterConjunction(t *testing.T) {
	got := Filter(testCars(), CarFilter{Equals: map[string]string{
		"make":     "Toyota",
		"fuelType": "Hybrid",
	}})
	assert.Equal(t, []int{4}, carIDs(got))
}

func TestFilterYearAsEquality(t *testing.T) {
	got := Filter(testCars(), CarFilter{Equals: map[string]string{"year": "2022"}})
	assert.Equal(t, []int{1, 3}, carIDs(got))
}

func TestFilterPriceRangeInclusiveBounds(t *testing.T) {
	got := Filter(testCars(), CarFilter{MinPrice: intPtr(16500), MaxPrice: intPtr(25000)})
	assert.Equal(t, []int{1, 2, 4}, carIDs(got))
}

func TestFilterPriceRangeWithEquality(t *testing.T) {
	got := Filter(testCars(), CarFilter{
		Equals:   map[string]string{"make": "Toyota"},
		MinPrice: intPtr(20000),
		MaxPrice: intPtr(30000),
	})
	assert.Equal(t, []int{1}, carIDs(got))
}

func TestFilterInvertedRangeMatchesNothing(t *testing.T) {
	got := Filter(testCars(), CarFilter{MinPrice: intPtr(30000), MaxPrice: intPtr(20000)})
	assert.Empty(t, got)
}

func TestFilterUnknownFieldIgnored(t *testing.T) {
	cars := testCars()
	got := Filter(cars, CarFilter{Equals: map[string]string{"nosuchfield": "x"}})
	assert.Equal(t, cars, got)
}

func TestFilterByOwner(t *testing.T) {
	got := Filter(testCars(), CarFilter{Equals: map[string]string{"userID": "1"}})
	assert.Equal(t, []int{1, 2}, carIDs(got))
}

func TestFilterActiveExcludesInactive(t *testing.T) {
	got := Filter(testCars(), CarFilter{Equals: map[string]string{"isActive": "true"}})
	assert.Equal(t, []int{1, 2, 3}, carIDs(got))

	got = Filter(testCars(), CarFilter{Equals: map[string]string{"isActive": "false"}})
	assert.Equal(t, []int{4}, carIDs(got))
}

func TestFilterableField(t *testing.T) {
	assert.True(t, FilterableField("make"))
	assert.True(t, FilterableField("fuelType"))
	assert.True(t, FilterableField("userID"))
	assert.True(t, FilterableField("isActive"))
	assert.False(t, FilterableField("price"))
	assert.False(t, FilterableField("sort"))
}
