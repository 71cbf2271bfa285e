package query

import (
	"sort"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

// Sort keys accepted by the listing API.
const (
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortYearNew     = "year-new"
	SortYearOld     = "year-old"
	SortMileageLow  = "mileage-low"
	SortMileageHigh = "mileage-high"
)

var comparators = map[string]func(a, b models.Car) bool{
	SortPriceLow:    func(a, b models.Car) bool { return a.Price < b.Price },
	SortPriceHigh:   func(a, b models.Car) bool { return a.Price > b.Price },
	SortYearNew:     func(a, b models.Car) bool { return a.Year > b.Year },
	SortYearOld:     func(a, b models.Car) bool { return a.Year < b.Year },
	SortMileageLow:  func(a, b models.Car) bool { return mileage(a) < mileage(b) },
	SortMileageHigh: func(a, b models.Car) bool { return mileage(a) > mileage(b) },
}

// Cars without a recorded mileage compare as 0.
func mileage(c models.Car) int {
	if c.Mileage == nil {
		return 0
	}
	return *c.Mileage
}

// Sort returns a new slice ordered by key. An unknown or empty key
// preserves the original order.
func Sort(cars []models.Car, key string) []models.Car {
	sorted := append([]models.Car(nil), cars...)
	less, ok := comparators[key]
	if !ok {
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
