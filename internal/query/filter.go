// Package query implements the listing filter and sort layers: predicate
// filtering over car collections plus the fixed set of sort orderings the
// listing API exposes.
package query

import (
	"strconv"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

// fieldAccessors maps each filterable field to a typed getter. Filtering
// goes through this table rather than reflection, so only the listed fields
// can ever be matched against.
var fieldAccessors = map[string]func(models.Car) string{
	"make":         func(c models.Car) string { return c.Make },
	"model":        func(c models.Car) string { return c.Model },
	"year":         func(c models.Car) string { return strconv.Itoa(c.Year) },
	"color":        func(c models.Car) string { return c.Color },
	"fuelType":     func(c models.Car) string { return c.FuelType },
	"transmission": func(c models.Car) string { return c.Transmission },
	"condition":    func(c models.Car) string { return c.Condition },
	"location":     func(c models.Car) string { return c.Location },
	"listingType":  func(c models.Car) string { return c.ListingType },
	"userID":       func(c models.Car) string { return strconv.Itoa(c.UserID) },
	"isActive":     func(c models.Car) string { return strconv.FormatBool(c.IsActive) },
}

// FilterableField reports whether name can appear as an equality constraint.
func FilterableField(name string) bool {
	_, ok := fieldAccessors[name]
	return ok
}

// CarFilter is a conjunction of field-equality constraints and an optional
// inclusive price range. Zero-value constraints pass everything through.
// The range bounds are taken as given; min > max simply matches nothing.
type CarFilter struct {
	Equals   map[string]string
	MinPrice *int
	MaxPrice *int
}

func (f CarFilter) matches(car models.Car) bool {
	for field, want := range f.Equals {
		accessor, ok := fieldAccessors[field]
		if !ok {
			continue
		}
		if accessor(car) != want {
			return false
		}
	}
	if f.MinPrice != nil && car.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && car.Price > *f.MaxPrice {
		return false
	}
	return true
}

// Filter returns the cars satisfying every constraint in f, preserving
// input order. An empty filter returns the input unchanged.
func Filter(cars []models.Car, f CarFilter) []models.Car {
	if len(f.Equals) == 0 && f.MinPrice == nil && f.MaxPrice == nil {
		return cars
	}
	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if f.matches(car) {
			filtered = append(filtered, car)
		}
	}
	return filtered
}
