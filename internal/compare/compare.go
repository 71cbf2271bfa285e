// Package compare assembles side-by-side comparison tables for a set of car
// listings: a fixed catalog of specification rows grouped by category, plus
// a fixed feature checklist matched against each car's feature tags.
package compare

import (
	"strconv"
	"strings"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

// Placeholder rendered for values a listing does not carry.
const NotAvailable = "N/A"

// SpecRow resolves one specification value per car.
type SpecRow struct {
	Key   string
	Label string
	Value func(models.Car) string
}

// Category groups spec rows under a named section of the table.
type Category struct {
	Name string
	Rows []SpecRow
}

var Categories = []Category{
	{
		Name: "basic",
		Rows: []SpecRow{
			{Key: "make", Label: "Make", Value: stringValue(func(c models.Car) string { return c.Make })},
			{Key: "model", Label: "Model", Value: stringValue(func(c models.Car) string { return c.Model })},
			{Key: "year", Label: "Year", Value: func(c models.Car) string { return strconv.Itoa(c.Year) }},
			{Key: "price", Label: "Price", Value: func(c models.Car) string { return FormatPrice(c.Price) }},
			{Key: "condition", Label: "Condition", Value: stringValue(func(c models.Car) string { return c.Condition })},
		},
	},
	{
		Name: "details",
		Rows: []SpecRow{
			{Key: "mileage", Label: "Mileage", Value: formatMileage},
			{Key: "color", Label: "Color", Value: stringValue(func(c models.Car) string { return c.Color })},
			{Key: "fuelType", Label: "Fuel Type", Value: stringValue(func(c models.Car) string { return c.FuelType })},
			{Key: "transmission", Label: "Transmission", Value: stringValue(func(c models.Car) string { return c.Transmission })},
		},
	},
	{
		Name: "location",
		Rows: []SpecRow{
			{Key: "location", Label: "Location", Value: stringValue(func(c models.Car) string { return c.Location })},
		},
	},
}

// Features checked against each car's feature tags.
var Features = []string{
	"Bluetooth",
	"Navigation",
	"Leather Seats",
	"Sunroof",
	"Backup Camera",
	"Heated Seats",
	"Third Row Seating",
	"Apple CarPlay",
	"Android Auto",
	"Keyless Entry",
	"Remote Start",
	"Adaptive Cruise Control",
	"Blind Spot Monitoring",
}

func stringValue(get func(models.Car) string) func(models.Car) string {
	return func(c models.Car) string {
		if v := get(c); v != "" {
			return v
		}
		return NotAvailable
	}
}

func formatMileage(c models.Car) string {
	if c.Mileage == nil {
		return NotAvailable
	}
	return groupThousands(*c.Mileage) + " mi"
}

// FormatPrice renders a price as a currency string, e.g. 25000 -> "$25,000".
func FormatPrice(price int) string {
	return "$" + groupThousands(price)
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return sign + strings.Join(groups, ",")
}

// HasFeature reports whether any of the car's feature tags contains the
// given feature, case-insensitively.
func HasFeature(car models.Car, feature string) bool {
	want := strings.ToLower(feature)
	for _, tag := range car.Features {
		if strings.Contains(strings.ToLower(tag), want) {
			return true
		}
	}
	return false
}

// Table is the rendered comparison: one column per car, rows per catalog
// entry and per feature.
type Table struct {
	CarIDs     []int          `json:"carIds"`
	Categories []CategoryRows `json:"categories"`
	Features   []FeatureRow   `json:"features"`
}

type CategoryRows struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

type Row struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type FeatureRow struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// BuildTable renders the comparison table for the given cars, in order.
func BuildTable(cars []models.Car) Table {
	table := Table{
		CarIDs:     make([]int, 0, len(cars)),
		Categories: make([]CategoryRows, 0, len(Categories)),
		Features:   make([]FeatureRow, 0, len(Features)),
	}
	for _, car := range cars {
		table.CarIDs = append(table.CarIDs, car.ID)
	}
	for _, category := range Categories {
		rows := make([]Row, 0, len(category.Rows))
		for _, spec := range category.Rows {
			row := Row{Key: spec.Key, Label: spec.Label, Values: make([]string, 0, len(cars))}
			for _, car := range cars {
				row.Values = append(row.Values, spec.Value(car))
			}
			rows = append(rows, row)
		}
		table.Categories = append(table.Categories, CategoryRows{Name: category.Name, Rows: rows})
	}
	for _, feature := range Features {
		row := FeatureRow{Name: feature, Values: make([]string, 0, len(cars))}
		for _, car := range cars {
			if HasFeature(car, feature) {
				row.Values = append(row.Values, "Yes")
			} else {
				row.Values = append(row.Values, "No")
			}
		}
		table.Features = append(table.Features, row)
	}
	return table
}
