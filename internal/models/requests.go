package models

import (
	"errors"
	"fmt"
	"time"
)

// InsertUser is the payload for /api/register.
type InsertUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	FullName string `json:"fullName"`
}

func (u InsertUser) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if len(u.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// InsertCar is the payload for creating a listing. The owner and the
// bookkeeping fields are assigned by the server.
type InsertCar struct {
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int      `json:"price"`
	Mileage      *int     `json:"mileage"`
	Color        string   `json:"color"`
	FuelType     string   `json:"fuelType"`
	Transmission string   `json:"transmission"`
	Description  string   `json:"description"`
	Condition    string   `json:"condition"`
	ImageURLs    []string `json:"imageUrls"`
	Location     string   `json:"location"`
	Latitude     string   `json:"latitude"`
	Longitude    string   `json:"longitude"`
	Features     []string `json:"features"`
	ListingType  string   `json:"listingType"`
}

func (c InsertCar) Validate() error {
	if c.Make == "" {
		return errors.New("make is required")
	}
	if c.Model == "" {
		return errors.New("model is required")
	}
	if c.Year < 1900 || c.Year > time.Now().Year()+1 {
		return fmt.Errorf("year %d is out of range", c.Year)
	}
	if c.Price <= 0 {
		return errors.New("price must be positive")
	}
	if c.Mileage != nil && *c.Mileage < 0 {
		return errors.New("mileage cannot be negative")
	}
	if c.ListingType != "" && c.ListingType != ListingRegular && c.ListingType != ListingFeatured {
		return fmt.Errorf("unknown listing type %q", c.ListingType)
	}
	return nil
}

// UpdateCar carries the owner-editable fields of a listing. Nil means
// "leave unchanged"; id, owner and creation time are never updatable.
type UpdateCar struct {
	Make         *string   `json:"make"`
	Model        *string   `json:"model"`
	Year         *int      `json:"year"`
	Price        *int      `json:"price"`
	Mileage      *int      `json:"mileage"`
	Color        *string   `json:"color"`
	FuelType     *string   `json:"fuelType"`
	Transmission *string   `json:"transmission"`
	Description  *string   `json:"description"`
	Condition    *string   `json:"condition"`
	ImageURLs    *[]string `json:"imageUrls"`
	Location     *string   `json:"location"`
	Latitude     *string   `json:"latitude"`
	Longitude    *string   `json:"longitude"`
	Features     *[]string `json:"features"`
	IsActive     *bool     `json:"isActive"`
	ListingType  *string   `json:"listingType"`
}

func (c UpdateCar) Validate() error {
	if c.Make != nil && *c.Make == "" {
		return errors.New("make cannot be empty")
	}
	if c.Model != nil && *c.Model == "" {
		return errors.New("model cannot be empty")
	}
	if c.Year != nil && (*c.Year < 1900 || *c.Year > time.Now().Year()+1) {
		return fmt.Errorf("year %d is out of range", *c.Year)
	}
	if c.Price != nil && *c.Price <= 0 {
		return errors.New("price must be positive")
	}
	if c.Mileage != nil && *c.Mileage < 0 {
		return errors.New("mileage cannot be negative")
	}
	if c.ListingType != nil && *c.ListingType != ListingRegular && *c.ListingType != ListingFeatured {
		return fmt.Errorf("unknown listing type %q", *c.ListingType)
	}
	return nil
}

// Apply copies the set fields onto car and returns the result.
func (c UpdateCar) Apply(car Car) Car {
	if c.Make != nil {
		car.Make = *c.Make
	}
	if c.Model != nil {
		car.Model = *c.Model
	}
	if c.Year != nil {
		car.Year = *c.Year
	}
	if c.Price != nil {
		car.Price = *c.Price
	}
	if c.Mileage != nil {
		m := *c.Mileage
		car.Mileage = &m
	}
	if c.Color != nil {
		car.Color = *c.Color
	}
	if c.FuelType != nil {
		car.FuelType = *c.FuelType
	}
	if c.Transmission != nil {
		car.Transmission = *c.Transmission
	}
	if c.Description != nil {
		car.Description = *c.Description
	}
	if c.Condition != nil {
		car.Condition = *c.Condition
	}
	if c.ImageURLs != nil {
		car.ImageURLs = *c.ImageURLs
	}
	if c.Location != nil {
		car.Location = *c.Location
	}
	if c.Latitude != nil {
		car.Latitude = *c.Latitude
	}
	if c.Longitude != nil {
		car.Longitude = *c.Longitude
	}
	if c.Features != nil {
		car.Features = *c.Features
	}
	if c.IsActive != nil {
		car.IsActive = *c.IsActive
	}
	if c.ListingType != nil {
		car.ListingType = *c.ListingType
	}
	return car
}

// UpdateUser carries the profile fields a user may change about themselves.
type UpdateUser struct {
	Phone     *string `json:"phone"`
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
}

func (u UpdateUser) Apply(user User) User {
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.FullName != nil {
		user.FullName = *u.FullName
	}
	if u.AvatarURL != nil {
		user.AvatarURL = *u.AvatarURL
	}
	return user
}

// InsertComparison is the payload for creating or replacing a comparison.
type InsertComparison struct {
	CarIDs []int `json:"carIds"`
}

func (c InsertComparison) Validate() error {
	if len(c.CarIDs) < 2 {
		return errors.New("at least two car IDs are required for comparison")
	}
	seen := make(map[int]bool, len(c.CarIDs))
	for _, id := range c.CarIDs {
		if seen[id] {
			return fmt.Errorf("duplicate car ID %d in comparison", id)
		}
		seen[id] = true
	}
	return nil
}
