package models

import "time"

const (
	ListingRegular  = "regular"
	ListingFeatured = "featured"
)

type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Phone      string    `json:"phone,omitempty"`
	FullName   string    `json:"fullName,omitempty"`
	IsVerified bool      `json:"isVerified"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Car struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        int       `json:"price"`
	Mileage      *int      `json:"mileage,omitempty"`
	Color        string    `json:"color,omitempty"`
	FuelType     string    `json:"fuelType,omitempty"`
	Transmission string    `json:"transmission,omitempty"`
	Description  string    `json:"description,omitempty"`
	Condition    string    `json:"condition,omitempty"`
	ImageURLs    []string  `json:"imageUrls"`
	Location     string    `json:"location,omitempty"`
	Latitude     string    `json:"latitude,omitempty"`
	Longitude    string    `json:"longitude,omitempty"`
	Features     []string  `json:"features"`
	IsActive     bool      `json:"isActive"`
	ListingType  string    `json:"listingType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Favorite struct {
	UserID int `json:"userId"`
	CarID  int `json:"carId"`
}

type CarComparison struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	CarIDs    []int     `json:"carIds"`
	CreatedAt time.Time `json:"createdAt"`
}

type CarShop struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  string   `json:"latitude"`
	Longitude string   `json:"longitude"`
	Phone     string   `json:"phone,omitempty"`
	Website   string   `json:"website,omitempty"`
	Types     []string `json:"types"`
	Rating    int      `json:"rating"`
}

type CarMaintenanceShop struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  string   `json:"latitude"`
	Longitude string   `json:"longitude"`
	Phone     string   `json:"phone,omitempty"`
	Website   string   `json:"website,omitempty"`
	Services  []string `json:"services"`
	Rating    int      `json:"rating"`
}
