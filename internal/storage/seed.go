package storage

import (
	"github.com/omarabdhkem/CarXpert/internal/auth"
	"github.com/omarabdhkem/CarXpert/internal/models"
)

func intPtr(n int) *int { return &n }

// Seed loads the demo dataset: a demo user, the shop directories, and six
// listings. Intended for local development; controlled by config.
func (s *Store) Seed() error {
	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}
	demo, err := s.CreateUser(models.InsertUser{
		Username: "demo",
		Email:    "demo@carxpert.example.com",
		Password: hash,
		FullName: "Demo Seller",
	})
	if err != nil {
		return err
	}

	s.CreateCarShop(models.CarShop{
		Name:      "Premium Auto Dealership",
		Address:   "123 Main St, New York, NY",
		Latitude:  "40.7128",
		Longitude: "-74.006",
		Phone:     "555-123-4567",
		Website:   "https://premiumauto.example.com",
		Types:     []string{"new", "used", "luxury"},
		Rating:    4,
	})
	s.CreateCarShop(models.CarShop{
		Name:      "Value Motors",
		Address:   "456 Oak Ave, Los Angeles, CA",
		Latitude:  "34.0522",
		Longitude: "-118.2437",
		Phone:     "555-987-6543",
		Website:   "https://valuemotors.example.com",
		Types:     []string{"used", "budget"},
		Rating:    3,
	})

	s.CreateMaintenanceShop(models.CarMaintenanceShop{
		Name:      "Quick Service Auto",
		Address:   "789 Pine Rd, Chicago, IL",
		Latitude:  "41.8781",
		Longitude: "-87.6298",
		Phone:     "555-456-7890",
		Website:   "https://quickservice.example.com",
		Services:  []string{"oil change", "brakes", "tire rotation"},
		Rating:    5,
	})
	s.CreateMaintenanceShop(models.CarMaintenanceShop{
		Name:      "Complete Car Care",
		Address:   "321 Maple Dr, Houston, TX",
		Latitude:  "29.7604",
		Longitude: "-95.3698",
		Phone:     "555-222-3333",
		Website:   "https://completecare.example.com",
		Services:  []string{"diagnostics", "engine repair", "transmission", "electrical"},
		Rating:    4,
	})

	demoCars := []models.InsertCar{
		{
			Make: "Toyota", Model: "Camry", Year: 2022, Price: 25000,
			Mileage: intPtr(5000), Color: "Silver", FuelType: "Gasoline", Transmission: "Automatic",
			Description: "Like new Toyota Camry with low mileage. Great fuel efficiency and comfortable ride.",
			Condition:   "Excellent",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1618418721668-0d1f72aa4bab"},
			Location:    "New York, NY", Latitude: "40.7128", Longitude: "-74.006",
			Features:    []string{"Bluetooth", "Backup Camera", "Cruise Control"},
			ListingType: models.ListingRegular,
		},
		{
			Make: "Mercedes-Benz", Model: "S-Class", Year: 2021, Price: 89000,
			Mileage: intPtr(12000), Color: "Black", FuelType: "Gasoline", Transmission: "Automatic",
			Description: "Luxury Mercedes-Benz S-Class with premium features and elegant design.",
			Condition:   "Excellent",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1581814706561-f5bbfa7d984a"},
			Location:    "Los Angeles, CA", Latitude: "34.0522", Longitude: "-118.2437",
			Features:    []string{"Leather Seats", "Navigation", "Panoramic Roof", "Premium Sound"},
			ListingType: models.ListingFeatured,
		},
		{
			Make: "BMW", Model: "i8", Year: 2020, Price: 95000,
			Mileage: intPtr(8000), Color: "White", FuelType: "Hybrid", Transmission: "Automatic",
			Description: "Stunning BMW i8 hybrid sports car with futuristic design and excellent performance.",
			Condition:   "Excellent",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1553440569-bcc63803a83d"},
			Location:    "Miami, FL", Latitude: "25.7617", Longitude: "-80.1918",
			Features:    []string{"Sport Package", "Head-up Display", "Carbon Fiber Trim"},
			ListingType: models.ListingFeatured,
		},
		{
			Make: "Honda", Model: "Civic", Year: 2019, Price: 16500,
			Mileage: intPtr(35000), Color: "Blue", FuelType: "Gasoline", Transmission: "Manual",
			Description: "Reliable Honda Civic with excellent gas mileage and sporty handling.",
			Condition:   "Good",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1570280406792-bf58b7c59247"},
			Location:    "Chicago, IL", Latitude: "41.8781", Longitude: "-87.6298",
			Features:    []string{"Apple CarPlay", "Android Auto", "Alloy Wheels"},
			ListingType: models.ListingRegular,
		},
		{
			Make: "Ford", Model: "Mustang", Year: 2023, Price: 45000,
			Mileage: intPtr(1000), Color: "Red", FuelType: "Gasoline", Transmission: "Automatic",
			Description: "Brand new Ford Mustang with powerful engine and classic American muscle car design.",
			Condition:   "New",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1492144534655-ae79c964c9d2"},
			Location:    "Dallas, TX", Latitude: "32.7767", Longitude: "-96.7970",
			Features:    []string{"Leather Seats", "Premium Sound", "Performance Package"},
			ListingType: models.ListingFeatured,
		},
		{
			Make: "Tesla", Model: "Model 3", Year: 2022, Price: 42000,
			Mileage: intPtr(10000), Color: "White", FuelType: "Electric", Transmission: "Automatic",
			Description: "Tesla Model 3 with long-range battery and Autopilot features.",
			Condition:   "Excellent",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1485291571150-772bcfc10da5"},
			Location:    "San Francisco, CA", Latitude: "37.7749", Longitude: "-122.4194",
			Features:    []string{"Autopilot", "Premium Interior", "Glass Roof"},
			ListingType: models.ListingFeatured,
		},
	}
	for _, car := range demoCars {
		s.CreateCar(demo.ID, car)
	}
	return nil
}
