package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")
)

// Store is the in-memory data store backing the API. All collections are
// maps keyed by auto-incremented integer ids; favorites are keyed by user,
// then by car. The process is the system of record: nothing is persisted.
type Store struct {
	mu sync.RWMutex

	users            map[int]models.User
	cars             map[int]models.Car
	favorites        map[int]map[int]models.Favorite
	comparisons      map[int]models.CarComparison
	shops            map[int]models.CarShop
	maintenanceShops map[int]models.CarMaintenanceShop

	userID            int
	carID             int
	comparisonID      int
	shopID            int
	maintenanceShopID int
}

func New() *Store {
	return &Store{
		users:            make(map[int]models.User),
		cars:             make(map[int]models.Car),
		favorites:        make(map[int]map[int]models.Favorite),
		comparisons:      make(map[int]models.CarComparison),
		shops:            make(map[int]models.CarShop),
		maintenanceShops: make(map[int]models.CarMaintenanceShop),
	}
}

// User methods

func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user, ok
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

// CreateUser stores a new user. The password is expected to already be
// hashed by the caller.
func (s *Store) CreateUser(insert models.InsertUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == insert.Username {
			return models.User{}, ErrUsernameTaken
		}
		if user.Email == insert.Email {
			return models.User{}, ErrEmailTaken
		}
	}
	s.userID++
	user := models.User{
		ID:        s.userID,
		Username:  insert.Username,
		Email:     insert.Email,
		Password:  insert.Password,
		Phone:     insert.Phone,
		FullName:  insert.FullName,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) UpdateUser(id int, update models.UpdateUser) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	user = update.Apply(user)
	s.users[id] = user
	return user, true
}

// Car methods

func (s *Store) GetCar(id int) (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	car, ok := s.cars[id]
	return car, ok
}

// GetCars returns every listing ordered by id.
func (s *Store) GetCars() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cars := make([]models.Car, 0, len(s.cars))
	for _, car := range s.cars {
		cars = append(cars, car)
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })
	return cars
}

func (s *Store) CreateCar(userID int, insert models.InsertCar) models.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carID++
	listingType := insert.ListingType
	if listingType == "" {
		listingType = models.ListingRegular
	}
	car := models.Car{
		ID:           s.carID,
		UserID:       userID,
		Make:         insert.Make,
		Model:        insert.Model,
		Year:         insert.Year,
		Price:        insert.Price,
		Mileage:      insert.Mileage,
		Color:        insert.Color,
		FuelType:     insert.FuelType,
		Transmission: insert.Transmission,
		Description:  insert.Description,
		Condition:    insert.Condition,
		ImageURLs:    insert.ImageURLs,
		Location:     insert.Location,
		Latitude:     insert.Latitude,
		Longitude:    insert.Longitude,
		Features:     insert.Features,
		IsActive:     true,
		ListingType:  listingType,
		CreatedAt:    time.Now(),
	}
	if car.ImageURLs == nil {
		car.ImageURLs = []string{}
	}
	if car.Features == nil {
		car.Features = []string{}
	}
	s.cars[car.ID] = car
	return car
}

func (s *Store) UpdateCar(id int, update models.UpdateCar) (models.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	car, ok := s.cars[id]
	if !ok {
		return models.Car{}, false
	}
	car = update.Apply(car)
	s.cars[id] = car
	return car, true
}

func (s *Store) DeleteCar(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cars[id]
	delete(s.cars, id)
	return ok
}

// Favorite methods

func (s *Store) GetFavorites(userID int) []models.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	favorites := make([]models.Favorite, 0, len(s.favorites[userID]))
	for _, favorite := range s.favorites[userID] {
		favorites = append(favorites, favorite)
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i].CarID < favorites[j].CarID })
	return favorites
}

func (s *Store) AddFavorite(userID, carID int) models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[userID] == nil {
		s.favorites[userID] = make(map[int]models.Favorite)
	}
	favorite := models.Favorite{UserID: userID, CarID: carID}
	s.favorites[userID][carID] = favorite
	return favorite
}

// RemoveFavorite reports whether the favorite existed. Removing an absent
// favorite is not an error.
func (s *Store) RemoveFavorite(userID, carID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[userID][carID]
	delete(s.favorites[userID], carID)
	return ok
}

// Comparison methods

func (s *Store) GetComparison(id int) (models.CarComparison, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comparison, ok := s.comparisons[id]
	return comparison, ok
}

func (s *Store) GetUserComparisons(userID int) []models.CarComparison {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comparisons := make([]models.CarComparison, 0)
	for _, comparison := range s.comparisons {
		if comparison.UserID == userID {
			comparisons = append(comparisons, comparison)
		}
	}
	sort.Slice(comparisons, func(i, j int) bool { return comparisons[i].ID < comparisons[j].ID })
	return comparisons
}

func (s *Store) CreateComparison(userID int, carIDs []int) models.CarComparison {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparisonID++
	comparison := models.CarComparison{
		ID:        s.comparisonID,
		UserID:    userID,
		CarIDs:    append([]int(nil), carIDs...),
		CreatedAt: time.Now(),
	}
	s.comparisons[comparison.ID] = comparison
	return comparison
}

// UpdateComparison replaces the id list of an existing comparison.
func (s *Store) UpdateComparison(id int, carIDs []int) (models.CarComparison, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comparison, ok := s.comparisons[id]
	if !ok {
		return models.CarComparison{}, false
	}
	comparison.CarIDs = append([]int(nil), carIDs...)
	s.comparisons[id] = comparison
	return comparison, true
}

func (s *Store) DeleteComparison(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.comparisons[id]
	delete(s.comparisons, id)
	return ok
}

// Shop methods

func (s *Store) GetCarShops() []models.CarShop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shops := make([]models.CarShop, 0, len(s.shops))
	for _, shop := range s.shops {
		shops = append(shops, shop)
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].ID < shops[j].ID })
	return shops
}

func (s *Store) GetCarShop(id int) (models.CarShop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shop, ok := s.shops[id]
	return shop, ok
}

func (s *Store) CreateCarShop(shop models.CarShop) models.CarShop {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopID++
	shop.ID = s.shopID
	s.shops[shop.ID] = shop
	return shop
}

func (s *Store) GetMaintenanceShops() []models.CarMaintenanceShop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shops := make([]models.CarMaintenanceShop, 0, len(s.maintenanceShops))
	for _, shop := range s.maintenanceShops {
		shops = append(shops, shop)
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].ID < shops[j].ID })
	return shops
}

func (s *Store) GetMaintenanceShop(id int) (models.CarMaintenanceShop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shop, ok := s.maintenanceShops[id]
	return shop, ok
}

func (s *Store) CreateMaintenanceShop(shop models.CarMaintenanceShop) models.CarMaintenanceShop {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenanceShopID++
	shop.ID = s.maintenanceShopID
	s.maintenanceShops[shop.ID] = shop
	return shop
}
