package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarabdhkem/CarXpert/internal/models"
)

func newUser(t *testing.T, s *Store, username, email string) models.User {
	t.Helper()
	user, err := s.CreateUser(models.InsertUser{Username: username, Email: email, Password: "hash"})
	require.NoError(t, err)
	return user
}

func TestCreateUserAssignsMonotonicIDs(t *testing.T) {
	s := New()
	a := newUser(t, s, "alice", "alice@example.com")
	b := newUser(t, s, "bob", "bob@example.com")
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	s := New()
	newUser(t, s, "alice", "alice@example.com")

	_, err := s.CreateUser(models.InsertUser{Username: "alice", Email: "other@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.CreateUser(models.InsertUser{Username: "alice2", Email: "alice@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCarLifecycle(t *testing.T) {
	s := New()
	owner := newUser(t, s, "alice", "alice@example.com")

	car := s.CreateCar(owner.ID, models.InsertCar{Make: "Toyota", Model: "Camry", Year: 2022, Price: 25000})
	assert.Equal(t, 1, car.ID)
	assert.Equal(t, owner.ID, car.UserID)
	assert.True(t, car.IsActive)
	assert.Equal(t, models.ListingRegular, car.ListingType)
	assert.NotNil(t, car.ImageURLs)
	assert.NotNil(t, car.Features)

	price := 23000
	updated, ok := s.UpdateCar(car.ID, models.UpdateCar{Price: &price})
	require.True(t, ok)
	assert.Equal(t, 23000, updated.Price)
	assert.Equal(t, "Toyota", updated.Make)

	assert.True(t, s.DeleteCar(car.ID))
	_, ok = s.GetCar(car.ID)
	assert.False(t, ok)
	assert.False(t, s.DeleteCar(car.ID))
}

func TestCarIDsNotReused(t *testing.T) {
	s := New()
	owner := newUser(t, s, "alice", "alice@example.com")

	first := s.CreateCar(owner.ID, models.InsertCar{Make: "A", Model: "1", Year: 2020, Price: 1000})
	s.DeleteCar(first.ID)
	second := s.CreateCar(owner.ID, models.InsertCar{Make: "B", Model: "2", Year: 2021, Price: 2000})
	assert.Greater(t, second.ID, first.ID)
}

func TestGetCarsOrderedByID(t *testing.T) {
	s := New()
	owner := newUser(t, s, "alice", "alice@example.com")
	for i := 0; i < 5; i++ {
		s.CreateCar(owner.ID, models.InsertCar{Make: "M", Model: "X", Year: 2020, Price: 1000 + i})
	}
	cars := s.GetCars()
	require.Len(t, cars, 5)
	for i, car := range cars {
		assert.Equal(t, i+1, car.ID)
	}
}

func TestFavoritesUniquePerUserAndCar(t *testing.T) {
	s := New()
	owner := newUser(t, s, "alice", "alice@example.com")
	car := s.CreateCar(owner.ID, models.InsertCar{Make: "Toyota", Model: "Camry", Year: 2022, Price: 25000})

	s.AddFavorite(owner.ID, car.ID)
	s.AddFavorite(owner.ID, car.ID)
	assert.Len(t, s.GetFavorites(owner.ID), 1)

	assert.True(t, s.RemoveFavorite(owner.ID, car.ID))
	assert.False(t, s.RemoveFavorite(owner.ID, car.ID))
	assert.Empty(t, s.GetFavorites(owner.ID))
}

func TestComparisonLifecycle(t *testing.T) {
	s := New()
	owner := newUser(t, s, "alice", "alice@example.com")

	comparison := s.CreateComparison(owner.ID, []int{1, 2})
	assert.Equal(t, 1, comparison.ID)
	assert.Equal(t, []int{1, 2}, comparison.CarIDs)

	updated, ok := s.UpdateComparison(comparison.ID, []int{2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, []int{2, 3, 4}, updated.CarIDs)

	others := s.GetUserComparisons(owner.ID)
	require.Len(t, others, 1)
	assert.Equal(t, updated.CarIDs, others[0].CarIDs)

	assert.True(t, s.DeleteComparison(comparison.ID))
	_, ok = s.GetComparison(comparison.ID)
	assert.False(t, ok)
}

func TestComparisonCopiesIDList(t *testing.T) {
	s := New()
	owner := newUser(t, s, "alice", "alice@example.com")

	ids := []int{1, 2}
	comparison := s.CreateComparison(owner.ID, ids)
	ids[0] = 99
	stored, ok := s.GetComparison(comparison.ID)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, stored.CarIDs)
}

func TestSeed(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed())

	assert.Len(t, s.GetCars(), 6)
	assert.Len(t, s.GetCarShops(), 2)
	assert.Len(t, s.GetMaintenanceShops(), 2)

	demo, ok := s.GetUserByUsername("demo")
	require.True(t, ok)
	for _, car := range s.GetCars() {
		assert.Equal(t, demo.ID, car.UserID)
	}
}
