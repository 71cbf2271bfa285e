package handlers

import (
	"net/http"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
	"github.com/omarabdhkem/CarXpert/internal/middleware"
	"github.com/omarabdhkem/CarXpert/internal/models"
)

// ListFavorites returns the cars the user has bookmarked. Bookmarks whose
// car has since been deleted are skipped.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	cars := make([]models.Car, 0)
	for _, favorite := range h.Store.GetFavorites(userID) {
		if car, ok := h.Store.GetCar(favorite.CarID); ok {
			cars = append(cars, car)
		}
	}
	h.respond(w, http.StatusOK, cars)
}

type addFavoriteRequest struct {
	CarID int `json:"carId"`
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var req addFavoriteRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if _, ok := h.Store.GetCar(req.CarID); !ok {
		h.respondError(w, apperrors.NotFound("car not found"))
		return
	}

	favorite := h.Store.AddFavorite(userID, req.CarID)
	h.respond(w, http.StatusCreated, favorite)
}

// RemoveFavorite is idempotent: removing a bookmark that is already gone
// still answers 204.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	carID, ok := urlID(r, "carId")
	if ok {
		h.Store.RemoveFavorite(userID, carID)
	}
	w.WriteHeader(http.StatusNoContent)
}
