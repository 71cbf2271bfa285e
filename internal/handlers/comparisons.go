package handlers

import (
	"fmt"
	"net/http"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
	"github.com/omarabdhkem/CarXpert/internal/compare"
	"github.com/omarabdhkem/CarXpert/internal/middleware"
	"github.com/omarabdhkem/CarXpert/internal/models"
)

func (h *Handler) ListComparisons(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	h.respond(w, http.StatusOK, h.Store.GetUserComparisons(userID))
}

// checkComparisonCars validates an id list against the live car set.
// The first missing id aborts the whole operation.
func (h *Handler) checkComparisonCars(insert models.InsertComparison) error {
	if err := insert.Validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	for _, id := range insert.CarIDs {
		if _, ok := h.Store.GetCar(id); !ok {
			return apperrors.NotFound(fmt.Sprintf("car with ID %d not found", id))
		}
	}
	return nil
}

func (h *Handler) CreateComparison(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var insert models.InsertComparison
	if err := decode(r, &insert); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.checkComparisonCars(insert); err != nil {
		h.respondError(w, err)
		return
	}

	comparison := h.Store.CreateComparison(userID, insert.CarIDs)
	h.respond(w, http.StatusCreated, comparison)
}

// ownedComparison resolves a comparison and checks the acting user owns it.
func (h *Handler) ownedComparison(r *http.Request) (models.CarComparison, error) {
	id, ok := urlID(r, "id")
	if !ok {
		return models.CarComparison{}, apperrors.NotFound("comparison not found")
	}
	comparison, ok := h.Store.GetComparison(id)
	if !ok {
		return models.CarComparison{}, apperrors.NotFound("comparison not found")
	}
	userID, _ := middleware.UserID(r)
	if comparison.UserID != userID {
		return models.CarComparison{}, apperrors.Forbidden("you don't have permission to access this comparison")
	}
	return comparison, nil
}

func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.ownedComparison(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, comparison)
}

// GetComparisonTable renders the comparison as spec and feature rows.
// Referenced cars that have since been deleted are skipped; the stored id
// list is left untouched.
func (h *Handler) GetComparisonTable(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.ownedComparison(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	cars := make([]models.Car, 0, len(comparison.CarIDs))
	for _, id := range comparison.CarIDs {
		if car, ok := h.Store.GetCar(id); ok {
			cars = append(cars, car)
		}
	}
	h.respond(w, http.StatusOK, compare.BuildTable(cars))
}

func (h *Handler) UpdateComparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.ownedComparison(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var insert models.InsertComparison
	if err := decode(r, &insert); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.checkComparisonCars(insert); err != nil {
		h.respondError(w, err)
		return
	}

	updated, ok := h.Store.UpdateComparison(comparison.ID, insert.CarIDs)
	if !ok {
		h.respondError(w, apperrors.NotFound("comparison not found"))
		return
	}
	h.respond(w, http.StatusOK, updated)
}

func (h *Handler) DeleteComparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.ownedComparison(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.Store.DeleteComparison(comparison.ID)
	w.WriteHeader(http.StatusNoContent)
}
