package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
	"github.com/omarabdhkem/CarXpert/internal/middleware"
	"github.com/omarabdhkem/CarXpert/internal/models"
	"github.com/omarabdhkem/CarXpert/internal/query"
)

// ListCars serves the listing feed with optional equality filters, an
// optional price range, and an optional sort key.
func (h *Handler) ListCars(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	filter := query.CarFilter{Equals: make(map[string]string)}
	for key := range values {
		if query.FilterableField(key) {
			filter.Equals[key] = values.Get(key)
		}
	}
	if raw := values.Get("minPrice"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, apperrors.BadRequest("minPrice must be a number"))
			return
		}
		filter.MinPrice = &min
	}
	if raw := values.Get("maxPrice"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, apperrors.BadRequest("maxPrice must be a number"))
			return
		}
		filter.MaxPrice = &max
	}

	cars := query.Filter(h.Store.GetCars(), filter)
	cars = query.Sort(cars, values.Get("sort"))
	h.respond(w, http.StatusOK, cars)
}

func (h *Handler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		h.respondError(w, apperrors.NotFound("car not found"))
		return
	}
	car, ok := h.Store.GetCar(id)
	if !ok {
		h.respondError(w, apperrors.NotFound("car not found"))
		return
	}
	h.respond(w, http.StatusOK, car)
}

func (h *Handler) CreateCar(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var insert models.InsertCar
	if err := decode(r, &insert); err != nil {
		h.respondError(w, err)
		return
	}
	if err := insert.Validate(); err != nil {
		h.respondError(w, apperrors.BadRequest(err.Error()))
		return
	}

	car := h.Store.CreateCar(userID, insert)
	h.respond(w, http.StatusCreated, car)
}

// ownedCar resolves a car and checks the acting user owns it.
func (h *Handler) ownedCar(r *http.Request) (models.Car, error) {
	id, ok := urlID(r, "id")
	if !ok {
		return models.Car{}, apperrors.NotFound("car not found")
	}
	car, ok := h.Store.GetCar(id)
	if !ok {
		return models.Car{}, apperrors.NotFound("car not found")
	}
	userID, _ := middleware.UserID(r)
	if car.UserID != userID {
		return models.Car{}, apperrors.Forbidden(fmt.Sprintf("you don't have permission to modify listing %d", car.ID))
	}
	return car, nil
}

func (h *Handler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	car, err := h.ownedCar(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var update models.UpdateCar
	if err := decode(r, &update); err != nil {
		h.respondError(w, err)
		return
	}
	if err := update.Validate(); err != nil {
		h.respondError(w, apperrors.BadRequest(err.Error()))
		return
	}

	updated, ok := h.Store.UpdateCar(car.ID, update)
	if !ok {
		h.respondError(w, apperrors.NotFound("car not found"))
		return
	}
	h.respond(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	car, err := h.ownedCar(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.Store.DeleteCar(car.ID)
	w.WriteHeader(http.StatusNoContent)
}
