package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/time/rate"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
	"github.com/omarabdhkem/CarXpert/internal/config"
	"github.com/omarabdhkem/CarXpert/internal/middleware"
	"github.com/omarabdhkem/CarXpert/internal/storage"
)

type Handler struct {
	Store    *storage.Store
	Sessions *sessions.CookieStore
	Config   *config.Config
}

func New(store *storage.Store, sessionStore *sessions.CookieStore, cfg *config.Config) *Handler {
	return &Handler{
		Store:    store,
		Sessions: sessionStore,
		Config:   cfg,
	}
}

// Router assembles the full API router. Serving and tests go through the
// same mux.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	requireAuth := middleware.RequireAuth(h.Sessions)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/logout", h.Logout)
			r.Get("/user", h.CurrentUser)
			r.Put("/user", h.UpdateUser)
		})

		r.Get("/cars", h.ListCars)
		r.Get("/cars/{id}", h.GetCar)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/cars", h.CreateCar)
			r.Put("/cars/{id}", h.UpdateCar)
			r.Delete("/cars/{id}", h.DeleteCar)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/favorites", h.ListFavorites)
			r.Post("/favorites", h.AddFavorite)
			r.Delete("/favorites/{carId}", h.RemoveFavorite)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/comparisons", h.ListComparisons)
			r.Post("/comparisons", h.CreateComparison)
			r.Get("/comparisons/{id}", h.GetComparison)
			r.Get("/comparisons/{id}/table", h.GetComparisonTable)
			r.Put("/comparisons/{id}", h.UpdateComparison)
			r.Delete("/comparisons/{id}", h.DeleteComparison)
		})

		r.Get("/shops", h.ListCarShops)
		r.Get("/shops/{id}", h.GetCarShop)
		r.Get("/maintenance-shops", h.ListMaintenanceShops)
		r.Get("/maintenance-shops/{id}", h.GetMaintenanceShop)

		r.With(middleware.RateLimit(rate.Limit(h.Config.Chat.RatePerSec), h.Config.Chat.Burst)).
			Post("/chat", h.Chat)
	})

	return r
}

func (h *Handler) respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Error("Failed to encode response", "error", err)
		}
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	if appErr.Code >= http.StatusInternalServerError {
		log.Error("Request failed", "error", appErr)
	}
	h.respond(w, appErr.Code, map[string]string{"message": appErr.Message})
}

// decode parses a JSON request body into v.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.New(http.StatusBadRequest, "invalid request body")
	}
	return nil
}

// urlID parses a numeric path parameter. Non-numeric values cannot
// reference anything, so callers treat a false return as not found.
func urlID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
