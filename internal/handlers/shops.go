package handlers

import (
	"net/http"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
)

func (h *Handler) ListCarShops(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.Store.GetCarShops())
}

func (h *Handler) GetCarShop(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		h.respondError(w, apperrors.NotFound("shop not found"))
		return
	}
	shop, ok := h.Store.GetCarShop(id)
	if !ok {
		h.respondError(w, apperrors.NotFound("shop not found"))
		return
	}
	h.respond(w, http.StatusOK, shop)
}

func (h *Handler) ListMaintenanceShops(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.Store.GetMaintenanceShops())
}

func (h *Handler) GetMaintenanceShop(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		h.respondError(w, apperrors.NotFound("maintenance shop not found"))
		return
	}
	shop, ok := h.Store.GetMaintenanceShop(id)
	if !ok {
		h.respondError(w, apperrors.NotFound("maintenance shop not found"))
		return
	}
	h.respond(w, http.StatusOK, shop)
}
