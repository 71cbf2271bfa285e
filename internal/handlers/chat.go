package handlers

import (
	"net/http"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
	"github.com/omarabdhkem/CarXpert/internal/chat"
)

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var msg chat.Message
	if err := decode(r, &msg); err != nil {
		h.respondError(w, err)
		return
	}
	if msg.Message == "" {
		h.respondError(w, apperrors.BadRequest("message is required"))
		return
	}
	h.respond(w, http.StatusOK, chat.Respond(msg))
}
