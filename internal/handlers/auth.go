package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/omarabdhkem/CarXpert/internal/apperrors"
	"github.com/omarabdhkem/CarXpert/internal/auth"
	"github.com/omarabdhkem/CarXpert/internal/middleware"
	"github.com/omarabdhkem/CarXpert/internal/models"
	"github.com/omarabdhkem/CarXpert/internal/storage"
)

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request, user models.User) {
	session, _ := h.Sessions.Get(r, middleware.SessionName)
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		log.Error("Failed to save session", "error", err)
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertUser
	if err := decode(r, &insert); err != nil {
		h.respondError(w, err)
		return
	}
	if err := insert.Validate(); err != nil {
		h.respondError(w, apperrors.BadRequest(err.Error()))
		return
	}
	if !auth.ValidEmail(insert.Email) {
		h.respondError(w, apperrors.BadRequest("please enter a valid email"))
		return
	}

	hash, err := auth.HashPassword(insert.Password)
	if err != nil {
		h.respondError(w, apperrors.Wrap(err, "failed to hash password"))
		return
	}
	insert.Password = hash

	user, err := h.Store.CreateUser(insert)
	if err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) || errors.Is(err, storage.ErrEmailTaken) {
			h.respondError(w, apperrors.BadRequest(err.Error()))
			return
		}
		h.respondError(w, err)
		return
	}

	h.logIn(w, r, user)
	h.respond(w, http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, ok := h.Store.GetUserByUsername(req.Username)
	if !ok {
		h.respondError(w, apperrors.Unauthorized("invalid username or password"))
		return
	}
	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		h.respondError(w, apperrors.Unauthorized("invalid username or password"))
		return
	}

	h.logIn(w, r, user)
	h.respond(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Sessions.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		log.Error("Failed to clear session", "error", err)
	}
	h.respond(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	user, ok := h.Store.GetUser(userID)
	if !ok {
		h.respondError(w, apperrors.Unauthorized("session user no longer exists"))
		return
	}
	h.respond(w, http.StatusOK, user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var update models.UpdateUser
	if err := decode(r, &update); err != nil {
		h.respondError(w, err)
		return
	}

	user, ok := h.Store.UpdateUser(userID, update)
	if !ok {
		h.respondError(w, apperrors.Unauthorized("session user no longer exists"))
		return
	}
	h.respond(w, http.StatusOK, user)
}
