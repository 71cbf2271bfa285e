package main

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"github.com/omarabdhkem/CarXpert/internal/config"
	"github.com/omarabdhkem/CarXpert/internal/handlers"
	"github.com/omarabdhkem/CarXpert/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	if level, err := log.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store := storage.New()
	if cfg.Server.SeedDemo {
		if err := store.Seed(); err != nil {
			log.Fatal("Failed to seed demo data", "error", err)
		}
		log.Info("Seeded demo data")
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	h := handlers.New(store, sessionStore, cfg)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Mount("/", h.Router())

	addr := "0.0.0.0:" + cfg.Server.Port
	log.Info("Server starting", "addr", addr, "env", cfg.Server.Env)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
