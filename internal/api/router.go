package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slaz/gameservices/internal/api/apierr"
	"github.com/slaz/gameservices/internal/api/handler"
	"github.com/slaz/gameservices/internal/middleware"
	"github.com/slaz/gameservices/internal/services/game"
	"github.com/slaz/gameservices/internal/services/player"
)

// GameRouterConfig holds configuration for the game service router
type GameRouterConfig struct {
	Logger      *slog.Logger
	GameService *game.Service
}

// NewGameRouter creates the game service router with all routes configured
func NewGameRouter(cfg GameRouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	games := api.PathPrefix("/game").Subrouter()
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/filter", gameHandler.Filter).Methods(http.MethodGet)
	games.HandleFunc("/{id:[0-9]+}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id:[0-9]+}", gameHandler.Update).Methods(http.MethodPut)
	games.HandleFunc("/{id:[0-9]+}", gameHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// PlayerRouterConfig holds configuration for the player service router
type PlayerRouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
}

// NewPlayerRouter creates the player service router with all routes configured
func NewPlayerRouter(cfg PlayerRouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	players := api.PathPrefix("/player").Subrouter()
	players.HandleFunc("", playerHandler.ListByName).Methods(http.MethodGet)
	players.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("/all", playerHandler.ListAll).Methods(http.MethodGet)
	players.HandleFunc("/registration", playerHandler.Register).Methods(http.MethodPost)
	players.HandleFunc("/gameIds", playerHandler.GameIDs).Methods(http.MethodGet)
	players.HandleFunc("/{id:[0-9]+}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id:[0-9]+}", playerHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
