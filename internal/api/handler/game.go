package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/slaz/gameservices/internal/api/apierr"
	"github.com/slaz/gameservices/internal/api/request"
	"github.com/slaz/gameservices/internal/api/response"
	"github.com/slaz/gameservices/internal/model"
	"github.com/slaz/gameservices/internal/services/game"
)

// GameHandler handles game registry endpoints
type GameHandler struct {
	games *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *game.Service) *GameHandler {
	return &GameHandler{
		games: games,
	}
}

// List handles GET /api/v1/game
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Get handles GET /api/v1/game/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Create handles POST /api/v1/game, the creation saga's entry point
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}
	if req.PlayerName == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("playerName is required"))
		return
	}

	g, _, err := h.games.CreateGame(r.Context(), req.Name, req.PlayerName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Update handles PUT /api/v1/game/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	// Updates parse the status strictly; only filter queries are tolerant
	status, valid := model.ParseGameStatus(req.Status)
	if !valid {
		apierr.WriteError(w, model.ErrInvalidGameStatus)
		return
	}

	g, err := h.games.UpdateGame(r.Context(), id, req.Name, status)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/game/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	if err := h.games.DeleteGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Status(w, http.StatusOK)
}

// Filter handles GET /api/v1/game/filter?gameName=&status=&playerName=
// All three parameters must be present; a blank value means "no filter".
func (h *GameHandler) Filter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	for _, param := range []string{"gameName", "status", "playerName"} {
		if !query.Has(param) {
			apierr.WriteError(w, apierr.NewInvalidRequestError(param+" query parameter is required"))
			return
		}
	}

	games, err := h.games.FilteredGames(r.Context(),
		query.Get("gameName"),
		query.Get("status"),
		query.Get("playerName"),
	)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// gameID extracts and parses the id path variable, writing the error
// response itself when parsing fails
func gameID(w http.ResponseWriter, r *http.Request) (model.GameID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid game id"))
		return 0, false
	}
	return model.GameID(id), true
}
