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
	"github.com/slaz/gameservices/internal/services/player"
)

// PlayerHandler handles player registry endpoints
type PlayerHandler struct {
	players *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *player.Service) *PlayerHandler {
	return &PlayerHandler{
		players: players,
	}
}

// ListByName handles GET /api/v1/player?name=
func (h *PlayerHandler) ListByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name query parameter is required"))
		return
	}

	players, err := h.players.PlayersByName(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// ListAll handles GET /api/v1/player/all
func (h *PlayerHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.ListPlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /api/v1/player/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	p, err := h.players.GetPlayer(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Create handles POST /api/v1/player, the admission check's entry point
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	claimed := model.UnlinkedGame
	if req.GameID != nil {
		claimed = model.GameID(*req.GameID)
	}

	p, err := h.players.CreatePlayer(r.Context(), req.Name, claimed)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// Delete handles DELETE /api/v1/player/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	if err := h.players.DeletePlayer(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Status(w, http.StatusOK)
}

// Register handles POST /api/v1/player/registration, the saga's inbound
// entry point. Idempotent: 201 when a record is created, 304 when the
// exact (name, gameId) pair already exists.
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	created, err := h.players.RegisterPlayer(r.Context(), req.Name, model.GameID(req.GameID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if created {
		response.Status(w, http.StatusCreated)
	} else {
		response.Status(w, http.StatusNotModified)
	}
}

// GameIDs handles GET /api/v1/player/gameIds?name=
func (h *PlayerHandler) GameIDs(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name query parameter is required"))
		return
	}

	ids, err := h.players.GameIDsByPlayerName(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameIDsFromModel(ids))
}

// playerID extracts and parses the id path variable
func playerID(w http.ResponseWriter, r *http.Request) (model.PlayerID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid player id"))
		return 0, false
	}
	return model.PlayerID(id), true
}
