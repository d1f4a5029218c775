package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Play(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, sessionID string, move int) (*entity.Game, error)
	Restart(ctx context.Context, sessionID string) (*entity.Game, error)
}

type Handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	sessionTTL  time.Duration
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase, sessionTTL time.Duration) *Handlers {
	return &Handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
		sessionTTL:  sessionTTL,
	}
}

type playRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Index")

	game, err := that.gameUseCase.GetOrCreateGame(r.Context(), sessionID(w, r, that.sessionTTL))
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = renderGame(w, game.View()); err != nil {
		log.Error("failed to render game", "error", err)
	}
}

func (that *Handlers) PlayForm(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(mux.Vars(r)["cell"])
	if err != nil {
		http.Error(w, "invalid cell", http.StatusBadRequest)
		return
	}

	// rejected moves simply re-render the page
	if _, err = that.gameUseCase.Play(r.Context(), sessionID(w, r, that.sessionTTL), cell); err != nil {
		that.logger.Error("failed to play", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Handlers) JumpForm(w http.ResponseWriter, r *http.Request) {
	move, err := strconv.Atoi(mux.Vars(r)["move"])
	if err != nil {
		http.Error(w, "invalid move", http.StatusBadRequest)
		return
	}

	_, err = that.gameUseCase.JumpTo(r.Context(), sessionID(w, r, that.sessionTTL), move)
	if err != nil && !errors.Is(err, apperror.ErrMoveOutOfRange) {
		that.logger.Error("failed to jump", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Handlers) RestartForm(w http.ResponseWriter, r *http.Request) {
	if _, err := that.gameUseCase.Restart(r.Context(), sessionID(w, r, that.sessionTTL)); err != nil {
		that.logger.Error("failed to restart", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetOrCreateGame(r.Context(), sessionID(w, r, that.sessionTTL))
	that.writeGame(w, game, err)
}

func (that *Handlers) Play(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	game, err := that.gameUseCase.Play(r.Context(), sessionID(w, r, that.sessionTTL), *req.Cell)
	that.writeGame(w, game, err)
}

func (that *Handlers) Jump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Move == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "move is required"})
		return
	}

	game, err := that.gameUseCase.JumpTo(r.Context(), sessionID(w, r, that.sessionTTL), *req.Move)
	that.writeGame(w, game, err)
}

func (that *Handlers) Restart(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.Restart(r.Context(), sessionID(w, r, that.sessionTTL))
	that.writeGame(w, game, err)
}

func (that *Handlers) writeGame(w http.ResponseWriter, game *entity.Game, err error) {
	switch {
	case errors.Is(err, apperror.ErrMoveOutOfRange):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		that.logger.Error("game request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	default:
		that.writeJSON(w, http.StatusOK, game.View())
	}
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
