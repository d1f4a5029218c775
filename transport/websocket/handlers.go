package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func (that *Server) process(ctx context.Context, sessionID string, msg *Message) Response {
	response := Response{Action: msg.Action}

	handler, ok := that.handlers[msg.Action]
	if !ok {
		response.Payload.Error = fmt.Sprintf("%v: %q", apperror.ErrUnknownAction, msg.Action)
		return response
	}

	var payload RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			response.Payload.Error = "invalid payload"
			return response
		}
	}

	game, err := handler(ctx, sessionID, payload)
	if err != nil {
		response.Payload.Error = err.Error()
	}

	if game != nil {
		view := game.View()
		response.Payload.Game = &view
	}

	return response
}

func (that *Server) handleState(ctx context.Context, sessionID string, _ RequestPayload) (*entity.Game, error) {
	return that.gameUseCase.GetOrCreateGame(ctx, sessionID)
}

func (that *Server) handlePlay(ctx context.Context, sessionID string, payload RequestPayload) (*entity.Game, error) {
	if payload.Cell == nil {
		return nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell)
	}

	return that.gameUseCase.Play(ctx, sessionID, *payload.Cell)
}

func (that *Server) handleJump(ctx context.Context, sessionID string, payload RequestPayload) (*entity.Game, error) {
	if payload.Move == nil {
		return nil, fmt.Errorf("%w: move is required", apperror.ErrInvalidMove)
	}

	return that.gameUseCase.JumpTo(ctx, sessionID, *payload.Move)
}

func (that *Server) handleRestart(ctx context.Context, sessionID string, _ RequestPayload) (*entity.Game, error) {
	return that.gameUseCase.Restart(ctx, sessionID)
}
