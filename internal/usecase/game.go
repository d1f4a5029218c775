package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
)

type GameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Play(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, sessionID string, move int) (*entity.Game, error)
	Restart(ctx context.Context, sessionID string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

type gameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo

	// one event at a time per session; entries live only while a call holds or waits on them
	locksMu sync.Mutex
	locks   map[string]*sessionLock
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "gameUseCase"),
		gameRepo: gameRepo,
		locks:    make(map[string]*sessionLock),
	}
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock, err := that.lock(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return that.getOrCreateGame(ctx, sessionID)
}

func (that *gameUseCase) Play(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "Play", "session", sessionID, "cell", cell)

	unlock, err := that.lock(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !game.ApplyMove(cell) {
		log.Debug("move ignored", "move", game.CurrentMove, "has_winner", game.HasWinner())
		return game, nil
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Debug("move applied", "move", game.CurrentMove, "status", game.Status())

	return game, nil
}

func (that *gameUseCase) JumpTo(ctx context.Context, sessionID string, move int) (*entity.Game, error) {
	log := that.logger.With("method", "JumpTo", "session", sessionID, "move", move)

	unlock, err := that.lock(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = game.JumpTo(move); err != nil {
		return game, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Debug("jumped", "status", game.Status())

	return game, nil
}

func (that *gameUseCase) Restart(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock, err := that.lock(sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game.Restart()

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game restarted", "session", sessionID)

	return game, nil
}

func (that *gameUseCase) lock(sessionID string) (func(), error) {
	if sessionID == "" {
		return nil, apperror.ErrSessionRequired
	}

	that.locksMu.Lock()
	lock, ok := that.locks[sessionID]
	if !ok {
		lock = &sessionLock{}
		that.locks[sessionID] = lock
	}
	lock.refs++
	that.locksMu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.locksMu.Lock()
		defer that.locksMu.Unlock()

		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, sessionID)
		}
	}, nil
}

func (that *gameUseCase) getOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game = entity.NewGame(sessionID)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "session", sessionID)

	return game, nil
}

func (that *gameUseCase) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
