package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type memoryEntry struct {
	game      entity.Game
	expiresAt time.Time
}

type memoryGame struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	games map[string]memoryEntry
}

// NewMemoryGameRepository - games expire ttl after their last write, like the redis store.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return &memoryGame{
		ttl:   ttl,
		now:   time.Now,
		games: make(map[string]memoryEntry),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	that.purgeExpired(now)

	that.games[game.ID] = memoryEntry{
		game:      cloneGame(game),
		expiresAt: now.Add(that.ttl),
	}

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok {
		return &entity.Game{}, ErrGameNotFound
	}

	if that.expired(entry, that.now()) {
		delete(that.games, id)
		return &entity.Game{}, ErrGameNotFound
	}

	existingGame := cloneGame(&entry.game)

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	if that.expired(entry, that.now()) {
		return ErrGameNotFound
	}

	return nil
}

// a zero ttl keeps games until they are deleted.
func (that *memoryGame) expired(entry memoryEntry, now time.Time) bool {
	return that.ttl > 0 && !now.Before(entry.expiresAt)
}

// purgeExpired - abandoned sessions are dropped on the next write.
func (that *memoryGame) purgeExpired(now time.Time) {
	for id, entry := range that.games {
		if that.expired(entry, now) {
			delete(that.games, id)
		}
	}
}

// stored games must not share history with the caller's copy.
func cloneGame(game *entity.Game) entity.Game {
	return entity.Game{
		ID:          game.ID,
		History:     append([]entity.Board(nil), game.History...),
		CurrentMove: game.CurrentMove,
	}
}
