package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (that *fakeClock) Now() time.Time {
	return that.now
}

func newExpiringRepo(ttl time.Duration) (*memoryGame, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	repo := NewMemoryGameRepository(ttl).(*memoryGame) //nolint: forcetypeassert // constructor returns *memoryGame
	repo.now = clock.Now

	return repo, clock
}

func (that *memoryGame) stored() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.games)
}

func TestMemoryGameRepository_Expiration(t *testing.T) {
	ctx := context.Background()

	t.Run("Game expires with the session", func(t *testing.T) {
		// Given: a stored game and a one hour session
		repo, clock := newExpiringRepo(time.Hour)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedGame("session")))

		// When: the session lifetime passes
		clock.now = clock.now.Add(time.Hour)

		// Then: the game is gone
		_, err := repo.GetByID(ctx, "session")
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Zero(t, repo.stored())
	})

	t.Run("Writes extend the lifetime", func(t *testing.T) {
		// Given: a game saved again half way through its lifetime
		repo, clock := newExpiringRepo(time.Hour)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedGame("session")))

		clock.now = clock.now.Add(30 * time.Minute)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedGame("session")))

		// When: the original lifetime passes
		clock.now = clock.now.Add(45 * time.Minute)

		// Then: the game is still there
		_, err := repo.GetByID(ctx, "session")
		require.NoError(t, err)
	})

	t.Run("Abandoned sessions are dropped on the next write", func(t *testing.T) {
		// Given: many sessions that were never read again
		repo, clock := newExpiringRepo(time.Hour)
		for _, id := range []string{"a", "b", "c"} {
			require.NoError(t, repo.CreateOrUpdate(ctx, playedGame(id)))
		}

		// When: another session writes after they expired
		clock.now = clock.now.Add(2 * time.Hour)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedGame("d")))

		// Then: only the live session is kept
		assert.Equal(t, 1, repo.stored())
	})

	t.Run("Deleting an expired game reports not found", func(t *testing.T) {
		repo, clock := newExpiringRepo(time.Hour)
		require.NoError(t, repo.CreateOrUpdate(ctx, playedGame("session")))

		clock.now = clock.now.Add(time.Hour)

		require.ErrorIs(t, repo.DeleteByID(ctx, "session"), ErrGameNotFound)
		assert.Zero(t, repo.stored())
	})
}
