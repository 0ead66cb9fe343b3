package gamerepo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	gamerepo "github.com/hangmanlive/hangmanlive/internal/repo/game-repo"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRepository(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()
	repo := gamerepo.New(client)
	ctx := context.Background()

	playerID := "test-player-" + uuid.NewString()
	challengerID := "test-challenger-" + uuid.NewString()
	game := &domain.Game{
		ID:         uuid.NewString(),
		Player:     domain.User{ID: playerID, Username: "alice"},
		Challenger: domain.User{ID: challengerID, Username: "bob"},
		Word:       "cat",
		Status:     domain.StatusPlaying,
	}

	if err := repo.Save(ctx, game); err != nil {
		t.Fatalf("Failed to save game: %v", err)
	}
	defer cleanupTestData(t, client, game)

	found, err := repo.Find(ctx, game.ID)
	assert.NoError(t, err)
	assert.Equal(t, game, found)

	missing, err := repo.Find(ctx, "no-such-game")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	byPlayer, err := repo.FindByPlayer(ctx, playerID)
	assert.NoError(t, err)
	assert.Len(t, byPlayer, 1)
	assert.Equal(t, game.ID, byPlayer[0].ID)

	byChallenger, err := repo.FindByChallenger(ctx, challengerID)
	assert.NoError(t, err)
	assert.Len(t, byChallenger, 1)

	none, err := repo.FindByPlayer(ctx, "test-nobody-"+uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, none)

	// saving an updated game overwrites in place, no duplicate index entry
	game.Guesses = "c"
	assert.NoError(t, repo.Save(ctx, game))
	byPlayer, err = repo.FindByPlayer(ctx, playerID)
	assert.NoError(t, err)
	assert.Len(t, byPlayer, 1)
	assert.Equal(t, "c", byPlayer[0].Guesses)
}

func cleanupTestData(t *testing.T, client *redis.Client, game *domain.Game) {
	ctx := context.Background()
	keys := []string{
		"game:" + game.ID,
		"user:" + game.Player.ID + ":games",
		"user:" + game.Challenger.ID + ":challenges",
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		t.Errorf("Failed to cleanup game data: %v", err)
	}
}
