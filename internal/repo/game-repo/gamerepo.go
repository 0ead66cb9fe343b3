package gamerepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/domain"
)

const (
	keyGame            = "game:%s"
	keyPlayerGames     = "user:%s:games"
	keyChallengerGames = "user:%s:challenges"
)

type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// Save persists the game and indexes it under both participants. Games are
// never deleted here; archival is somebody else's problem.
func (r *Repository) Save(ctx context.Context, game *domain.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("can't marshal game: %w", err)
	}

	key := fmt.Sprintf(keyGame, game.ID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	if err := r.client.SAdd(ctx, fmt.Sprintf(keyPlayerGames, game.Player.ID), game.ID).Err(); err != nil {
		return fmt.Errorf("can't index game by player: %w", err)
	}
	if err := r.client.SAdd(ctx, fmt.Sprintf(keyChallengerGames, game.Challenger.ID), game.ID).Err(); err != nil {
		return fmt.Errorf("can't index game by challenger: %w", err)
	}

	return nil
}

func (r *Repository) Find(ctx context.Context, id string) (*domain.Game, error) {
	data, err := r.client.Get(ctx, fmt.Sprintf(keyGame, id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}

	var game domain.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, fmt.Errorf("can't unmarshal game: %w", err)
	}
	return &game, nil
}

func (r *Repository) FindByPlayer(ctx context.Context, userID string) ([]domain.Game, error) {
	return r.findIndexed(ctx, fmt.Sprintf(keyPlayerGames, userID))
}

func (r *Repository) FindByChallenger(ctx context.Context, userID string) ([]domain.Game, error) {
	return r.findIndexed(ctx, fmt.Sprintf(keyChallengerGames, userID))
}

func (r *Repository) findIndexed(ctx context.Context, indexKey string) ([]domain.Game, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("can't read game index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf(keyGame, id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("can't bulk get games: %w", err)
	}

	var games []domain.Game
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			continue
		}
		var game domain.Game
		if err := json.Unmarshal([]byte(data), &game); err != nil {
			zap.L().Warn("skipping undecodable game", zap.Error(err))
			continue
		}
		games = append(games, game)
	}
	return games, nil
}
