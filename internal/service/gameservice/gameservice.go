package gameservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/internal/game"
)

type Repo interface {
	Save(ctx context.Context, g *domain.Game) error
	Find(ctx context.Context, id string) (*domain.Game, error)
	FindByPlayer(ctx context.Context, userID string) ([]domain.Game, error)
	FindByChallenger(ctx context.Context, userID string) ([]domain.Game, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrGameNotFound = errors.New("game not found")
	ErrEmptyWord    = errors.New("word cannot be empty")
)

func (s *Service) NewGame(ctx context.Context, draft domain.NewGame) (*domain.Game, error) {
	word := strings.ToLower(strings.TrimSpace(draft.Word))
	if word == "" {
		return nil, ErrEmptyWord
	}

	g := &domain.Game{
		ID:         uuid.NewString(),
		Player:     domain.User{ID: draft.PlayerID},
		Challenger: domain.User{ID: draft.ChallengerID},
		Word:       word,
		Status:     domain.StatusPlaying,
	}

	if err := s.repo.Save(ctx, g); err != nil {
		zap.L().Error("can't save game: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("new game started",
		zap.String("game_id", g.ID),
		zap.String("player_id", draft.PlayerID),
		zap.String("challenger_id", draft.ChallengerID))
	return g, nil
}

// Guess applies a single letter to the game and persists the result. Guesses
// against finished games are accepted but change nothing.
func (s *Service) Guess(ctx context.Context, gameID, letter string) (*domain.Game, error) {
	existing, err := s.repo.Find(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		zap.L().Info("guess for unknown game", zap.String("game_id", gameID))
		return nil, ErrGameNotFound
	}

	updated := game.ApplyGuess(*existing, strings.ToLower(letter))
	if err := s.repo.Save(ctx, &updated); err != nil {
		zap.L().Error("can't save guess: ", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (s *Service) GamesByPlayer(ctx context.Context, userID string) ([]domain.Game, error) {
	games, err := s.repo.FindByPlayer(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get games by player", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (s *Service) GamesByChallenger(ctx context.Context, userID string) ([]domain.Game, error) {
	games, err := s.repo.FindByChallenger(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get games by challenger", zap.Error(err))
		return nil, err
	}
	return games, nil
}
