package transactionservice

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/pkg/validate"
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Transaction, error)
	Find(ctx context.Context, id int64) (*domain.Transaction, error)
	Save(ctx context.Context, txn *domain.Transaction) error
	Delete(ctx context.Context, id int64) error
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
	ErrInvalidData         = errors.New("data is not valid")
	ErrTransactionNotFound = errors.New("transaction not found")
)

func (s *Service) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// AddTransaction validates the draft before anything touches the database.
// Validation failures come back as field messages alongside ErrInvalidData.
func (s *Service) AddTransaction(ctx context.Context, draft domain.NewTransaction) (*domain.Transaction, []validate.Message, error) {
	if msgs := validate.NewTransaction(draft); len(msgs) > 0 {
		zap.L().Info("rejected invalid transaction", zap.String("text", draft.Text))
		return nil, msgs, ErrInvalidData
	}

	amount, err := strconv.ParseFloat(draft.Amount, 64)
	if err != nil {
		return nil, nil, ErrInvalidData
	}

	txn := &domain.Transaction{
		Text:   draft.Text,
		Amount: amount,
	}
	if err := s.repo.Save(ctx, txn); err != nil {
		zap.L().Error("can't save transaction: ", zap.Error(err))
		return nil, nil, err
	}

	return txn, nil, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	existing, err := s.repo.Find(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		zap.L().Info("transaction not found", zap.Int64("id", id))
		return ErrTransactionNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete transaction: ", zap.Error(err))
		return err
	}
	return nil
}
