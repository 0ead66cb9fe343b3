package transactionrepo

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT id, text, amount
        FROM transactions
        ORDER BY id DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.ID, &txn.Text, &txn.Amount); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r *Repository) Find(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
        SELECT id, text, amount
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var txn domain.Transaction
	err := row.Scan(&txn.ID, &txn.Text, &txn.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) Save(ctx context.Context, txn *domain.Transaction) error {
	query := `
        INSERT INTO transactions (text, amount)
        VALUES ($1, $2)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, txn.Text, txn.Amount)
		if err := row.Scan(&txn.ID); err != nil {
			zap.L().Error("can't save transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
        DELETE FROM transactions
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, id); err != nil {
			zap.L().Error("can't delete transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
