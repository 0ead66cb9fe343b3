package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughBegin(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name: "Transactions found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "text", "amount"}).
					AddRow(int64(2), "Salary", 100.0).
					AddRow(int64(1), "Coffee", -5.0)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, amount FROM transactions ORDER BY id DESC")).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Transaction{
				{ID: 2, Text: "Salary", Amount: 100.0},
				{ID: 1, Text: "Coffee", Amount: -5.0},
			},
		},
		{
			name: "Empty table",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "text", "amount"})
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, amount FROM transactions ORDER BY id DESC")).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, amount FROM transactions ORDER BY id DESC")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Find(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Transaction
	}{
		{
			name: "Transaction exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "text", "amount"}).
					AddRow(int64(1), "Coffee", -5.0)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, amount FROM transactions WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.Transaction{ID: 1, Text: "Coffee", Amount: -5.0},
		},
		{
			name: "Transaction does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, amount FROM transactions WHERE id = $1")).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, amount FROM transactions WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Find(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	t.Run("Save assigns the generated id", func(t *testing.T) {
		passthroughBegin(txManager)
		rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(7))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (text, amount) VALUES ($1, $2) RETURNING id")).
			WithArgs("Coffee", -5.0).
			WillReturnRows(rows)

		txn := &domain.Transaction{Text: "Coffee", Amount: -5.0}
		err := repo.Save(context.Background(), txn)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), txn.ID)
	})

	t.Run("Save propagates database errors", func(t *testing.T) {
		passthroughBegin(txManager)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (text, amount) VALUES ($1, $2) RETURNING id")).
			WithArgs("Coffee", -5.0).
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), &domain.Transaction{Text: "Coffee", Amount: -5.0})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	t.Run("Delete succeeds", func(t *testing.T) {
		passthroughBegin(txManager)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("Delete propagates database errors", func(t *testing.T) {
		passthroughBegin(txManager)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Delete(context.Background(), 1))
	})
}
