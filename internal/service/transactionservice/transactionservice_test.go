package transactionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hangmanlive/hangmanlive/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetTransactions(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Transaction
		expectedError error
	}{
		{
			name: "Transactions are returned",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Transaction{
					{ID: 2, Text: "Salary", Amount: 100},
					{ID: 1, Text: "Coffee", Amount: -5},
				}, nil)
			},
			expected: []domain.Transaction{
				{ID: 2, Text: "Salary", Amount: 100},
				{ID: 1, Text: "Coffee", Amount: -5},
			},
			expectedError: nil,
		},
		{
			name: "Repository fails",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("some error"))
			},
			expected:      nil,
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.GetTransactions(context.Background())
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestAddTransaction(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		draft         domain.NewTransaction
		prepareMock   func()
		expected      *domain.Transaction
		expectedField string
		expectedError error
	}{
		{
			name:  "Valid transaction is saved",
			draft: domain.NewTransaction{Text: "Coffee", Amount: "-5.00"},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) error {
						txn.ID = 7
						return nil
					})
			},
			expected:      &domain.Transaction{ID: 7, Text: "Coffee", Amount: -5},
			expectedError: nil,
		},
		{
			name:          "Blank text never reaches the repository",
			draft:         domain.NewTransaction{Text: "  ", Amount: "5"},
			prepareMock:   func() {},
			expected:      nil,
			expectedField: "text",
			expectedError: ErrInvalidData,
		},
		{
			name:          "Non-numeric amount never reaches the repository",
			draft:         domain.NewTransaction{Text: "Coffee", Amount: "abc"},
			prepareMock:   func() {},
			expected:      nil,
			expectedField: "amount",
			expectedError: ErrInvalidData,
		},
		{
			name:          "Too many decimals never reaches the repository",
			draft:         domain.NewTransaction{Text: "Coffee", Amount: "5.123"},
			prepareMock:   func() {},
			expected:      nil,
			expectedField: "amount",
			expectedError: ErrInvalidData,
		},
		{
			name:  "Repository failure is propagated",
			draft: domain.NewTransaction{Text: "Coffee", Amount: "-5.00"},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expected:      nil,
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, msgs, err := service.AddTransaction(context.Background(), tt.draft)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expectedError, err)
			if tt.expectedField != "" {
				assert.NotEmpty(t, msgs)
				assert.Equal(t, tt.expectedField, msgs[0].Field)
			} else {
				assert.Empty(t, msgs)
			}
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		id            int64
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Existing transaction is deleted",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any(), int64(1)).Return(&domain.Transaction{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Missing transaction",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "Find fails",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any(), int64(1)).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "Delete fails",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any(), int64(1)).Return(&domain.Transaction{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteTransaction(context.Background(), tt.id)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}
