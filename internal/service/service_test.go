package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hangmanlive/hangmanlive/internal/repo"
	"github.com/hangmanlive/hangmanlive/internal/service/gameservice"
	"github.com/hangmanlive/hangmanlive/internal/service/transactionservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionRepo := transactionservice.NewMockRepo(ctrl)
	mockGameRepo := gameservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		TransactionRepo: mockTransactionRepo,
		GameRepo:        mockGameRepo,
	}

	services := New(repos)

	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.GameService)
}
