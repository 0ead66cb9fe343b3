package service

import (
	"github.com/hangmanlive/hangmanlive/internal/handlers/transactions"
	"github.com/hangmanlive/hangmanlive/internal/handlers/ws"

	"github.com/hangmanlive/hangmanlive/internal/repo"
	gameservice "github.com/hangmanlive/hangmanlive/internal/service/gameservice"
	transactionservice "github.com/hangmanlive/hangmanlive/internal/service/transactionservice"
)

type Services struct {
	TransactionService transactions.Service
	GameService        ws.GameService
}

func New(repo *repo.Repositories) *Services {
	transactionService := transactionservice.New(repo.TransactionRepo)
	gameService := gameservice.New(repo.GameRepo)

	return &Services{
		TransactionService: transactionService,
		GameService:        gameService,
	}
}
