package repo

import (
	"github.com/redis/go-redis/v9"

	"github.com/hangmanlive/hangmanlive/internal/pg"
	gamerepo "github.com/hangmanlive/hangmanlive/internal/repo/game-repo"
	transactionrepo "github.com/hangmanlive/hangmanlive/internal/repo/transaction-repo"
	"github.com/hangmanlive/hangmanlive/internal/service/gameservice"
	"github.com/hangmanlive/hangmanlive/internal/service/transactionservice"
)

type Repositories struct {
	TransactionRepo transactionservice.Repo
	GameRepo        gameservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager, redisClient *redis.Client) *Repositories {
	transactionRepo := transactionrepo.New(conn, txManager)
	gameRepo := gamerepo.New(redisClient)

	return &Repositories{
		TransactionRepo: transactionRepo,
		GameRepo:        gameRepo,
	}
}
