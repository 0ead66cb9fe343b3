package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hangmanlive/hangmanlive/docs"
	transactionhandlers "github.com/hangmanlive/hangmanlive/internal/handlers/transactions"
	wshandlers "github.com/hangmanlive/hangmanlive/internal/handlers/ws"
	"github.com/hangmanlive/hangmanlive/internal/service"
)

type TransactionHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
	AddTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TransactionHandler TransactionHandler
	GameHandler        GameHandler
	Hub                *wshandlers.Hub
}

func New(s *service.Services) *Handlers {
	hub := wshandlers.NewHub()
	return &Handlers{
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		GameHandler:        wshandlers.New(hub, s.GameService),
		Hub:                hub,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", h.TransactionHandler.GetTransactions)
		r.Post("/", h.TransactionHandler.AddTransaction)
		r.Delete("/{id}", h.TransactionHandler.DeleteTransaction)
	})
	r.Get("/ws", h.GameHandler.ServeWS)

	return r
}
