package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	transactionservice "github.com/hangmanlive/hangmanlive/internal/service/transactionservice"
	"github.com/hangmanlive/hangmanlive/pkg/utils"
	"github.com/hangmanlive/hangmanlive/pkg/validate"
)

type Service interface {
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, draft domain.NewTransaction) (*domain.Transaction, []validate.Message, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// GetTransactions godoc
//
//	@Summary		Get all transactions
//	@Description	Retrieve the full transaction list, newest first
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{array}		domain.Transaction
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.transactionService.GetTransactions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	utils.RespondWithJSON(w, http.StatusOK, txns)
}

// AddTransaction godoc
//
//	@Summary		Add a new transaction
//	@Description	Validate and store a transaction draft
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			transaction	body		domain.NewTransaction	true	"Transaction draft"
//	@Success		201			{object}	domain.Transaction
//	@Failure		400			{object}	utils.Response	"Draft failed validation"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [post]
func (h *TransactionHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var draft domain.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "data is not valid")
		return
	}

	txn, _, err := h.transactionService.AddTransaction(r.Context(), draft)
	if err != nil {
		if errors.Is(err, transactionservice.ErrInvalidData) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, txn)
}

// DeleteTransaction godoc
//
//	@Summary		Delete a transaction
//	@Description	Remove a transaction by its id
//	@Tags			Transactions
//	@Produce		json
//	@Param			id	path	int	true	"Transaction id"
//	@Success		204	"Transaction deleted"
//	@Failure		400	{object}	utils.Response	"Malformed id"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := h.transactionService.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, transactionservice.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
