// Package client talks to the transactions REST API on behalf of the sync
// engine. It is the authoritative store the engine reconciles against.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/pkg/clients"
)

var (
	ErrInvalidData      = errors.New("data is not valid")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

type TransactionClient struct {
	baseURL string
	http    clients.HTTPClientI
}

func New(baseURL string, httpClient clients.HTTPClientI) *TransactionClient {
	return &TransactionClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

func (c *TransactionClient) List(ctx context.Context) ([]domain.Transaction, error) {
	status, body, err := c.http.Get(c.baseURL+"/api/transactions", nil)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var txns []domain.Transaction
	if err := json.Unmarshal(body, &txns); err != nil {
		return nil, fmt.Errorf("can't decode transactions: %w", err)
	}
	return txns, nil
}

func (c *TransactionClient) Create(ctx context.Context, draft domain.NewTransaction) (domain.Transaction, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("can't encode transaction: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	status, body, err := c.http.Post(c.baseURL+"/api/transactions", payload, headers)
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return domain.Transaction{}, err
	}

	switch status {
	case http.StatusCreated:
		var txn domain.Transaction
		if err := json.Unmarshal(body, &txn); err != nil {
			return domain.Transaction{}, fmt.Errorf("can't decode transaction: %w", err)
		}
		return txn, nil
	case http.StatusBadRequest:
		return domain.Transaction{}, ErrInvalidData
	default:
		return domain.Transaction{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}
}

func (c *TransactionClient) Delete(ctx context.Context, id int64) error {
	url := c.baseURL + "/api/transactions/" + strconv.FormatInt(id, 10)
	status, _, err := c.http.Delete(url, nil)
	if err != nil {
		zap.L().Error("can't delete transaction", zap.Error(err))
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}
	return nil
}
