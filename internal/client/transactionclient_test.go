package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hangmanlive/hangmanlive/internal/client"
	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/pkg/clients"
)

func newTestClient(handler http.HandlerFunc) (*client.TransactionClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	return client.New(server.URL, clients.NewHTTPClient()), server
}

func TestList(t *testing.T) {
	t.Run("List decodes the collection", func(t *testing.T) {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/transactions", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]domain.Transaction{
				{ID: 2, Text: "Salary", Amount: 100},
				{ID: 1, Text: "Coffee", Amount: -5},
			})
		})
		defer server.Close()

		txns, err := c.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
		assert.Equal(t, "Salary", txns[0].Text)
	})

	t.Run("List rejects unexpected status", func(t *testing.T) {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer server.Close()

		_, err := c.List(context.Background())
		assert.ErrorIs(t, err, client.ErrUnexpectedStatus)
	})
}

func TestCreate(t *testing.T) {
	t.Run("Create decodes the created transaction", func(t *testing.T) {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var draft domain.NewTransaction
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			assert.Equal(t, "Coffee", draft.Text)
			assert.Equal(t, "-5.00", draft.Amount)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(domain.Transaction{ID: 7, Text: "Coffee", Amount: -5})
		})
		defer server.Close()

		txn, err := c.Create(context.Background(), domain.NewTransaction{Text: "Coffee", Amount: "-5.00"})
		assert.NoError(t, err)
		assert.Equal(t, domain.Transaction{ID: 7, Text: "Coffee", Amount: -5}, txn)
	})

	t.Run("Create maps 400 to ErrInvalidData", func(t *testing.T) {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"data is not valid"}`))
		})
		defer server.Close()

		_, err := c.Create(context.Background(), domain.NewTransaction{})
		assert.ErrorIs(t, err, client.ErrInvalidData)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Delete hits the id route", func(t *testing.T) {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/transactions/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})
		defer server.Close()

		assert.NoError(t, c.Delete(context.Background(), 7))
	})

	t.Run("Delete rejects unexpected status", func(t *testing.T) {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer server.Close()

		assert.ErrorIs(t, c.Delete(context.Background(), 7), client.ErrUnexpectedStatus)
	})
}
