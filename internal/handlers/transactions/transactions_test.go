package transactions

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	transactionservice "github.com/hangmanlive/hangmanlive/internal/service/transactionservice"
	"github.com/hangmanlive/hangmanlive/pkg/validate"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService, *chi.Mux) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()

	router := chi.NewRouter()
	router.Get("/api/transactions", handler.GetTransactions)
	router.Post("/api/transactions", handler.AddTransaction)
	router.Delete("/api/transactions/{id}", handler.DeleteTransaction)

	return handler, service, router
}

func TestGetTransactions(t *testing.T) {
	_, service, router := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Transactions are returned newest first",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any()).Return([]domain.Transaction{
					{ID: 2, Text: "Salary", Amount: 100},
					{ID: 1, Text: "Coffee", Amount: -5},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":2,"text":"Salary","amount":100},{"id":1,"text":"Coffee","amount":-5}]`,
		},
		{
			name: "Empty collection is an empty array",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.JSONEq(t, tt.expectedBody, resp.Body.String())
		})
	}
}

func TestAddTransaction(t *testing.T) {
	_, service, router := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Valid draft is created",
			body: `{"text":"Coffee","amount":"-5.00"}`,
			prepareMock: func() {
				service.EXPECT().AddTransaction(gomock.Any(), domain.NewTransaction{Text: "Coffee", Amount: "-5.00"}).
					Return(&domain.Transaction{ID: 7, Text: "Coffee", Amount: -5}, nil, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":7,"text":"Coffee","amount":-5}`,
		},
		{
			name: "Invalid draft",
			body: `{"text":"","amount":"abc"}`,
			prepareMock: func() {
				service.EXPECT().AddTransaction(gomock.Any(), domain.NewTransaction{Text: "", Amount: "abc"}).
					Return(nil, []validate.Message{{Field: "text", Text: "Text cannot be blank"}}, transactionservice.ErrInvalidData)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"data is not valid"}`,
		},
		{
			name:         "Malformed JSON body",
			body:         `{"text":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"data is not valid"}`,
		},
		{
			name: "Service failure",
			body: `{"text":"Coffee","amount":"-5.00"}`,
			prepareMock: func() {
				service.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).
					Return(nil, nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.JSONEq(t, tt.expectedBody, resp.Body.String())
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	_, service, router := NewMock(t)
	tests := []struct {
		name         string
		path         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Existing transaction is deleted",
			path: "/api/transactions/7",
			prepareMock: func() {
				service.EXPECT().DeleteTransaction(gomock.Any(), int64(7)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Missing transaction",
			path: "/api/transactions/99",
			prepareMock: func() {
				service.EXPECT().DeleteTransaction(gomock.Any(), int64(99)).
					Return(transactionservice.ErrTransactionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed id",
			path:         "/api/transactions/abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			path: "/api/transactions/7",
			prepareMock: func() {
				service.EXPECT().DeleteTransaction(gomock.Any(), int64(7)).Return(errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}
