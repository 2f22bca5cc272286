package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"finsight/internal/finance/application"
	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"

	"github.com/shopspring/decimal"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetUserTransactions(userID, transactionType string, params application.ListParams) ([]domain.Transaction, error)
	DeleteTransaction(transactionID, userID string) error
}

// TransactionHandler serves the expense and income resources. Both share the
// same filter, ordering and limit semantics; only the transaction type and
// the response key differ.
type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.TypeExpense, "expenses")
}

func (h *TransactionHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.TypeIncome, "income")
}

func (h *TransactionHandler) list(w http.ResponseWriter, r *http.Request, transactionType, responseKey string) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := application.ListParams{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Filter:    r.URL.Query().Get("filter"),
		Limit:     r.URL.Query().Get("limit"),
	}

	transactions, err := h.service.GetUserTransactions(userID, transactionType, params)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{responseKey: transactions})
}

func (h *TransactionHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.TypeExpense, "expense")
}

func (h *TransactionHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.TypeIncome, "income")
}

func (h *TransactionHandler) create(w http.ResponseWriter, r *http.Request, transactionType, responseKey string) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Date        string          `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	transaction := domain.Transaction{
		UserID:      userID,
		Amount:      body.Amount,
		Type:        transactionType,
		Description: body.Description,
		Category:    body.Category,
		Date:        date,
	}
	if err := h.service.CreateTransaction(&transaction); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{responseKey: transaction})
}

func (h *TransactionHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r)
}

func (h *TransactionHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r)
}

func (h *TransactionHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID := r.PathValue("id")
	if err := h.service.DeleteTransaction(transactionID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"message": "Transaction deleted"})
}
