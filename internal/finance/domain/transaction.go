package domain

import (
	"time"

	financeErrors "finsight/internal/finance/errors"

	"github.com/shopspring/decimal"
)

const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeExpense || transactionType == TypeIncome
}

// Transaction is a single expense or income entry. Transactions are immutable
// once created; the only mutation the API offers is a full delete.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return financeErrors.NewValidationError("Amount must be greater than zero")
	}
	if len(t.Description) > 200 {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	if t.Category == "" {
		return financeErrors.NewValidationError("Category must be provided")
	}
	if t.Date.IsZero() {
		return financeErrors.NewValidationError("Date must be provided")
	}
	return nil
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	Find(query TransactionQuery) ([]Transaction, error)
	FindByID(transactionID, userID string) (*Transaction, error)
	Delete(transactionID, userID string) error
}
