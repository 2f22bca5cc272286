package interfaces

import (
	"finsight/internal/finance/application"
	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
)

type MockTransactionService struct {
	Transactions []domain.Transaction
	SavedParams  *application.ListParams
	Err          error
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = "generated-id"
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID, transactionType string, params application.ListParams) ([]domain.Transaction, error) {
	m.SavedParams = &params
	if m.Err != nil {
		return nil, m.Err
	}
	matched := []domain.Transaction{}
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Type == transactionType {
			matched = append(matched, transaction)
		}
	}
	return matched, nil
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
