package infrastructure

import (
	"sort"
	"sync"

	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
)

// MockTransactionRepository applies query semantics in memory. Application
// tests seed Transactions and inspect Queries to check what the services
// asked for.
type MockTransactionRepository struct {
	mu           sync.Mutex
	Transactions []domain.Transaction
	Queries      []domain.TransactionQuery
	Err          error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) Find(query domain.TransactionQuery) ([]domain.Transaction, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	var matched []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != query.UserID || transaction.Type != query.Type {
			continue
		}
		if query.Window.Start != nil && transaction.Date.Before(*query.Window.Start) {
			continue
		}
		if query.Window.End != nil && transaction.Date.After(*query.Window.End) {
			continue
		}
		matched = append(matched, transaction)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			return &m.Transactions[i], nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
