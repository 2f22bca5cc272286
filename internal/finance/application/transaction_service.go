package application

import (
	"fmt"
	"time"

	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
	"finsight/internal/log"

	"github.com/google/uuid"
)

type CategoryServiceInterface interface {
	DoesCategoryExist(userID, name, categoryType string) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
	now             func() time.Time
	logger          *log.Logger
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface, logger *log.Logger) *TransactionService {
	return &TransactionService{
		repo:            repo,
		categoryService: categoryService,
		now:             time.Now,
		logger:          logger,
	}
}

// SetClock overrides the service clock. Tests use it to pin "now".
func (s *TransactionService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.CreatedAt = s.now().UTC()
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryService.DoesCategoryExist(transaction.UserID, transaction.Category, transaction.Type)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return financeErrors.ErrUnknownCategory
	}

	return s.repo.Save(*transaction)
}

// GetUserTransactions lists the user's transactions of one type, applying the
// request's window, ordering and limit semantics.
func (s *TransactionService) GetUserTransactions(userID, transactionType string, params ListParams) ([]domain.Transaction, error) {
	query := ResolveQuery(userID, transactionType, params, s.now())
	transactions, err := s.repo.Find(query)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) DeleteTransaction(transactionID, userID string) error {
	return s.repo.Delete(transactionID, userID)
}
