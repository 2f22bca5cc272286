package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, amount, type, description, category, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID, transaction.UserID, transaction.Amount, transaction.Type,
		transaction.Description, transaction.Category, transaction.Date, transaction.CreatedAt,
	)
	return err
}

// Find translates a query descriptor into SQL. Ordering is fixed: date
// descending, created_at descending.
func (r *TransactionRepository) Find(query domain.TransactionQuery) ([]domain.Transaction, error) {
	sqlQuery := `SELECT id, user_id, amount, type, description, category, date, created_at
        FROM transactions WHERE user_id = $1 AND type = $2`
	args := []interface{}{query.UserID, query.Type}

	if query.Window.Start != nil {
		args = append(args, *query.Window.Start)
		sqlQuery += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if query.Window.End != nil {
		args = append(args, *query.Window.End)
		sqlQuery += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	sqlQuery += " ORDER BY date DESC, created_at DESC"
	if query.Limit > 0 {
		args = append(args, query.Limit)
		sqlQuery += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Type,
			&transaction.Description, &transaction.Category, &transaction.Date, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, user_id, amount, type, description, category, date, created_at
        FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	).Scan(&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Type,
		&transaction.Description, &transaction.Category, &transaction.Date, &transaction.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Delete(transactionID, userID string) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}
