package infrastructure

import (
	"database/sql"
	"errors"

	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, user_id, name, icon, type, is_default)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.UserID, category.Name, category.Icon, category.Type, category.IsDefault,
	)
	return err
}

func (r *CategoryRepository) FindForUser(userID, categoryType string) ([]domain.Category, error) {
	query := `SELECT id, user_id, name, icon, type, is_default FROM categories
        WHERE (is_default = TRUE OR user_id = $1)`
	args := []interface{}{userID}

	if categoryType != "" {
		args = append(args, categoryType)
		query += " AND type = $2"
	}
	query += " ORDER BY is_default DESC, name ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name,
			&category.Icon, &category.Type, &category.IsDefault); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, icon, type, is_default FROM categories WHERE id = $1`,
		categoryID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Icon, &category.Type, &category.IsDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	result, err := r.db.Exec(
		`UPDATE categories SET name = $1, icon = $2 WHERE id = $3`,
		category.Name, category.Icon, category.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(categoryID string) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}
