package domain

import (
	financeErrors "finsight/internal/finance/errors"
)

// Category groups transactions by name. Default categories have a nil UserID
// and are shared read-only fixtures; user categories are private to their
// owner.
type Category struct {
	ID        string  `json:"id"`
	UserID    *string `json:"-"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Type      string  `json:"type"`
	IsDefault bool    `json:"is_default"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return financeErrors.NewValidationError("Name must be provided")
	}
	if len(c.Name) > 50 {
		return financeErrors.NewValidationError("Name must be of length less than 50")
	}
	if !IsValidTransactionType(c.Type) {
		return financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	return nil
}

// OwnedBy reports whether the category is a private category of the given
// user. Default categories are owned by nobody.
func (c *Category) OwnedBy(userID string) bool {
	return c.UserID != nil && *c.UserID == userID
}

type CategoryRepository interface {
	Save(category Category) error
	// FindForUser returns the default categories plus the user's own ones,
	// optionally restricted to a type.
	FindForUser(userID, categoryType string) ([]Category, error)
	FindByID(categoryID string) (*Category, error)
	Update(category Category) error
	Delete(categoryID string) error
}
