package infrastructure

import (
	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
)

type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindForUser(userID, categoryType string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var matched []domain.Category
	for _, category := range m.Categories {
		if !category.IsDefault && !category.OwnedBy(userID) {
			continue
		}
		if categoryType != "" && category.Type != categoryType {
			continue
		}
		matched = append(matched, category)
	}
	return matched, nil
}

func (m *MockCategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			return &m.Categories[i], nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(categoryID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}
