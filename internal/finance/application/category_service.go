package application

import (
	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"

	"github.com/google/uuid"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetCategories returns the shared default categories plus the user's own,
// optionally restricted to a type.
func (s *CategoryService) GetCategories(userID, categoryType string) ([]domain.Category, error) {
	categories, err := s.repo.FindForUser(userID, categoryType)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(userID, name, icon, categoryType string) (*domain.Category, error) {
	category := domain.Category{
		ID:        uuid.NewString(),
		UserID:    &userID,
		Name:      name,
		Icon:      icon,
		Type:      categoryType,
		IsDefault: false,
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(userID, categoryID, name, icon string) (*domain.Category, error) {
	category, err := s.editableCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}
	category.Name = name
	category.Icon = icon
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(userID, categoryID string) error {
	if _, err := s.editableCategory(userID, categoryID); err != nil {
		return err
	}
	return s.repo.Delete(categoryID)
}

func (s *CategoryService) DoesCategoryExist(userID, name, categoryType string) (bool, error) {
	categories, err := s.repo.FindForUser(userID, categoryType)
	if err != nil {
		return false, err
	}
	for _, category := range categories {
		if category.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// editableCategory loads a category and checks the caller may mutate it:
// default categories and categories owned by other users are off limits.
func (s *CategoryService) editableCategory(userID, categoryID string) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category.IsDefault || !category.OwnedBy(userID) {
		return nil, financeErrors.ErrCategoryNotEditable
	}
	return category, nil
}
