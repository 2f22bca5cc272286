package application

import (
	"testing"

	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
	"finsight/internal/finance/infrastructure"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func seededCategoryRepo() *infrastructure.MockCategoryRepository {
	return &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "def-food", Name: "Food", Icon: "🍔", Type: "expense", IsDefault: true},
			{ID: "def-salary", Name: "Salary", Icon: "💼", Type: "income", IsDefault: true},
			{ID: "cat-1", UserID: strPtr("user-1"), Name: "Hobbies", Icon: "🎨", Type: "expense"},
			{ID: "cat-2", UserID: strPtr("user-2"), Name: "Pets", Icon: "🐕", Type: "expense"},
		},
	}
}

func TestGetCategories_ReturnsDefaultsPlusOwn(t *testing.T) {
	service := NewCategoryService(seededCategoryRepo())

	categories, err := service.GetCategories("user-1", "")

	assert.NoError(t, err)
	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.Name
	}
	assert.ElementsMatch(t, []string{"Food", "Salary", "Hobbies"}, names)
}

func TestGetCategories_TypeFilter(t *testing.T) {
	service := NewCategoryService(seededCategoryRepo())

	categories, err := service.GetCategories("user-1", "income")

	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Salary", categories[0].Name)
}

func TestCreateCategory_IsPrivateAndNeverDefault(t *testing.T) {
	repo := seededCategoryRepo()
	service := NewCategoryService(repo)

	category, err := service.CreateCategory("user-1", "Gardening", "🌱", "expense")

	assert.NoError(t, err)
	assert.False(t, category.IsDefault)
	assert.True(t, category.OwnedBy("user-1"))
	assert.NotEmpty(t, category.ID)
}

func TestCreateCategory_Validation(t *testing.T) {
	service := NewCategoryService(seededCategoryRepo())

	_, err := service.CreateCategory("user-1", "", "🌱", "expense")
	assert.True(t, financeErrors.IsValidationError(err))

	_, err = service.CreateCategory("user-1", "Gardening", "🌱", "transfer")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateCategory_OwnCategory(t *testing.T) {
	repo := seededCategoryRepo()
	service := NewCategoryService(repo)

	category, err := service.UpdateCategory("user-1", "cat-1", "Art Supplies", "🖌️")

	assert.NoError(t, err)
	assert.Equal(t, "Art Supplies", category.Name)
}

func TestUpdateCategory_DefaultIsImmutable(t *testing.T) {
	service := NewCategoryService(seededCategoryRepo())

	_, err := service.UpdateCategory("user-1", "def-food", "Groceries", "🛒")

	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotEditable)
}

func TestUpdateCategory_ForeignCategoryIsForbidden(t *testing.T) {
	service := NewCategoryService(seededCategoryRepo())

	_, err := service.UpdateCategory("user-1", "cat-2", "Mine Now", "😈")

	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotEditable)
}

func TestDeleteCategory(t *testing.T) {
	repo := seededCategoryRepo()
	service := NewCategoryService(repo)

	assert.NoError(t, service.DeleteCategory("user-1", "cat-1"))
	assert.ErrorIs(t, service.DeleteCategory("user-1", "def-food"), financeErrors.ErrCategoryNotEditable)
	assert.ErrorIs(t, service.DeleteCategory("user-1", "cat-2"), financeErrors.ErrCategoryNotEditable)
	assert.ErrorIs(t, service.DeleteCategory("user-1", "missing"), financeErrors.ErrCategoryNotFound)
}

func TestDoesCategoryExist(t *testing.T) {
	service := NewCategoryService(seededCategoryRepo())

	exists, err := service.DoesCategoryExist("user-1", "Food", "expense")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.DoesCategoryExist("user-1", "Pets", "expense")
	assert.NoError(t, err)
	assert.False(t, exists, "other users' private categories are invisible")
}
