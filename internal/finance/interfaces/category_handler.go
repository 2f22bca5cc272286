package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"

	"finsight/internal/finance/domain"
	financeErrors "finsight/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetCategories(userID, categoryType string) ([]domain.Category, error)
	CreateCategory(userID, name, icon, categoryType string) (*domain.Category, error)
	UpdateCategory(userID, categoryID, name, icon string) (*domain.Category, error)
	DeleteCategory(userID, categoryID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryType := r.URL.Query().Get("type")
	if categoryType != "" && !domain.IsValidTransactionType(categoryType) {
		h.respondError(w, http.StatusBadRequest, "Invalid category type")
		return
	}

	categories, err := h.service.GetCategories(userID, categoryType)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(userID, body.Name, body.Icon, body.Type)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{"category": category})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(userID, r.PathValue("id"), body.Name, body.Icon)
	if err != nil {
		h.respondCategoryError(w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"category": category})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteCategory(userID, r.PathValue("id")); err != nil {
		h.respondCategoryError(w, err, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"message": "Category deleted"})
}

func (h *CategoryHandler) respondCategoryError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		h.respondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, financeErrors.ErrCategoryNotEditable):
		h.respondError(w, http.StatusForbidden, "Default categories and other users' categories cannot be modified")
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, fallbackMessage)
	}
}
