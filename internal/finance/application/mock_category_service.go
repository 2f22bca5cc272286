package application

// MockCategoryService backs transaction service tests with a fixed category
// set.
type MockCategoryService struct {
	Known map[string]bool
	Err   error
}

func (m *MockCategoryService) DoesCategoryExist(userID, name, categoryType string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.Known == nil {
		return true, nil
	}
	return m.Known[name], nil
}
