package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockUserRepository struct {
	users []*User
}

func (m *mockUserRepository) FindByProviderSubject(provider, subject string) (*User, error) {
	for _, u := range m.users {
		if u.Provider == provider && u.ProviderSubject == subject {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(userID string) (*User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) Create(u *User) error {
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepository) Update(u *User) error {
	for i, existing := range m.users {
		if existing.ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	return ErrUserNotFound
}

func TestUpsertFromProvider_FirstLoginCreates(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewUserService(repo)

	created, err := service.UpsertFromProvider("google", "sub-123", "jo@example.com", "Jo", "https://img.example.com/jo")

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "google", created.Provider)
	assert.Equal(t, "sub-123", created.ProviderSubject)
	assert.Len(t, repo.users, 1)
}

func TestUpsertFromProvider_SecondLoginRefreshesProfile(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewUserService(repo)

	first, err := service.UpsertFromProvider("google", "sub-123", "jo@example.com", "Jo", "")
	assert.NoError(t, err)

	second, err := service.UpsertFromProvider("google", "sub-123", "jo@new.example.com", "Johanna", "https://img.example.com/new")
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "jo@new.example.com", second.Email)
	assert.Equal(t, "Johanna", second.Name)
	assert.Len(t, repo.users, 1)
}

func TestUpsertFromProvider_SameSubjectDifferentProvider(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewUserService(repo)

	first, err := service.UpsertFromProvider("google", "sub-123", "jo@example.com", "Jo", "")
	assert.NoError(t, err)
	second, err := service.UpsertFromProvider("github", "sub-123", "jo@example.com", "Jo", "")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.users, 2)
}

func TestUpsertFromProvider_RejectsBadEmail(t *testing.T) {
	service := NewUserService(&mockUserRepository{})

	_, err := service.UpsertFromProvider("google", "sub-123", "not-an-email", "Jo", "")

	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestGetUserByID(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewUserService(repo)

	created, err := service.UpsertFromProvider("google", "sub-123", "jo@example.com", "Jo", "")
	assert.NoError(t, err)

	found, err := service.GetUserByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	_, err = service.GetUserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
