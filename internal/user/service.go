package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidEmail  = errors.New("email address is not valid")
	ErrInternalError = errors.New("internal Server Error")
)

// User is an account backed by an external OAuth identity. There are no
// local credentials; the provider/subject pair is the primary identity.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	Provider        string    `json:"-"`
	ProviderSubject string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Service interface {
	// UpsertFromProvider creates the user on first login and refreshes the
	// provider-sourced profile fields on subsequent logins.
	UpsertFromProvider(provider, subject, email, name, avatarURL string) (*User, error)
	GetUserByID(userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) UpsertFromProvider(provider, subject, email, name, avatarURL string) (*User, error) {
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByProviderSubject(provider, subject)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	now := time.Now().UTC()
	if existing == nil {
		newUser := &User{
			ID:              uuid.NewString(),
			Email:           email,
			Name:            name,
			AvatarURL:       avatarURL,
			Provider:        provider,
			ProviderSubject: subject,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.repo.Create(newUser); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return newUser, nil
	}

	existing.Email = email
	existing.Name = name
	existing.AvatarURL = avatarURL
	existing.UpdatedAt = now
	if err := s.repo.Update(existing); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return existing, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.FindByID(userID)
}
