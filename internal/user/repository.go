package user

import (
	"database/sql"
	"errors"
)

type Repository interface {
	FindByProviderSubject(provider, subject string) (*User, error)
	FindByID(userID string) (*User, error)
	Create(u *User) error
	Update(u *User) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

const userColumns = `id, provider, provider_subject, email, name, avatar_url, created_at, updated_at`

func (r *userRepository) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Provider, &u.ProviderSubject, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByProviderSubject(provider, subject string) (*User, error) {
	row := r.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE provider = $1 AND provider_subject = $2`,
		provider, subject,
	)
	return r.scanUser(row)
}

func (r *userRepository) FindByID(userID string) (*User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return r.scanUser(row)
}

func (r *userRepository) Create(u *User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (id, provider, provider_subject, email, name, avatar_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Provider, u.ProviderSubject, u.Email, u.Name, u.AvatarURL, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *userRepository) Update(u *User) error {
	_, err := r.db.Exec(
		`UPDATE users SET email = $1, name = $2, avatar_url = $3, updated_at = $4 WHERE id = $5`,
		u.Email, u.Name, u.AvatarURL, u.UpdatedAt, u.ID,
	)
	return err
}
