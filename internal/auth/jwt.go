package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidSessionToken = errors.New("session token is invalid")
	ErrExpiredSessionToken = errors.New("session token is expired")
)

type JWTManagerInterface interface {
	GenerateSessionToken(userID string, duration time.Duration) (string, error)
	ValidateSessionToken(tokenString string) (string, error)
}

type SessionTokenCustomClaims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

// JWTManager signs and validates the session cookie tokens.
type JWTManager struct {
	secret string
}

func NewJWTManager() *JWTManager {
	return &JWTManager{secret: os.Getenv("JWT_SECRET")}
}

func (j *JWTManager) GenerateSessionToken(userID string, duration time.Duration) (string, error) {
	claims := &SessionTokenCustomClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(duration).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

func (j *JWTManager) ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionTokenCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return "", ErrExpiredSessionToken
			}
		}
		return "", err
	}

	claims, ok := token.Claims.(*SessionTokenCustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidSessionToken
	}
	return claims.UserID, nil
}
