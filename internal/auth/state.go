package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidStateToken = errors.New("state token is invalid")
	ErrExpiredStateToken = errors.New("state token is expired")
)

const defaultStateTokenDuration = 10 * time.Minute

type StateManagerInterface interface {
	GenerateStateToken() (string, error)
	VerifyStateToken(stateToken string) error
	Cleanup()
}

type stateToken struct {
	ExpiresAt time.Time
	CreatedAt time.Time
}

// StateManager hands out one-shot CSRF state tokens for the OAuth redirect
// flow. Tokens are consumed on verification; expired leftovers are swept by
// Cleanup, which main schedules on a cron.
type StateManager struct {
	mu     sync.RWMutex
	tokens map[string]stateToken
}

func NewStateManager() StateManagerInterface {
	return &StateManager{
		tokens: make(map[string]stateToken),
	}
}

func (sm *StateManager) GenerateStateToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", ErrInternalError
	}

	token := hex.EncodeToString(tokenBytes)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tokens[token] = stateToken{
		ExpiresAt: time.Now().Add(defaultStateTokenDuration),
		CreatedAt: time.Now(),
	}
	return token, nil
}

func (sm *StateManager) VerifyStateToken(token string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	state, exists := sm.tokens[token]
	if !exists {
		return ErrInvalidStateToken
	}
	delete(sm.tokens, token)

	if time.Now().After(state.ExpiresAt) {
		return ErrExpiredStateToken
	}
	return nil
}

func (sm *StateManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for token, state := range sm.tokens {
		if time.Now().After(state.ExpiresAt) {
			delete(sm.tokens, token)
		}
	}
}
