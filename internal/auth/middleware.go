package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"finsight/internal/user"
)

// SessionCookieName is the http-only cookie carrying the signed session
// token.
const SessionCookieName = "session_token"

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SessionMiddleware validates the session cookie, confirms the user still
// exists and puts the user ID into the request context.
func (s *service) SessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Session cookie is required")
				return
			}

			userID, err := s.jwtManager.ValidateSessionToken(cookie.Value)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			if _, err := s.userService.GetUserByID(userID); err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					writeJSONError(w, http.StatusUnauthorized, user.ErrUserNotFound.Error())
					return
				}
				writeJSONError(w, http.StatusInternalServerError, ErrInternalError.Error())
				return
			}

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
