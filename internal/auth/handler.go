package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"finsight/internal/log"
)

type Handler struct {
	service     Service
	frontendURL string
	logger      *log.Logger
}

func NewHandler(service Service, frontendURL string, logger *log.Logger) *Handler {
	return &Handler{
		service:     service,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.service.LoginURL()
	if err != nil {
		h.logger.Error("could not build login URL", "error", err)
		writeJSONError(w, http.StatusInternalServerError, ErrInternalError.Error())
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing state or code parameter")
		return
	}

	u, token, err := h.service.HandleCallback(r.Context(), state, code)
	if err != nil {
		if errors.Is(err, ErrInvalidStateToken) || errors.Is(err, ErrExpiredStateToken) {
			writeJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("OAuth callback failed", "error", err)
		writeJSONError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.service.SessionDuration()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("user logged in", "user_id", u.ID)
	http.Redirect(w, r, h.frontendURL, http.StatusTemporaryRedirect)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.service.CurrentUser(userID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, ErrInternalError.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"user": u})
}
