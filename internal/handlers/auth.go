package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/damian3262-dot/device-repair-hub/internal/auth"
	"github.com/damian3262-dot/device-repair-hub/internal/storage"
)

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	var data struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}
	if data.Username == "" || data.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password cannot be empty")
		return
	}

	user, err := h.store.GetUserByUsername(req.Context(), data.Username)
	if err != nil {
		var notFound *storage.UserNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	if !auth.CheckPasswordHash(data.Password, user.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := auth.SetAuthCookie(user.Username, w, h.secret, h.cookieExpiresSeconds); err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged in"})
}

func (h *HandlerSet) HandleLogout(w http.ResponseWriter, req *http.Request) {
	auth.ClearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *HandlerSet) HandleMe(w http.ResponseWriter, req *http.Request) {

	username, ok := auth.GetAuthenticatedUser(req)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}
