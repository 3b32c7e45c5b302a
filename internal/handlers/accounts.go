package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/service"
)

type AccountHandler struct {
	Accounts *service.AccountService
}

// Register handles POST /register. Rejections answer 400 with an
// empty body; only store failures surface as 500.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var candidate models.Account
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acct, err := h.Accounts.Register(&candidate)
	if err != nil {
		if errors.Is(err, service.ErrRejected) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("register failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(acct)
}

// Login handles POST /login. Any credential mismatch answers 401 with
// an empty body.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var candidate models.Account
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acct, err := h.Accounts.Login(&candidate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Msg("login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(acct)
}
