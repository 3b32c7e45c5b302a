package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/service"
	"github.com/pliu/bulletin/internal/store"
	"github.com/pliu/bulletin/internal/ws"
)

type MessageHandler struct {
	Messages *service.MessageService
	Hub      *ws.Hub
}

// Create handles POST /messages.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var candidate models.Message
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.Messages.Create(&candidate)
	if err != nil {
		if errors.Is(err, service.ErrRejected) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("create message failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.Hub != nil {
		h.Hub.Broadcast(*msg)
	}
	json.NewEncoder(w).Encode(msg)
}

// GetAll handles GET /messages.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("list messages failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(messages)
}

// GetByID handles GET /messages/{message_id}. An absent message is
// not an error: 200 with an empty body.
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["message_id"])

	msg, err := h.Messages.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return
		}
		log.Error().Err(err).Msg("get message failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(msg)
}

// DeleteByID handles DELETE /messages/{message_id}. Deleting an
// absent message is a no-op: 200 with an empty body.
func (h *MessageHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["message_id"])

	msg, err := h.Messages.DeleteByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return
		}
		log.Error().Err(err).Msg("delete message failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(msg)
}

// Update handles PATCH /messages/{message_id}. Both a missing message
// and invalid text answer 400 with an empty body.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["message_id"])

	var candidate models.Message
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.Messages.Update(id, &candidate)
	if err != nil {
		if errors.Is(err, service.ErrRejected) || errors.Is(err, store.ErrNotFound) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("update message failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(msg)
}

// ListByAccount handles GET /accounts/{account_id}/messages.
func (h *MessageHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, _ := strconv.Atoi(mux.Vars(r)["account_id"])

	messages, err := h.Messages.ListByAccount(accountID)
	if err != nil {
		log.Error().Err(err).Msg("list account messages failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(messages)
}
