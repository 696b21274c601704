package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"messageboard/dto"
	"messageboard/monitoring"
	"messageboard/services"
	"messageboard/session"
	"messageboard/views"
)

// MessageHandler handles message-related endpoints
type MessageHandler struct {
	*Handler
	messages *services.MessageService
}

// NewMessageHandler initializes a new MessageHandler
func NewMessageHandler(base *Handler, messages *services.MessageService) *MessageHandler {
	return &MessageHandler{Handler: base, messages: messages}
}

// HomeHandler renders every message with the current session.
func (h *MessageHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.List(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list messages")
		monitoring.MessageFetchFailure.WithLabelValues("list").Inc()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, http.StatusOK, views.PageHome, views.PageData{Messages: messages})
}

// CreateMessage posts a message for the logged-in user.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	user := session.UserFromContext(r.Context())

	if _, err := h.messages.Post(r.Context(), user, formValue(r, "message")); err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			http.Error(w, services.UserMessage(err), http.StatusUnauthorized)
			return
		}
		http.Error(w, services.UserMessage(err), http.StatusInternalServerError)
		return
	}

	monitoring.MessagesPosted.Inc()
	h.redirectHome(w, r)
}

// EditForm renders the inline edit form. An unknown id renders nothing.
func (h *MessageHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		h.fragment(w, nil)
		return
	}

	message, err := h.messages.Get(r.Context(), id)
	if err != nil && !errors.Is(err, services.ErrMessageNotFound) {
		logrus.WithError(err).WithField("message_id", id).Error("Failed to fetch message")
		monitoring.MessageFetchFailure.WithLabelValues("edit_form").Inc()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.fragmentNamed(w, views.FragmentMessageEdit, message)
}

// UpdateMessage overwrites a message's content and renders it back.
// Any visitor may edit any message; there is no ownership check.
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		h.fragment(w, nil)
		return
	}

	message, err := h.messages.Edit(r.Context(), id, formValue(r, "message"))
	if err != nil && !errors.Is(err, services.ErrMessageNotFound) {
		logrus.WithError(err).WithField("message_id", id).Error("Failed to update message")
		http.Error(w, services.UserMessage(err), http.StatusInternalServerError)
		return
	}
	if message != nil {
		monitoring.MessagesEdited.Inc()
	}

	h.fragment(w, message)
}

func (h *MessageHandler) fragment(w http.ResponseWriter, message *dto.MessageDTO) {
	h.fragmentNamed(w, views.FragmentMessage, message)
}

func (h *MessageHandler) fragmentNamed(w http.ResponseWriter, name string, message *dto.MessageDTO) {
	if err := h.views.Fragment(w, http.StatusOK, name, message); err != nil {
		logrus.WithError(err).WithField("fragment", name).Error("Failed to render fragment")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func messageID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
