package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"messageboard/session"
	"messageboard/views"
)

// Handler holds what every page handler needs to answer a request.
type Handler struct {
	views *views.Renderer
}

func NewHandler(renderer *views.Renderer) *Handler {
	return &Handler{views: renderer}
}

func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data views.PageData) {
	data.User = session.UserFromContext(r.Context())
	if err := h.views.Page(w, status, page, data); err != nil {
		logrus.WithError(err).WithField("page", page).Error("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// formValue reads a field from the parsed request body.
func formValue(r *http.Request, key string) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostForm.Get(key)
}
