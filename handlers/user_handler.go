package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"messageboard/monitoring"
	"messageboard/services"
	"messageboard/session"
	"messageboard/views"
)

// UserHandler serves registration, login and logout.
type UserHandler struct {
	*Handler
	auth    *services.AuthService
	cookies *session.Cookies
}

func NewUserHandler(base *Handler, auth *services.AuthService, cookies *session.Cookies) *UserHandler {
	return &UserHandler{Handler: base, auth: auth, cookies: cookies}
}

// RegisterHandler shows the form on GET and creates the account on POST.
func (h *UserHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if session.UserFromContext(r.Context()) != nil {
		h.redirectHome(w, r)
		return
	}
	if r.Method == http.MethodGet {
		h.renderPage(w, r, http.StatusOK, views.PageRegister, views.PageData{})
		return
	}

	username := formValue(r, "username")
	token, err := h.auth.Register(r.Context(), username, formValue(r, "password"))
	if err != nil {
		monitoring.RegisterFailure.WithLabelValues(failureReason(err)).Inc()
		h.renderPage(w, r, statusFor(err), views.PageRegister, views.PageData{
			Error:    services.UserMessage(err),
			Username: username,
		})
		return
	}

	monitoring.RegisterSuccess.Inc()
	h.startSession(w, r, token)
}

// LoginHandler shows the form on GET and checks the credentials on POST.
func (h *UserHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if session.UserFromContext(r.Context()) != nil {
		h.redirectHome(w, r)
		return
	}
	if r.Method == http.MethodGet {
		h.renderPage(w, r, http.StatusOK, views.PageLogin, views.PageData{})
		return
	}

	username := formValue(r, "username")
	token, err := h.auth.Login(r.Context(), username, formValue(r, "password"))
	if err != nil {
		monitoring.LoginFailure.WithLabelValues(failureReason(err)).Inc()
		h.renderPage(w, r, statusFor(err), views.PageLogin, views.PageData{
			Error:    services.UserMessage(err),
			Username: username,
		})
		return
	}

	monitoring.LoginSuccess.Inc()
	h.startSession(w, r, token)
}

// LogoutHandler revokes the cookie's token, if any, and clears the cookie.
func (h *UserHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), h.cookies.Token(r)); err != nil {
		logrus.WithError(err).Error("Failed to delete auth token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.cookies.Clear(w)
	h.redirectHome(w, r)
}

// startSession sets the cookie for a freshly issued token. The session takes
// effect on the browser's next request.
func (h *UserHandler) startSession(w http.ResponseWriter, r *http.Request, token string) {
	if err := h.cookies.SetToken(w, token); err != nil {
		logrus.WithError(err).Error("Failed to encode session cookie")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.redirectHome(w, r)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrDuplicateUsername):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, services.ErrValidation):
		return "missing_field"
	case errors.Is(err, services.ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, services.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "internal"
	}
}
