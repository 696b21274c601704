package session

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Middleware resolves the request's session cookie and stores the result in
// the request context for the handlers downstream.
func Middleware(store TokenStore, cookies *Cookies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := Resolve(r.Context(), store, cookies.Token(r))
			if err != nil {
				logrus.WithError(err).Error("Session lookup failed")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
