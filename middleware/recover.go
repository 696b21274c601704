package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Recover turns a panicking handler into a logged 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logrus.WithFields(logrus.Fields{
					"method": r.Method,
					"uri":    r.RequestURI,
					"panic":  p,
					"stack":  string(debug.Stack()),
				}).Error("request panic")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
