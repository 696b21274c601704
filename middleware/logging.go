package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytesSent  int
}

func (w *loggingResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesSent += n
	return n, err
}

// Logging logs one line per request; 5xx at error, 4xx at warn, the rest at info.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lw, r)

		entry := logrus.WithFields(logrus.Fields{
			"method":      r.Method,
			"uri":         r.RequestURI,
			"status":      lw.statusCode,
			"bytes_sent":  lw.bytesSent,
			"duration_ms": time.Since(start).Milliseconds(),
		})

		switch {
		case lw.statusCode >= http.StatusInternalServerError:
			entry.Error("response")
		case lw.statusCode >= http.StatusBadRequest:
			entry.Warn("response")
		default:
			entry.Info("response")
		}
	})
}
