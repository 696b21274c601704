package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"messageboard/handlers"
	"messageboard/middleware"
	"messageboard/monitoring"
	"messageboard/session"
	"messageboard/views"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	userHandler *handlers.UserHandler,
	messageHandler *handlers.MessageHandler,
	systemHandler *handlers.SystemHandler,
	tokens session.TokenStore,
	cookies *session.Cookies,
) http.Handler {
	router := mux.NewRouter()

	// Operational endpoints skip the session lookup
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", systemHandler.Health).Methods(http.MethodGet)
	router.PathPrefix("/public/").Handler(http.StripPrefix("/public/", views.StaticHandler())).Methods(http.MethodGet)

	app := router.NewRoute().Subrouter()
	app.Use(session.Middleware(tokens, cookies))

	// User routes
	app.HandleFunc("/register", userHandler.RegisterHandler).Methods(http.MethodGet, http.MethodPost)
	app.HandleFunc("/login", userHandler.LoginHandler).Methods(http.MethodGet, http.MethodPost)
	app.HandleFunc("/logout", userHandler.LogoutHandler).Methods(http.MethodGet)

	// Message routes
	app.HandleFunc("/", messageHandler.HomeHandler).Methods(http.MethodGet)
	app.HandleFunc("/message", messageHandler.CreateMessage).Methods(http.MethodPost)
	app.HandleFunc("/message/{id:[0-9]+}/edit", messageHandler.EditForm).Methods(http.MethodGet)
	app.HandleFunc("/message/{id:[0-9]+}", messageHandler.UpdateMessage).Methods(http.MethodPut)

	router.Use(monitoring.InstrumentHandler)

	return middleware.Recover(middleware.Logging(router))
}
