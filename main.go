package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"messageboard/config"
	"messageboard/database"
	"messageboard/handlers"
	"messageboard/logger"
	"messageboard/repositories"
	"messageboard/routes"
	"messageboard/services"
	"messageboard/session"
	"messageboard/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	logger.InitLogger(cfg.Log)

	db, err := database.New(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Database connection failed")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		logrus.WithError(err).Fatal("Database migration failed")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		logrus.WithError(err).Fatal("Database handle unavailable")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	tokenRepo := repositories.NewAuthTokenRepository(db.DB)
	messageRepo := repositories.NewMessageRepository(db.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenRepo, cfg.Auth.BcryptCost)
	messageService := services.NewMessageService(messageRepo)

	renderer, err := views.NewRenderer()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load templates")
	}
	cookies := session.NewCookies([]byte(cfg.Auth.CookieHashKey), []byte(cfg.Auth.CookieBlockKey), cfg.Auth.CookieSecure)

	// Initialize handlers
	base := handlers.NewHandler(renderer)
	userHandler := handlers.NewUserHandler(base, authService, cookies)
	messageHandler := handlers.NewMessageHandler(base, messageService)
	systemHandler := handlers.NewSystemHandler(sqlDB)

	router := routes.SetupRoutes(userHandler, messageHandler, systemHandler, tokenRepo, cookies)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":   cfg.Port,
			"driver": cfg.Database.Driver,
		}).Info("Server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}
