package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"finsight/db"
	"finsight/internal/ai"
	"finsight/internal/auth"
	"finsight/internal/config"
	"finsight/internal/finance/application"
	"finsight/internal/finance/infrastructure"
	"finsight/internal/finance/interfaces"
	"finsight/internal/log"
	"finsight/internal/user"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

type Server struct {
	router             *http.ServeMux
	authService        auth.Service
	authHandler        *auth.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	insightHandler     *interfaces.InsightHandler
	dbService          *database.DBService
}

func NewServer(
	authService auth.Service,
	authHandler *auth.Handler,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	insightHandler *interfaces.InsightHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authService:        authService,
		authHandler:        authHandler,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		insightHandler:     insightHandler,
		dbService:          dbService,
	}
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) RegisterRoutes() {
	protect := s.authService.SessionMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("GET /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/auth/callback", http.HandlerFunc(s.authHandler.HandleCallback))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("GET /api/auth/me", protect(http.HandlerFunc(s.authHandler.HandleMe)))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected resource routes
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/expenses", protect(http.HandlerFunc(s.transactionHandler.ListExpenses)))
	protectedRoutes.Handle("POST /api/expenses", protect(http.HandlerFunc(s.transactionHandler.CreateExpense)))
	protectedRoutes.Handle("DELETE /api/expenses/{id}", protect(http.HandlerFunc(s.transactionHandler.DeleteExpense)))

	protectedRoutes.Handle("GET /api/income", protect(http.HandlerFunc(s.transactionHandler.ListIncome)))
	protectedRoutes.Handle("POST /api/income", protect(http.HandlerFunc(s.transactionHandler.CreateIncome)))
	protectedRoutes.Handle("DELETE /api/income/{id}", protect(http.HandlerFunc(s.transactionHandler.DeleteIncome)))

	protectedRoutes.Handle("GET /api/categories", protect(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("PUT /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	protectedRoutes.Handle("GET /api/insights", protect(http.HandlerFunc(s.insightHandler.GetInsights)))
	protectedRoutes.Handle("POST /api/categorize", protect(http.HandlerFunc(s.insightHandler.Categorize)))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/auth/", publicRoutes)
	mainRouter.Handle("GET /api/ready", publicRoutes)
	mainRouter.Handle("/api/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func startStateCleanup(stateManager auth.StateManagerInterface, logger *log.Logger) error {
	c := cron.New()
	_, err := c.AddFunc("@every 15m", func() {
		stateManager.Cleanup()
		logger.Debug("expired OAuth state tokens swept")
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	logger := log.New("app")
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, continuing with system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	dbService, err := database.NewDBService(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		logger.Error("could not run migrations", "error", err)
		os.Exit(1)
	}

	generator := ai.NewOpenAIClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	provider := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)
	stateManager := auth.NewStateManager()
	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(provider, userService, stateManager, jwtManager, cfg.SessionDuration)
	authHandler := auth.NewHandler(authService, cfg.FrontendURL, logger.WithComponent("auth"))

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService, logger.WithComponent("transactions"))
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	insightService := application.NewInsightService(transactionRepo, generator, cfg.Currency, logger.WithComponent("insights"))
	classifierService := application.NewClassifierService(generator, logger.WithComponent("classifier"))
	insightHandler := interfaces.NewInsightHandler(insightService, classifierService, respondJSON, respondError, logger.WithComponent("insights"))

	server := NewServer(authService, authHandler, transactionHandler, categoryHandler, insightHandler, dbService)
	server.RegisterRoutes()

	if err := startStateCleanup(stateManager, logger.WithComponent("auth")); err != nil {
		logger.Error("state cleanup scheduler didn't start", "error", err)
		os.Exit(1)
	}

	handler := loggingMiddleware(logger.WithComponent("http"), server.router)
	logger.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
