package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"vaultgate/internal/auth"
	"vaultgate/internal/config"
	"vaultgate/internal/handler"
	"vaultgate/internal/middleware"
	"vaultgate/internal/repository/postgres"
	"vaultgate/internal/repository/postgres/migrations"
	"vaultgate/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Apply migrations before opening the pool
	if err := migrations.Run(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	cipherRepo := postgres.NewCipherRepository(repoConfig)
	batchExecutor := postgres.NewBatchExecutor(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create token issuer
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLSeconds)*time.Second)

	// Create services
	accountService := service.NewAccountService(userRepo, issuer, cfg.AllowedEmails, logger)
	cipherService := service.NewCipherService(cipherRepo, txManager, logger)
	folderService := service.NewFolderService(folderRepo, logger)
	importService := service.NewImportService(folderRepo, cipherRepo, batchExecutor, cfg.ImportBatchSize, logger)
	syncService := service.NewSyncService(userRepo, folderRepo, cipherRepo, logger)

	// Create handlers
	accountHandler := handler.NewAccountHandler(accountService, logger)
	identityHandler := handler.NewIdentityHandler(accountService, logger)
	cipherHandler := handler.NewCipherHandler(cipherService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	importHandler := handler.NewImportHandler(importService, logger)
	syncHandler := handler.NewSyncHandler(syncService, logger)
	configHandler := handler.NewConfigHandler(cfg.BaseURL)

	logger.Info("services initialized", "import_batch_size", cfg.ImportBatchSize)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Identity routes (public)
	mux.HandleFunc("POST /identity/connect/token", identityHandler.Token)
	mux.HandleFunc("POST /identity/accounts/prelogin", accountHandler.Prelogin)
	mux.HandleFunc("POST /identity/accounts/register/finish", accountHandler.Register)
	mux.HandleFunc("POST /identity/accounts/register/send-verification-email", accountHandler.SendVerificationEmail)

	// Account routes
	mux.HandleFunc("POST /api/accounts/prelogin", accountHandler.Prelogin)
	mux.HandleFunc("GET /api/accounts/revision-date", accountHandler.RevisionDate)

	// Sync route
	mux.HandleFunc("GET /api/sync", syncHandler.Sync)

	// Cipher routes
	mux.HandleFunc("POST /api/ciphers", cipherHandler.Create)
	mux.HandleFunc("POST /api/ciphers/create", cipherHandler.Create)
	mux.HandleFunc("POST /api/ciphers/import", importHandler.Import)
	mux.HandleFunc("PUT /api/ciphers/{id}", cipherHandler.Update)
	mux.HandleFunc("PUT /api/ciphers/{id}/delete", cipherHandler.Delete)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.Create)
	mux.HandleFunc("PUT /api/folders/{id}", folderHandler.Update)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.Delete)

	// Server capability document (public)
	mux.HandleFunc("GET /api/config", configHandler.Config)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.AuthMiddleware(issuer)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
