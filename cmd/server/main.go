// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/schema-builder/api"
	"github.com/Annany2002/schema-builder/config"
	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/logger"
	"github.com/Annany2002/schema-builder/internal/storage"
)

var (
	customLog = logger.NewLogger()
)

func main() {
	customLog.Println("Starting Schema Builder server...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		customLog.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Seed the in-memory schema store
	seed, err := storage.LoadSeed(cfg.SeedFile)
	if err != nil {
		customLog.Fatalf("Failed to load seed schemas: %v", err)
	}
	store := storage.NewSchemaStore(seed)
	customLog.Printf("Schema store ready with %d schema(s), active '%s'", store.Count(), store.ActiveID())

	// 3. Setup Router (passing dependencies)
	router := api.SetupRouter(store, core.NewEditor(core.UUIDGenerator{}), cfg)

	// 4. Start Server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		customLog.Printf("Server listening on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			customLog.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	customLog.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		customLog.Warnf("Server forced to shut down: %v", err)
	}
}
