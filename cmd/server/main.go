package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"paper-analyzer/internal/config"
	"paper-analyzer/internal/handler"
	"paper-analyzer/internal/service"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Wiring
	container, err := config.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	defer container.Close()

	launcher, err := container.NewLauncher()
	if err != nil {
		container.Logger.Error("Failed to create launcher", err)
		os.Exit(1)
	}

	sessionService, err := container.NewSessionService(launcher)
	if err != nil {
		container.Logger.Error("Failed to create session service", err)
		os.Exit(1)
	}

	// Handlers
	sessionHandler := handler.NewSessionHandler(
		sessionService,
		cfg.GetMaxFileSize(),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		sessionHandler,
		handler.RequestLogger(container.Logger),
		cfg.GetAllowedOrigins(),
	)

	// start server
	server := &http.Server{
		Addr:    ":" + cfg.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "worker_mode", cfg.GetWorkerMode())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	// Let in-flight analyses finish writing their summaries
	if l, ok := launcher.(*service.InProcessLauncher); ok {
		l.Wait()
	}

	container.Logger.Info("Server exited")
}
