package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// GracefulServer runs an echo server and drains it on SIGINT/SIGTERM
type GracefulServer struct {
	echo *echo.Echo
	port int
}

// NewGracefulServer creates a server with graceful shutdown
func NewGracefulServer(e *echo.Echo, port int) *GracefulServer {
	return &GracefulServer{echo: e, port: port}
}

// Start serves until an interrupt or termination signal arrives, then
// shuts down with a timeout
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains in-flight requests before closing the listener
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager collects component cleanup functions and runs them in
// registration order during shutdown
type ShutdownManager struct {
	functions []func(context.Context) error
}

// NewShutdownManager creates an empty shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every registered cleanup function, continuing past failures
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down components", logger.Int("components", len(sm.functions)))

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			logger.Error("Component shutdown failed",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	return nil
}
