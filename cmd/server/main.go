package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"

	"github.com/kahvecikaan/menu-api/internal/events"
	"github.com/kahvecikaan/menu-api/internal/repository"
	"github.com/kahvecikaan/menu-api/internal/service"
	httpTransport "github.com/kahvecikaan/menu-api/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/menu-api/internal/transport/websocket"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
)

func main() {
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "menu-api",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Event bus shared between the menu service and the websocket stream
	eventBus := events.NewEventBus[any]()

	// Initialize the DishRepository
	dishRepo := repository.NewMemoryDishRepository()

	// Initialize the MenuService
	ms := service.NewMenuService(
		dishRepo,
		eventBus,
		logger.Named("menu-service"),
	)

	// Initialize HTTP handlers
	dh := httpTransport.NewDishHandler(ms, logger.Named("http-handler"))

	// Initialize the WebSocket handler with the event bus
	wh := websocketTransport.NewHandler(
		logger.Named("websocket-handler"),
		eventBus,
	)

	// Initialize the router
	router := httpTransport.NewRouter(dh, logger, wh)

	// Create the HTTP server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
