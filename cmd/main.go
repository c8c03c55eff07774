package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	httpAdapter "food-ordering/internal/adapter/http"
	"food-ordering/internal/adapter/logger"
	"food-ordering/internal/adapter/memory"
	"food-ordering/internal/app/menu"
	"food-ordering/internal/app/order"
	"food-ordering/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Prices and totals are serialized as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	lgr := logger.New("food-ordering", cfg.Logging.Level)

	// Stores
	menuStore := memory.NewMenuStore()
	orderStore := memory.NewOrderStore()

	// Services
	menuService := menu.NewService(menuStore, lgr)
	orderService := order.NewService(menuStore, orderStore, lgr)

	// HTTP handlers
	menuHandler := httpAdapter.NewMenuHandler(menuService, lgr)
	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)

	mux := http.NewServeMux()
	mux.HandleFunc("/menu", menuHandler.HandleMenu)
	mux.HandleFunc("/menu/", menuHandler.HandleMenu)
	mux.HandleFunc("/orders", orderHandler.HandleOrders)
	mux.HandleFunc("/orders/", orderHandler.HandleOrders)
	mux.HandleFunc("/health", httpAdapter.HealthCheck)

	// Apply middleware
	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Food ordering API started on port %d", cfg.Server.Port), "", map[string]interface{}{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down", "", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "", nil, err)
	}
}
