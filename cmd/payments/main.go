package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/sperez-mk/miso-backend/docs"
	handlers "github.com/sperez-mk/miso-backend/internal/adapter/handler/http"
	"github.com/sperez-mk/miso-backend/internal/adapter/logger"
	"github.com/sperez-mk/miso-backend/internal/adapter/postgres/repository"
	"github.com/sperez-mk/miso-backend/internal/adapter/prometheus"
	"github.com/sperez-mk/miso-backend/internal/config"
	"github.com/sperez-mk/miso-backend/internal/core/services"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// @title Payments Microservice API
// @version 1.0
// @description Card, balance and payment management

// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name api_key
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if cfg.App.APIKey == "" {
		log.Fatal("You must provide an API key")
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter("payments_microservice")

	// Cards
	cardRepo := repository.NewCardRepository(db)
	cardService := services.NewCardService(cardRepo, loggerAdapter, validate)
	balanceService := services.NewBalanceService(cardRepo, loggerAdapter)
	paymentService := services.NewPaymentService(cardRepo, loggerAdapter)

	cardHandler := handlers.NewCardHandler(cardService, loggerAdapter, metrics)
	balanceHandler := handlers.NewBalanceHandler(balanceService, loggerAdapter, metrics)
	paymentHandler := handlers.NewPaymentHandler(paymentService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewPaymentsRouter(
		cfg.HTTP,
		cfg.App.APIKey,
		cardHandler,
		balanceHandler,
		paymentHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	loggerAdapter.Info("Application stopped", nil)
}
