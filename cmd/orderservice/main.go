package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ardiansyahrp/orderflow/config"
	"github.com/ardiansyahrp/orderflow/internal/application"
	pginfra "github.com/ardiansyahrp/orderflow/internal/infrastructure/postgres"
	"github.com/ardiansyahrp/orderflow/internal/infrastructure/userdirectory"
	handlers "github.com/ardiansyahrp/orderflow/internal/interface/http"
	"github.com/ardiansyahrp/orderflow/internal/interface/middleware"
	"github.com/ardiansyahrp/orderflow/internal/router"
	"github.com/ardiansyahrp/orderflow/internal/router/modules"
	"github.com/ardiansyahrp/orderflow/pkg/helpers"
	"github.com/ardiansyahrp/orderflow/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load("orderdb")
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Rate limiting is optional; a nil client disables it.
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	// Order events are optional; without RabbitMQ the workflow just skips
	// publishing.
	var events application.EventPublisher
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQOrderQueue)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		defer pub.Close()
		events = pub
	}

	directory := userdirectory.NewClient(cfg.UserServiceURL, cfg.RequestTimeout, logger)

	orderRepo := pginfra.NewOrderRepository(pool)
	orderSvc := application.NewOrderService(orderRepo, directory, events, logger)
	orderHandler := handlers.NewOrderHandler(orderSvc, logger)
	proxyHandler := handlers.NewProxyHandler(directory, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	reg := router.NewRegistry(r)
	reg.Add(modules.NewOrderModule(orderHandler, rdb))
	reg.Add(modules.NewProxyModule(proxyHandler, rdb))
	reg.Add(modules.NewDebugModule(rdb))
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("order service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down order service")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("order service exited properly")
}
