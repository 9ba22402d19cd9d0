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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ardiansyahrp/orderflow/config"
	"github.com/ardiansyahrp/orderflow/internal/application"
	pginfra "github.com/ardiansyahrp/orderflow/internal/infrastructure/postgres"
	handlers "github.com/ardiansyahrp/orderflow/internal/interface/http"
	"github.com/ardiansyahrp/orderflow/internal/interface/middleware"
	"github.com/ardiansyahrp/orderflow/internal/router"
	"github.com/ardiansyahrp/orderflow/internal/router/modules"
	"github.com/ardiansyahrp/orderflow/pkg/helpers"
	"github.com/ardiansyahrp/orderflow/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load("userdb")
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

	userRepo := pginfra.NewUserRepository(pool)
	userSvc := application.NewUserService(userRepo, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	reg := router.NewRegistry(r)
	reg.Add(modules.NewUserModule(userHandler))
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("user service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down user service")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("user service exited properly")
}
