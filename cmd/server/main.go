package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"

	_ "userservice/docs" // swagger docs

	"userservice/internal/auth"
	"userservice/internal/cache"
	"userservice/internal/config"
	"userservice/internal/db"
	"userservice/internal/handler"
	"userservice/internal/logger"
	"userservice/internal/repository"
	"userservice/internal/router"
	"userservice/internal/service"
)

// @title User Service API
// @version 1.0
// @description Users, roles, signup and credential checks.
// @host localhost:8080
// @BasePath /api/user-service
// @schemes http
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty && !cfg.IsProduction()})
	log.Info().Str("env", cfg.Env).Msg("config loaded")

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("database init")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, continuing without cache hits")
	}

	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	roleService := service.NewRoleService(roleRepo, cacheClient, service.RoleServiceConfig{
		DefaultRoleName: cfg.Users.DefaultRoleName,
		CacheTTL:        cfg.Redis.TTL,
	})
	userService := service.NewUserService(userRepo, roleService, auth.NewBcryptHasher(cfg.Users.BcryptCost), cacheClient, service.UserServiceConfig{
		CacheTTL: cfg.Redis.TTL,
	})

	defaultRole, err := roleService.ResolveDefaultRole(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("role", cfg.Users.DefaultRoleName).Msg("resolve default role; run the seed command first")
	}
	log.Info().Uint("role_id", defaultRole.ID).Str("role", defaultRole.Name).Msg("default role resolved")

	e := echo.New()
	router.Register(e, router.Handlers{
		Users: handler.NewUserHandler(userService),
		Roles: handler.NewRoleHandler(roleService),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": handler.PingFunc(func(ctx context.Context) error { return db.Ping(ctx, gormDB) }),
			"redis":    cacheClient,
		}),
	}, router.Options{Logger: log})

	log.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := cacheClient.Close(); err != nil {
		log.Error().Err(err).Msg("close redis")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
