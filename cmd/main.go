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

	"localnews/database"
	"localnews/docs"
	"localnews/internal/auth"
	"localnews/internal/cache"
	"localnews/internal/config"
	"localnews/internal/controllers"
	"localnews/internal/logger"
	"localnews/internal/repository"
	"localnews/internal/services"
	"localnews/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

// @title Local News API
// @version 1.0
// @description Articles for the local news site and the admin endpoints that edit them.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		// the logger is configured from cfg, so report on stderr
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Production())
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.MigrateDatabase(db, log); err != nil {
		return err
	}
	go database.MonitorConnections(ctx, db, log, 10*time.Second, cfg.Database.MaxOpenConns*4/5)

	var (
		repo        repository.ArticleRepository
		cacheStatus controllers.CacheStatus
	)
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			log.Warn("redis unavailable, running without cache", zap.Error(err))
			repo = repository.NewArticleRepository(db, log)
		} else {
			defer redisCache.Close()
			log.Info("article cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
			repo = repository.NewCachedArticleRepository(db, redisCache, log)
			cacheStatus = redisCache
		}
	} else {
		repo = repository.NewArticleRepository(db, log)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AdminUser, cfg.Auth.AdminPass, cfg.Auth.TokenTTL)
	limiter := auth.NewLoginLimiter(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)

	newsService := services.NewNewsService(repo, log)
	dbPing := controllers.PingFunc(func(ctx context.Context) error { return database.Ping(ctx, db) })

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.NewRouter(log, routes.Handlers{
		News:   controllers.NewNewsController(newsService, log),
		Auth:   controllers.NewAuthController(tokens, limiter, log),
		Health: controllers.NewHealthController(dbPing, cacheStatus, version, log),
		Tokens: tokens,
	}, routes.Options{Docs: !cfg.Production(), TrustedProxies: cfg.TrustedProxies})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
		ErrorLog:       logger.Std(log.Named("http")),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("docs", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
