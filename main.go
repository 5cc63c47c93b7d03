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

	"go.uber.org/zap"

	"gcc-tools/config"
	httpLayer "gcc-tools/http"
	"gcc-tools/logger"
	"gcc-tools/repository"
	"gcc-tools/service"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.InitLogger(cfg.Log.Mode); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cache, closeCache := newCache(cfg.Cache)
	defer closeCache()

	contentRepo, err := repository.NewContentRepositoryMemory()
	if err != nil {
		logger.Error("load content catalog", zap.Error(err))
		os.Exit(1)
	}

	chartService := service.NewChartService(cache, cfg.Cache.TTL)

	handlers := httpLayer.Handlers{
		Loan:        httpLayer.NewLoanHandler(service.NewLoanService()),
		Mortgage:    httpLayer.NewMortgageHandler(service.NewMortgageService()),
		VAT:         httpLayer.NewVATHandler(service.NewVATService()),
		Zakat:       httpLayer.NewZakatHandler(service.NewZakatService(), chartService),
		Salary:      httpLayer.NewSalaryHandler(service.NewSalaryService(), chartService),
		RentalYield: httpLayer.NewRentalYieldHandler(service.NewRentalYieldService(), chartService),
		Invoice:     httpLayer.NewInvoiceHandler(service.NewInvoiceService(cache, cfg.Cache.TTL)),
		Content:     httpLayer.NewContentHandler(service.NewContentService(contentRepo)),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      httpLayer.NewRouter(handlers, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// newCache returns the configured render cache and a func that releases it.
// An unreachable Redis falls back to memory so the calculators keep working.
func newCache(cfg config.CacheConfig) (repository.CacheRepository, func()) {
	noop := func() {}
	if cfg.Driver != config.CacheDriverRedis {
		return repository.NewMemoryCache(), noop
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, using memory cache",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = redisCache.Close()
		return repository.NewMemoryCache(), noop
	}

	logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("close redis cache", zap.Error(err))
		}
	}
}
