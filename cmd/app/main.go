package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/vibe-gaming/waitlist/internal/api/http"
	"github.com/vibe-gaming/waitlist/internal/cache"
	"github.com/vibe-gaming/waitlist/internal/config"
	"github.com/vibe-gaming/waitlist/internal/db"
	"github.com/vibe-gaming/waitlist/internal/kv"
	"github.com/vibe-gaming/waitlist/internal/notifier"
	"github.com/vibe-gaming/waitlist/internal/queue/asynqserver"
	"github.com/vibe-gaming/waitlist/internal/queue/client"
	"github.com/vibe-gaming/waitlist/internal/repository"
	"github.com/vibe-gaming/waitlist/internal/server"
	"github.com/vibe-gaming/waitlist/internal/service"
	"github.com/vibe-gaming/waitlist/internal/worker"
	"github.com/vibe-gaming/waitlist/pkg/auth"
	"github.com/vibe-gaming/waitlist/pkg/email"
	"github.com/vibe-gaming/waitlist/pkg/email/smtp"
	"github.com/vibe-gaming/waitlist/pkg/hash"
	"github.com/vibe-gaming/waitlist/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	if _, err := logger.Init(logger.Config{Env: cfg.Env, Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting waitlist api", zap.String("env", cfg.Env), zap.String("store", cfg.Store.Type))
	logger.Debug("debug messages are enabled")

	store, closeStore, err := newStore(cfg)
	if err != nil {
		logger.Error("store init failed", zap.Error(err))
		os.Exit(1)
	}
	defer closeStore()

	var emailSender email.Sender
	if cfg.Email.Enabled {
		emailSender, err = smtp.NewSMTPSender(cfg.Email.From, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			logger.Error("smtp sender creation failed", zap.Error(err))
			os.Exit(1)
		}
	}

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	if cfg.Email.Delivery != config.DeliveryQueue && cfg.Email.Delivery != config.DeliveryDirect {
		logger.Error("unknown email delivery", zap.String("delivery", cfg.Email.Delivery))
		os.Exit(1)
	}

	var (
		notify      service.Notifier = notifier.NewDirect(workers.EmailSender)
		asynqServer *asynq.Server
	)
	if cfg.Email.Enabled && cfg.Email.Delivery == config.DeliveryQueue {
		asynqClient := client.New(cfg.Cache)
		defer asynqClient.Close()
		notify = notifier.NewQueue(asynqClient)

		var mux *asynq.ServeMux
		asynqServer, mux = asynqserver.New(cfg, workers)
		if err := asynqServer.Start(mux); err != nil {
			logger.Error("asynq server start failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("asynq server started")
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		os.Exit(1)
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(store)
	services := service.NewServices(service.Deps{
		Repos:          repos,
		Notifier:       notify,
		TokenManager:   tokenManager,
		SecretComparer: hash.NewSHA256Comparer(cfg.Auth.AdminPassword),
	})
	handlers := apiHttp.NewHandlers(services)

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); err != nil {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}
	if asynqServer != nil {
		asynqServer.Shutdown()
	}

	logger.Info("app stopped")
}

// newStore opens the configured key-value backend wrapped with retries.
func newStore(cfg *config.Config) (kv.Store, func(), error) {
	var (
		store kv.Store
		closeFn = func() {}
	)

	switch cfg.Store.Type {
	case config.StoreTypeRedis:
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("error when closing redis", zap.Error(err))
			}
		}
		store = kv.NewRedisStore(redisClient, cfg.Store.Namespace)
		logger.Info("redis connection done")
	case config.StoreTypeMySQL:
		dbMySQL, err := db.New(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() {
			if err := dbMySQL.Close(); err != nil {
				logger.Error("error when closing mysql", zap.Error(err))
			}
		}
		mysqlStore, err := kv.NewMySQLStore(context.Background(), dbMySQL)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		store = mysqlStore
		logger.Info("mysql connection done")
	case config.StoreTypeMemory:
		store = kv.NewMemoryStore()
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		return nil, nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
	}

	return kv.NewRetryStore(store, cfg.Store.RetryAttempts, cfg.Store.RetryMaxInterval), closeFn, nil
}
