package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/classifieds/application/access"
	adsapp "github.com/muhammadheryan/classifieds/application/ads"
	authapp "github.com/muhammadheryan/classifieds/application/auth"
	imageapp "github.com/muhammadheryan/classifieds/application/image"
	userapp "github.com/muhammadheryan/classifieds/application/user"
	"github.com/muhammadheryan/classifieds/cmd/config"
	redisclient "github.com/muhammadheryan/classifieds/cmd/redis"
	_ "github.com/muhammadheryan/classifieds/docs"
	adRepo "github.com/muhammadheryan/classifieds/repository/ad"
	commentRepo "github.com/muhammadheryan/classifieds/repository/comment"
	imageRepo "github.com/muhammadheryan/classifieds/repository/image"
	redisRepo "github.com/muhammadheryan/classifieds/repository/redis"
	txRepo "github.com/muhammadheryan/classifieds/repository/tx"
	userRepo "github.com/muhammadheryan/classifieds/repository/user"
	"github.com/muhammadheryan/classifieds/thirdparty/rabbitmq"
	"github.com/muhammadheryan/classifieds/transport"
	"github.com/muhammadheryan/classifieds/utils/credential"
	"github.com/muhammadheryan/classifieds/utils/logger"
	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"go.uber.org/zap"
)

// @title CLASSIFIEDS API
// @version 1.0
// @description Classified ads backend: ads, comments, users and their images
// @host localhost:8080
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey InternalKey
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client; bearer sessions are off without it
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()
	if !cfg.SessionsEnabled() {
		logger.Warn("REDIS_HOST not set, bearer tokens disabled")
	}

	imageStore, err := imageRepo.NewFileStore(cfg.Image.Dir)
	if err != nil {
		logger.Fatal("err image dir", zap.String("dir", cfg.Image.Dir), zap.Error(err))
	}

	// Orphaned image events are optional
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	AdRepo := adRepo.NewAdRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	Credential := credential.NewBcrypt(cfg.Auth.BcryptCost)
	ImageApp := imageapp.NewImageApp(imageStore, AdRepo, UserRepo, publisher)
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo, Credential)
	UserApp := userapp.NewUserApp(UserRepo, TxRepo, ImageApp, Credential)
	AdsApp := adsapp.NewAdsApp(AdRepo, CommentRepo, UserRepo, TxRepo, ImageApp, access.NewEvaluator())

	httpTransport := transport.NewTransport(cfg, AuthApp, UserApp, AdsApp, ImageApp, db)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
