package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/Priyanshu-coder81/Backend-learning/config"
	"github.com/Priyanshu-coder81/Backend-learning/db"
	authhandler "github.com/Priyanshu-coder81/Backend-learning/internal/auth/handler"
	authrepo "github.com/Priyanshu-coder81/Backend-learning/internal/auth/repository/postgres"
	authservice "github.com/Priyanshu-coder81/Backend-learning/internal/auth/service"
	"github.com/Priyanshu-coder81/Backend-learning/internal/middleware"
	"github.com/Priyanshu-coder81/Backend-learning/internal/response"
	"github.com/Priyanshu-coder81/Backend-learning/internal/storage"
	subhandler "github.com/Priyanshu-coder81/Backend-learning/internal/subscription/handler"
	subrepo "github.com/Priyanshu-coder81/Backend-learning/internal/subscription/repository/postgres"
	subservice "github.com/Priyanshu-coder81/Backend-learning/internal/subscription/service"
	tweethandler "github.com/Priyanshu-coder81/Backend-learning/internal/tweet/handler"
	tweetrepo "github.com/Priyanshu-coder81/Backend-learning/internal/tweet/repository/postgres"
	tweetservice "github.com/Priyanshu-coder81/Backend-learning/internal/tweet/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	storageSvc, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}

	userRepo := authrepo.NewPostgresUserRepository(pool)
	tweetRepo := tweetrepo.NewPostgresTweetRepository(pool)
	tweetLikeRepo := tweetrepo.NewPostgresLikeRepository(pool)
	subRepo := subrepo.NewPostgresSubscriptionRepository(pool)

	tokenService := authservice.NewTokenService(
		cfg.Auth.AccessTokenSecret,
		cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessExpiryMin,
		cfg.Auth.RefreshExpiryMin,
	)
	userService := authservice.NewUserService(userRepo, tokenService, storageSvc, subRepo, cfg, logger)
	tweetService := tweetservice.NewTweetService(tweetRepo, tweetLikeRepo)
	subService := subservice.NewSubscriptionService(subRepo)

	authHandler := authhandler.NewAuthHandler(userService, tokenService, cfg)
	tweetHandler := tweethandler.NewTweetHandler(tweetService)
	subHandler := subhandler.NewSubscriptionHandler(subService)

	requireAuth := middleware.RequireAuth(tokenService, userRepo)

	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigin,
		AllowCredentials: cfg.Server.CORSOrigin != "*",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(response.New(fiber.StatusServiceUnavailable, nil, "database unreachable"))
		}
		return response.JSON(c, fiber.StatusOK, nil, "ok")
	})

	authhandler.RegisterRoutes(app, authHandler, requireAuth)
	tweethandler.RegisterRoutes(app, tweetHandler, requireAuth)
	subhandler.RegisterRoutes(app, subHandler, requireAuth)

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildStorage(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (storage.Service, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)

	return storage.NewS3Service(client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.PublicURL), nil
}
