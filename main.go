package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"exeat_backend/internals/configs"
	database "exeat_backend/internals/databases"
	"exeat_backend/internals/features/home/notifications/email"
	authService "exeat_backend/internals/features/users/auth/service"
	scheduler "exeat_backend/internals/features/users/auth/scheduler"
	helper "exeat_backend/internals/helpers"
	helpersAuth "exeat_backend/internals/helpers/auth"
	middlewares "exeat_backend/internals/middlewares"
	routes "exeat_backend/internals/route"
	"exeat_backend/internals/seeds"
)

func main() {
	log := configs.Bootstrap()
	defer func() { _ = log.Sync() }()

	if configs.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	if configs.GetEnvBool("DB_AUTO_MIGRATE", false) {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatal("auto-migrate failed", zap.Error(err))
		}
		log.Info("✅ schema migrated")
	}
	if configs.GetEnvBool("RUN_SEEDS", false) {
		seeds.RunAllSeeds(database.DB, configs.GetEnv("SEED_USERS_FILE", seeds.DefaultUsersFile))
	}
	database.WarmUpQueries()

	// 🔐 token revocation: Redis kalau ada, fallback DB
	var blacklist helpersAuth.Blacklist = helpersAuth.NewDBBlacklist(database.DB, configs.JWTSecret)
	if rdb := database.ConnectRedis(); rdb != nil {
		blacklist = helpersAuth.NewRedisBlacklist(rdb, configs.JWTSecret)
	}

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(blacklist, configs.BlacklistCleanupCron)
	if err != nil {
		log.Fatal("invalid BLACKLIST_CLEANUP_CRON", zap.Error(err))
	}

	// ✉️ outbound email di background
	dispatcher := email.NewDispatcher(email.NewMailerFromConfig(), configs.EmailWorkers, configs.EmailQueueSize)

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		DB:        database.DB,
		Tokens:    authService.NewTokenService(configs.JWTSecret, configs.JWTTokenTTL),
		Blacklist: blacklist,
		Emails:    dispatcher,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Info("✅ listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown: HTTP → cron → email queue → redis → DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-cleanup.Stop().Done()
	dispatcher.Close()
	database.CloseRedis()
	database.Close()
}
