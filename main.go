package main

import (
	"context"
	"log"
	"time"

	"eduportal/config"
	"eduportal/database"
	"eduportal/logger"
	"eduportal/notify"
	"eduportal/routers"
	"eduportal/storage"
	"eduportal/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	if err := logger.Init(cfg.IsProduction()); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.ConnectDb()

	switch cfg.StorageDriver {
	case "gridfs":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := storage.NewGridFSStore(ctx, cfg.MongoURI, cfg.MongoDB, cfg.GridFSBucket)
		cancel()
		if err != nil {
			logger.Log.Fatal("failed to connect to gridfs", zap.Error(err))
		}
		defer store.Close(context.Background())
		storage.Files = store
	default:
		store, err := storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			logger.Log.Fatal("failed to prepare upload directory", zap.String("dir", cfg.UploadDir), zap.Error(err))
		}
		storage.Files = store
	}

	notifier := &notify.Notifier{Mailer: notify.LogMailer{}}
	if cfg.SendgridAPIKey != "" {
		notifier.Mailer = notify.NewSendgridMailer(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFrom)
	}
	if cfg.ModerationWebhookURL != "" {
		notifier.Webhook = notify.NewWebhook(cfg.ModerationWebhookURL)
	}
	notify.Current = notifier

	scheduler, err := utils.StartConferenceScheduler(cfg.ConferenceSweep)
	if err != nil {
		logger.Log.Fatal("invalid conference sweep schedule", zap.String("spec", cfg.ConferenceSweep), zap.Error(err))
	}
	defer scheduler.Stop()

	app := routers.NewApp()

	logger.Log.Info("server is running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Error("server stopped", zap.Error(err))
	}
}
