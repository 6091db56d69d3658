package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/api"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/config"
	mongodb "github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/db/mongo"
	redisdb "github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/db/redis"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/mail"
	"github.com/jstanislawczyk/compcar-car-service-sub000/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		From:        cfg.SMTP.From,
		FrontendURL: cfg.FrontendURL,
	})
	welcome := mail.NewDispatcher(0, mailer, log)
	welcome.Start(ctx)

	e := api.NewRouter(cfg, api.Dependencies{
		Mongo:   db,
		Redis:   rdb,
		Mailer:  mailer,
		Welcome: welcome,
		Logger:  log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("car catalog API started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
