package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/expenses-bot/internal/clients/cache"
	"max.ks1230/expenses-bot/internal/clients/kafka"
	"max.ks1230/expenses-bot/internal/clients/tg"
	"max.ks1230/expenses-bot/internal/config"
	"max.ks1230/expenses-bot/internal/logger"
	"max.ks1230/expenses-bot/internal/model/reports"
	"max.ks1230/expenses-bot/internal/model/storage"
	"max.ks1230/expenses-bot/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")

	traceCloser, err := tracing.InitGlobal("expenses-reporter")
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() {
		if err := traceCloser.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache:", zap.Error(err))
	}

	generator := reports.NewGenerator(conf.App(), db)
	deliverer := reports.NewDeliverer(client, mc)

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, deliverer)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to consume report requests", zap.Error(err))
	}
}
