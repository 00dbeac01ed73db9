package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/expenses-bot/internal/clients/cache"
	"max.ks1230/expenses-bot/internal/clients/fixer"
	"max.ks1230/expenses-bot/internal/clients/kafka"
	"max.ks1230/expenses-bot/internal/clients/tg"
	"max.ks1230/expenses-bot/internal/config"
	"max.ks1230/expenses-bot/internal/logger"
	"max.ks1230/expenses-bot/internal/model/messages"
	"max.ks1230/expenses-bot/internal/model/rates"
	"max.ks1230/expenses-bot/internal/model/reports"
	"max.ks1230/expenses-bot/internal/model/storage"
	"max.ks1230/expenses-bot/internal/tracing"
)

const defaultMetricsAddr = ":9100"

func main() {
	logger.Info("Bot init - start")

	traceCloser, err := tracing.InitGlobal("expenses-bot")
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

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache:", zap.Error(err))
	}

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	msgService := messages.NewService(client, db, reports.NewRequester(producer), mc, conf.App())

	puller, err := rates.NewPuller(db, fixer.New(conf.Fixer()), conf.App())
	if err != nil {
		logger.Fatal("failed to init rates puller:", zap.Error(err))
	}

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go puller.Pull(ctx)
	go serveMetrics(conf.App().MetricsAddr())

	client.ListenUpdates(ctx, msgService)
}

func serveMetrics(addr string) {
	if addr == "" {
		addr = defaultMetricsAddr
	}
	http.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
