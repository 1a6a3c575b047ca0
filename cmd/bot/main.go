package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/budget-bot/internal/clients/cache"
	"max.ks1230/budget-bot/internal/clients/kafka"
	"max.ks1230/budget-bot/internal/clients/tg"
	"max.ks1230/budget-bot/internal/config"
	"max.ks1230/budget-bot/internal/logger"
	"max.ks1230/budget-bot/internal/model/ledger"
	"max.ks1230/budget-bot/internal/model/messages"
	"max.ks1230/budget-bot/internal/model/reports"
	"max.ks1230/budget-bot/internal/model/storage"
	"max.ks1230/budget-bot/internal/tracing"
)

const serviceName = "budget-bot"

func main() {
	logger.Info("Bot init - start")
	tracing.Init(serviceName)

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
	store := ledger.NewStore(db)

	reportCache, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached:", zap.Error(err))
	}

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	msgService := messages.NewService(client, store, reportCache, reports.NewRequester(producer))

	acceptor, err := reports.NewServer(conf.App().AcceptorPort(), msgService)
	if err != nil {
		logger.Fatal("failed to init acceptor server:", zap.Error(err))
	}
	go acceptor.Serve()
	defer acceptor.Shutdown()

	go serveMetrics(conf.App().MetricsPort())

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client.ListenUpdates(ctx, msgService)
}

func serveMetrics(port int) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	if err != nil {
		logger.Error("metrics endpoint failed", zap.Error(err))
	}
}
