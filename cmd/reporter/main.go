package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/budget-bot/internal/clients/kafka"
	"max.ks1230/budget-bot/internal/config"
	"max.ks1230/budget-bot/internal/logger"
	"max.ks1230/budget-bot/internal/model/reports"
	"max.ks1230/budget-bot/internal/model/storage"
	"max.ks1230/budget-bot/internal/tracing"
)

const serviceName = "budget-reporter"

func main() {
	logger.Info("Reporter init - start")
	tracing.Init(serviceName)

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}

	reportGenerator := reports.NewGenerator(db)

	acceptorAddr := fmt.Sprintf("%s:%d", conf.App().AcceptorHost(), conf.App().AcceptorPort())
	sender, err := reports.NewSender(acceptorAddr)
	if err != nil {
		logger.Fatal("failed to init report sender", zap.Error(err))
	}
	defer sender.Close()

	consumer, err := kafka.NewConsumer(conf.Kafka(), reportGenerator, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
