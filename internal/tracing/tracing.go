package tracing

import (
	"go.uber.org/zap"

	"github.com/uber/jaeger-client-go/config"
	"max.ks1230/budget-bot/internal/logger"
)

func Init(serviceName string) {
	cfg := config.Configuration{
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
	}

	_, err := cfg.InitGlobalTracer(serviceName)
	if err != nil {
		logger.Fatal("cannot init tracing", zap.Error(err))
	}
}
