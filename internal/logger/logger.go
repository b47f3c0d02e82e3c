package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New monta o logger do processo. "production" usa JSON com timestamp ISO8601;
// qualquer outro valor usa o encoder colorido de desenvolvimento.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	}
	return cfg.Build()
}

// WithRun marca cada linha com um run_id novo, para agrupar os logs de uma execução.
func WithRun(log *zap.Logger) (*zap.Logger, string) {
	id := uuid.New().String()
	return log.With(zap.String("run_id", id)), id
}
