package inits

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Logger(debugMode bool) (l *zap.Logger, err error) {
	var cfg zap.Config
	if debugMode {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if l, err = cfg.Build(); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named("mcc"), nil
}
