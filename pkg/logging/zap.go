package logutils

import (
	"go.uber.org/zap"
)

func NewLogger(env string, opts ...zap.Option) (*zap.Logger, error) {
	switch env {
	case "prod":
		return zap.NewProduction(opts...)
	case "test":
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment(opts...)
	}
}
