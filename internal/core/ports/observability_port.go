package ports

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

type LoggerPort interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
