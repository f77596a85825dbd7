package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

// StartPoolMetrics publishes pool stats until ctx is done.
func StartPoolMetrics(ctx context.Context, pool *pgxpool.Pool, interval time.Duration) {
	if interval <= 0 {
		interval = constants.DBPoolMetricsInterval
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := pool.Stat()
				metrics.DBPoolConnections.WithLabelValues("acquired").Set(float64(stats.AcquiredConns()))
				metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(stats.IdleConns()))
				metrics.DBPoolConnections.WithLabelValues("total").Set(float64(stats.TotalConns()))
				metrics.DBPoolConnections.WithLabelValues("max").Set(float64(stats.MaxConns()))
			}
		}
	}()
}
