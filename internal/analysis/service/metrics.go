package service

import (
	"time"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

func recordAnalysis(theme domain.Theme, platform domain.Platform, decision domain.Decision) {
	metrics.AnalysesTotal.WithLabelValues(string(theme), string(platform), string(decision)).Inc()
}

func recordImage(result string) {
	metrics.AnalysisImagesTotal.WithLabelValues(result).Inc()
}

func observeClassifier(name string, start time.Time) {
	metrics.ClassifierDurationSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
