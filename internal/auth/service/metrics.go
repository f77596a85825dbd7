package service

import (
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}

func recordSignup(outcome string) {
	metrics.SignupsTotal.WithLabelValues(outcome).Inc()
}

func recordLogin(outcome string) {
	metrics.LoginsTotal.WithLabelValues(outcome).Inc()
}
