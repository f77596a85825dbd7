package http

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	cleanup  *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		cleanup:  time.NewTicker(constants.RateLimitCleanupInterval),
		done:     make(chan struct{}),
	}

	go rl.cleanupLimiters()

	return rl
}

// cleanupLimiters drops limiters whose bucket has fully refilled.
func (rl *RateLimiter) cleanupLimiters() {
	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanup.C:
			rl.mu.Lock()
			for key, limiter := range rl.limiters {
				if limiter.Tokens() >= float64(rl.burst) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanup.Stop()
		close(rl.done)
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		limiter, exists = rl.limiters[key]
		if !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[key] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

type PathRateLimiter struct {
	loginLimiter   *RateLimiter
	signupLimiter  *RateLimiter
	analyzeLimiter *RateLimiter
	generalLimiter *RateLimiter
	trustProxy     bool
}

func NewPathRateLimiter(trustProxyHeaders bool) *PathRateLimiter {
	return &PathRateLimiter{
		trustProxy:     trustProxyHeaders,
		loginLimiter:   NewRateLimiter(constants.RateLimitLoginRequestsPerSecond, constants.RateLimitLoginBurst),
		signupLimiter:  NewRateLimiter(constants.RateLimitSignupRequestsPerSecond, constants.RateLimitSignupBurst),
		analyzeLimiter: NewRateLimiter(constants.RateLimitAnalyzeRequestsPerSecond, constants.RateLimitAnalyzeBurst),
		generalLimiter: NewRateLimiter(constants.RateLimitGeneralRequestsPerSecond, constants.RateLimitGeneralBurst),
	}
}

func (prl *PathRateLimiter) limiterFor(path string) (*RateLimiter, string) {
	switch path {
	case "/api/auth/login":
		return prl.loginLimiter, "login"
	case "/api/auth/signup":
		return prl.signupLimiter, "signup"
	case "/api/analyze":
		return prl.analyzeLimiter, "analyze"
	default:
		return prl.generalLimiter, "general"
	}
}

func (prl *PathRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || r.URL.Path == "/api/health" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		limiter, limiterType := prl.limiterFor(r.URL.Path)
		if !limiter.Allow(GetClientIP(r, prl.trustProxy)) {
			metrics.RateLimitBlocked.WithLabelValues(r.URL.Path, limiterType).Inc()
			WriteErrorCode(w, r, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (prl *PathRateLimiter) Stop() {
	prl.loginLimiter.Stop()
	prl.signupLimiter.Stop()
	prl.analyzeLimiter.Stop()
	prl.generalLimiter.Stop()
}
