package http

import "net/http"

// apiContentSecurityPolicy suits a JSON-only API: nothing may be loaded or framed.
const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeadersMiddleware sets the response hardening headers. An empty
// csp selects apiContentSecurityPolicy.
func SecurityHeadersMiddleware(csp string) func(http.Handler) http.Handler {
	if csp == "" {
		csp = apiContentSecurityPolicy
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Content-Security-Policy", csp)
			if r.URL.Path != "/metrics" {
				h.Set("Cache-Control", "no-store")
			}
			next.ServeHTTP(w, r)
		})
	}
}
