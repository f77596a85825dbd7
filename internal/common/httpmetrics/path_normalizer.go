package httpmetrics

import "strings"

var knownPaths = map[string]struct{}{
	"/api/analyze":     {},
	"/api/health":      {},
	"/api/auth/signup": {},
	"/api/auth/login":  {},
	"/api/auth/users":  {},
	"/metrics":         {},
}

// NormalizePath maps a request path to a metric label. Every route is static,
// so anything unknown collapses into one of two buckets to keep scanners from
// inflating label cardinality.
func NormalizePath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}

	path = strings.TrimSuffix(path, "/")
	if _, ok := knownPaths[path]; ok {
		return path
	}
	if strings.HasPrefix(path, "/api/") {
		return "/api/unknown"
	}
	return "other"
}
