package storefront

import "net/http"

// requestOrigin derives the storefront origin the success and cancel URLs
// are built from: the Origin header when the browser sends one, otherwise
// the request host, otherwise the configured fallback.
func requestOrigin(r *http.Request, fallback string) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}
	if r.Host != "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		return scheme + "://" + r.Host
	}
	return fallback
}
