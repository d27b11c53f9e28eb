package http

import (
	"net/http"
	"slices"
)

const corsMaxAge = "3600"

// withCORS handles cross-origin requests against a fixed origin allow-list.
//
// A request whose Origin header matches the allow-list gets the matching
// Access-Control-Allow-Origin echoed back together with
// Access-Control-Allow-Credentials, so browsers may send cookies and the
// Authorization header. Origins outside the list receive no CORS headers and
// the browser blocks the response. Preflight OPTIONS requests are answered
// directly with 204 and never reach the routed handlers.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && slices.Contains(h.corsAllowedOrigins, origin) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			// the allow-list makes the response origin-dependent
			header.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				header.Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
