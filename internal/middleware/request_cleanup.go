package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest drains the request body and closes it after the
// handler ran, avoiding connection reuse overhead and leaks
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
