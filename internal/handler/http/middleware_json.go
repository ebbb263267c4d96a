package http

import "net/http"

// withJSONResponses ignores client content negotiation: the Accept header is
// dropped and the response is declared as JSON up front.
func withJSONResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Del("Accept")
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
