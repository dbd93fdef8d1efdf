package httpapi

import (
	"net/http"
	"strings"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/server/auth"
)

// requireAuth verifies the bearer token and attaches the resolved identity to
// the request context. Absent header, malformed token, bad signature and
// expiry all produce the same 401; sub-reasons are never surfaced.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), userID)))
	})
}

// mustUserID returns the identity attached by requireAuth. Handlers behind
// the middleware can rely on it being set.
func mustUserID(r *http.Request) string {
	userID, _ := auth.UserIDFromContext(r.Context())
	return userID
}

// corsMiddleware lets the browser frontend on the configured origin call the
// API with credentials.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
