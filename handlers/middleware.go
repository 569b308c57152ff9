package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/camden-git/moodmatebackend/auth"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/gorilla/websocket"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// UserIDContextKey is the key used to store the authenticated user id in
	// the request context.
	UserIDContextKey ContextKey = "userID"
)

// TokenVerifier validates a bearer token and returns the user id it carries.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// AuthMiddleware rejects requests without a valid bearer token with 401 and
// stores the token's user id in the request context.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return authenticate(verifier, headerToken)
}

// StreamAuthMiddleware is AuthMiddleware for the websocket stream. Browsers
// cannot set headers on a handshake, so the token may also arrive as the
// entry after "bearer" in Sec-WebSocket-Protocol.
func StreamAuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return authenticate(verifier, streamToken)
}

func headerToken(r *http.Request) (string, bool) {
	return auth.BearerToken(r.Header.Get("Authorization"))
}

func streamToken(r *http.Request) (string, bool) {
	if token, ok := headerToken(r); ok {
		return token, true
	}
	protocols := websocket.Subprotocols(r)
	for i := 0; i+1 < len(protocols); i++ {
		if strings.EqualFold(protocols[i], realtime.TokenSubprotocol) && protocols[i+1] != "" {
			return protocols[i+1], true
		}
	}
	return "", false
}

func authenticate(verifier TokenVerifier, tokenFrom func(*http.Request) (string, bool)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := tokenFrom(r)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, msgTokenMissing)
				return
			}

			userID, err := verifier.Verify(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidSubject) {
					WriteAPIError(w, http.StatusUnauthorized, msgTokenNoSubject)
					return
				}
				log.Printf("Authentication error on %s %s: %v", r.Method, r.URL.Path, err)
				WriteAPIError(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDContextKey).(uint)
	return id, ok && id != 0
}

// requireUserID fetches the authenticated user id, answering 401 if the
// handler was mounted without AuthMiddleware.
func requireUserID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteAPIError(w, http.StatusUnauthorized, msgTokenMissing)
		return 0, false
	}
	return userID, true
}
