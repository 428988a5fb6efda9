package auth

import (
	"net/http"
	"strings"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
)

// Verifier resolves a bearer token into an Identity.
type Verifier interface {
	Verify(token string) (*Identity, error)
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// caller's Identity in the request context for the next handler.
func JWTMiddleware(v Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apperror.WriteError(w, r, apperror.NewAuthError(msgUnauthorized, nil))
				return
			}

			id, err := v.Verify(token)
			if err != nil {
				apperror.WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithIdentity(r.Context(), id)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer {token}" header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
