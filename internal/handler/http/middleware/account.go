package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const accountIDKey contextKey = "accountID"

// AccountID extracts the session account id placed by WithAccountID.
// Empty when the request carried no identity.
func AccountID(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}

// WithAccountID copies the X-Account-ID header into the request
// context. Authentication itself is handled upstream; this core only
// needs the id for receipt matching.
func WithAccountID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get("X-Account-ID"); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), accountIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}
