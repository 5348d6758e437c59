package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UserKey is the context key for the acting user
	UserKey ContextKey = "user"
)

// User identifies who is making the request. There is no real
// authentication in this prototype — identity is a placeholder gate, and
// the default user is the device owner, who always appears as "You".
type User struct {
	ID   string
	Name string
}

// DefaultUser is the seeded device owner.
var DefaultUser = User{ID: "user-you", Name: "You"}

// Identity resolves the acting user from the X-User-ID / X-User-Name
// headers, falling back to the device owner. This stands in for the OTP
// validation gate, which performs no real verification either.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := DefaultUser
		if id := strings.TrimSpace(r.Header.Get("X-User-ID")); id != "" {
			user.ID = id
			user.Name = id
			if name := strings.TrimSpace(r.Header.Get("X-User-Name")); name != "" {
				user.Name = name
			}
		}
		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the acting user from the request context.
func GetUser(ctx context.Context) User {
	if user, ok := ctx.Value(UserKey).(User); ok {
		return user
	}
	return DefaultUser
}
