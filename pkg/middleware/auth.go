package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/tripsplit/tripsplit/internal/config"
	"github.com/tripsplit/tripsplit/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// UserEmailKey is the context key for the authenticated participant email
const UserEmailKey ContextKey = "user_email"

// DemoEmail is the fixed identity used when DEMO_MODE is on.
const DemoEmail = "alice@tripsplit.demo"

var firebaseAuth *auth.Client

// InitializeFirebase sets up Google ID-token verification. Without
// credentials the server falls back to the local email-allowlist mode.
func InitializeFirebase(cfg *config.Config) error {
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsJSON == "" {
		slog.Info("Firebase credentials not configured, using local allowlist auth")
		return nil
	}

	app, err := firebase.NewApp(context.Background(),
		&firebase.Config{ProjectID: cfg.FirebaseProjectID},
		option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)),
	)
	if err != nil {
		return err
	}

	firebaseAuth, err = app.Auth(context.Background())
	if err != nil {
		return err
	}

	slog.Info("Google ID-token verification enabled", "project_id", cfg.FirebaseProjectID)
	return nil
}

// Auth returns middleware that resolves the caller's participant email.
//
// Demo mode uses a fixed identity. With Firebase configured, the Bearer
// token is verified and its email claim checked against the allowlist.
// Otherwise the X-User-Email header is checked against the same allowlist.
func Auth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.DemoMode {
				next.ServeHTTP(w, r.WithContext(withEmail(r.Context(), DemoEmail)))
				return
			}

			if firebaseAuth != nil {
				token := extractToken(r.Header.Get("Authorization"))
				if token == "" {
					response.Unauthorized(w, "Bearer token required")
					return
				}

				verified, err := firebaseAuth.VerifyIDToken(r.Context(), token)
				if err != nil {
					slog.Warn("ID token verification failed", "error", err)
					response.Unauthorized(w, "Invalid or expired token")
					return
				}

				email, _ := verified.Claims["email"].(string)
				if email == "" {
					response.Unauthorized(w, "Token has no email claim")
					return
				}
				if !cfg.IsAllowed(email) {
					response.Forbidden(w, "Account is not on the trip allowlist")
					return
				}

				next.ServeHTTP(w, r.WithContext(withEmail(r.Context(), email)))
				return
			}

			// Local fallback: trust the header, still gate on the allowlist.
			email := strings.TrimSpace(r.Header.Get("X-User-Email"))
			if email == "" {
				response.Unauthorized(w, "X-User-Email header required")
				return
			}
			if !cfg.IsAllowed(email) {
				response.Forbidden(w, "Account is not on the trip allowlist")
				return
			}

			next.ServeHTTP(w, r.WithContext(withEmail(r.Context(), email)))
		})
	}
}

// GetUserEmail extracts the authenticated email from the request context
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

func withEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, strings.ToLower(email))
}

// extractToken pulls the token out of a "Bearer <token>" header value
func extractToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
