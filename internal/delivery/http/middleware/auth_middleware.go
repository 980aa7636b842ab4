package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"visus-api/config"
	"visus-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	AdminIdentityKey contextKey = "admin_identity"
)

// PreflightIdentity is attached to CORS pre-flight requests, which browsers
// send without credentials.
const PreflightIdentity = "preflight"

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthMiddleware guards admin routes with HTTP basic authentication against
// a single configured identity. The check is stateless and runs on every request.
type AuthMiddleware struct {
	username string
	password string
	log      *logrus.Logger
}

func NewAuthMiddleware(cfg config.AdminConfig, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		username: cfg.Username,
		password: cfg.Password,
		log:      log,
	}
}

// Authorize returns the admin identity when both username and password match
// exactly. Bad username and bad password are indistinguishable to the caller.
func (m *AuthMiddleware) Authorize(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return username, nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			ctx := context.WithValue(r.Context(), AdminIdentityKey, PreflightIdentity)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		identity, err := m.Authorize(username, password)
		if err != nil {
			m.log.Warnf("Rejected admin credentials for %s %s", r.Method, r.URL.Path)
			response.Unauthorized(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminIdentityFromContext extracts the authenticated admin from context
func GetAdminIdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(AdminIdentityKey).(string)
	return identity, ok
}
