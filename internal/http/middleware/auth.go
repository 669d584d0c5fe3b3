package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
	"github.com/imtiazahmadtanvir/quick-hire/internal/security"
)

type contextKey string

const contextIdentityKey contextKey = "identity"

// Identity is the verified caller, decoded from the bearer token. It is the
// only authentication state a handler ever sees.
type Identity struct {
	UserID common.UUID
	Email  string
	Role   user.Role
}

type AuthMiddleware struct {
	tokens *security.TokenProvider
}

func NewAuthMiddleware(tokens *security.TokenProvider) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token. Expired,
// malformed, and badly signed tokens are all one outcome: 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.identityFromRequest(r)
		if err != nil {
			response.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), contextIdentityKey, *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches an identity when a valid token is present and
// passes the request through untouched otherwise. Used on listings where
// authentication only matters for owner-scoped filters.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, err := m.identityFromRequest(r); err == nil {
			ctx := context.WithValue(r.Context(), contextIdentityKey, *identity)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) identityFromRequest(r *http.Request) (*Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, common.NewError(common.CodeUnauthorized, "missing authorization header", nil)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil)
	}
	claims, err := m.tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	userID, err := common.ParseUUID(claims.UserID)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token subject", err)
	}
	return &Identity{UserID: userID, Email: claims.Email, Role: user.Role(claims.Role)}, nil
}

// RequireRole gates a handler on the caller's role. It assumes Authenticate
// already ran.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
				return
			}
			if identity.Role != role {
				response.Error(w, common.NewError(common.CodeForbidden, string(role)+" access only", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextIdentityKey).(Identity)
	return identity, ok
}
