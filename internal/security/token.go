package security

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

// Claims is the JWT payload: identity plus role, enough for every
// authorization decision without a database round trip.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

// Generate issues a signed HS256 token for the user.
func (p *TokenProvider) Generate(userID common.UUID, email string, role user.Role) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(p.ttl)
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates signature and expiry and returns the claims. Expired,
// malformed, and badly signed tokens all come back as plain errors; callers
// treat any failure as an invalid token.
func (p *TokenProvider) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return p.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwtlib.ErrTokenInvalidClaims
	}
	return claims, nil
}
