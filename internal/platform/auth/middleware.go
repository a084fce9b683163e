package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

// TokenContextKey is the fiber.Ctx.Locals key the verified token is
// stashed under for downstream handlers.
const TokenContextKey = "auth.token"

// Claims is the subset of the bearer token's claims this service reads.
type Claims struct {
	Subject string
	Scopes  map[string]bool
}

// Middleware protects routes behind a verified RS256 bearer token.
type Middleware struct {
	jwk *JWKProvider
}

// NewMiddleware builds a Middleware backed by the given JWKS endpoint.
func NewMiddleware(jwksURI string) *Middleware {
	return &Middleware{
		jwk: &JWKProvider{URI: jwksURI, CacheDuration: jwkDefaultCacheDuration},
	}
}

// VerifyJWKSReachable fetches the JWKS once, for the composition
// container to call eagerly at startup: identity-metadata
// unreachability must fail the process before it starts serving, not
// surface as a 503 on the first protected request.
func (m *Middleware) VerifyJWKSReachable(ctx context.Context) (jwk.Set, error) {
	return m.jwk.Fetch(ctx)
}

// Protect verifies the bearer token on every request, rejecting missing,
// malformed, expired or untrusted tokens before the handler ever runs.
func (m *Middleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return apperr.Unauthorized("missing bearer token")
		}

		keySet, err := m.jwk.Fetch(context.Background())
		if err != nil {
			return apperr.ServiceUnavailable("could not load JWKS from the identity provider")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			kid, ok := token.Header["kid"].(string)
			if !ok {
				return nil, errors.New("kid header not found")
			}

			key, ok := keySet.LookupKeyID(kid)
			if !ok {
				// The cached set may be stale after a key rotation at the
				// identity provider. Force one refresh and retry before
				// rejecting the token, rather than waiting out the TTL.
				refreshed, refreshErr := m.jwk.Refresh(context.Background())
				if refreshErr != nil {
					return nil, errors.New("token does not match a trusted key")
				}

				key, ok = refreshed.LookupKeyID(kid)
				if !ok {
					return nil, errors.New("token does not match a trusted key")
				}
			}

			var raw any
			if err := key.Raw(&raw); err != nil {
				return nil, err
			}

			return raw, nil
		})
		if err != nil || !token.Valid {
			return apperr.Unauthorized("invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperr.Unauthorized("invalid token claims")
		}

		if exp, ok := claims["exp"].(float64); ok {
			if time.Unix(int64(exp), 0).Before(time.Now()) {
				return apperr.Unauthorized("token is expired")
			}
		}

		c.Locals(TokenContextKey, claimsFromMap(claims))

		return c.Next()
	}
}

func claimsFromMap(mc jwt.MapClaims) *Claims {
	claims := &Claims{Scopes: map[string]bool{}}

	if sub, ok := mc["sub"].(string); ok {
		claims.Subject = sub
	}

	if scope, ok := mc["scope"].(string); ok {
		for _, s := range strings.Split(scope, " ") {
			if s != "" {
				claims.Scopes[s] = true
			}
		}
	}

	return claims
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

// FromContext returns the verified claims attached to c by Protect.
func FromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(TokenContextKey).(*Claims)
	return claims, ok
}
