package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, priv any, kid string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = kid

	signed, err := token.SignedString(priv)
	require.NoError(t, err)

	return signed
}

func TestMiddleware_ProtectRefreshesOnKeyRotationMidFlight(t *testing.T) {
	priv1, set1 := newRSAKeyPair(t, "key-1")
	priv2, set2 := newRSAKeyPair(t, "key-2")

	var current atomic.Value
	current.Store(set1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(current.Load().(jwk.Set))
	}))
	defer srv.Close()

	m := NewMiddleware(srv.URL)

	app := fiber.New()
	app.Use(m.Protect())
	app.Get("/protected", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	// Prime the cache against the first key set.
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, priv1, "key-1"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Rotate the identity provider's key set without waiting for the
	// cache TTL to lapse.
	current.Store(set2)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, priv2, "key-2"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMiddleware_ProtectRejectsUnknownKeyAfterFailedRefresh(t *testing.T) {
	priv1, set1 := newRSAKeyPair(t, "key-1")
	priv2, _ := newRSAKeyPair(t, "key-2")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set1)
	}))
	defer srv.Close()

	m := NewMiddleware(srv.URL)

	app := fiber.New()
	app.Use(m.Protect())
	app.Get("/protected", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, priv1, "key-1"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The identity provider never rotates in a key for kid "key-2", so
	// the forced refresh still misses and the token is rejected.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, priv2, "key-2"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func newRSAKeyPair(t *testing.T, kid string) (*rsa.PrivateKey, jwk.Set) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := jwk.FromRaw(priv.PublicKey)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, kid))
	require.NoError(t, key.Set(jwk.AlgorithmKey, "RS256"))

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(key))

	return priv, set
}
