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

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/require"
)

func newTestJWKS(t *testing.T, kid string) jwk.Set {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := jwk.FromRaw(priv.PublicKey)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, kid))
	require.NoError(t, key.Set(jwk.AlgorithmKey, "RS256"))

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(key))

	return set
}

func TestJWKProvider_FetchCachesAcrossCalls(t *testing.T) {
	var hits int32

	set := newTestJWKS(t, "key-1")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}))
	defer srv.Close()

	p := &JWKProvider{URI: srv.URL, CacheDuration: time.Minute}

	_, err := p.Fetch(t.Context())
	require.NoError(t, err)

	_, err = p.Fetch(t.Context())
	require.NoError(t, err)

	require.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestJWKProvider_RefreshBypassesCache(t *testing.T) {
	var hits int32

	set := newTestJWKS(t, "key-1")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}))
	defer srv.Close()

	p := &JWKProvider{URI: srv.URL, CacheDuration: time.Minute}

	_, err := p.Fetch(t.Context())
	require.NoError(t, err)

	_, err = p.Refresh(t.Context())
	require.NoError(t, err)

	require.EqualValues(t, 2, atomic.LoadInt32(&hits))
}
