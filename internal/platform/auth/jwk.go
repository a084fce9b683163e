package auth

import (
	"context"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/patrickmn/go-cache"
)

const (
	jwkDefaultCacheDuration = time.Hour
	jwkFetchMaxAttempts     = 3
	jwkFetchBaseBackoff     = 200 * time.Millisecond
)

// JWKProvider fetches and caches the authorization server's JSON Web Key
// Set, making up to jwkFetchMaxAttempts fetch attempts in all, with
// linear backoff between them, before giving up.
type JWKProvider struct {
	URI           string
	CacheDuration time.Duration

	once  sync.Once
	cache *cache.Cache
}

func (p *JWKProvider) ensureCache() {
	p.once.Do(func() {
		duration := p.CacheDuration
		if duration == 0 {
			duration = jwkDefaultCacheDuration
		}

		p.cache = cache.New(duration, duration)
	})
}

// Fetch returns the cached key set, fetching (and retrying) on a miss.
func (p *JWKProvider) Fetch(ctx context.Context) (jwk.Set, error) {
	p.ensureCache()

	if set, found := p.cache.Get(p.URI); found {
		return set.(jwk.Set), nil
	}

	return p.Refresh(ctx)
}

// Refresh forces a fresh fetch, bypassing the cache, and replaces the
// cached key set on success. Callers use this when a token's kid isn't
// found in the cached set: the cache may simply be stale after a key
// rotation at the identity provider, and TTL expiry alone could leave a
// freshly rotated key unrecognized for up to CacheDuration.
func (p *JWKProvider) Refresh(ctx context.Context) (jwk.Set, error) {
	p.ensureCache()

	var (
		set jwk.Set
		err error
	)

	for attempt := 1; attempt <= jwkFetchMaxAttempts; attempt++ {
		set, err = jwk.Fetch(ctx, p.URI)
		if err == nil {
			break
		}

		if attempt < jwkFetchMaxAttempts {
			time.Sleep(jwkFetchBaseBackoff * time.Duration(attempt))
		}
	}

	if err != nil {
		return nil, err
	}

	p.cache.Set(p.URI, set, p.CacheDuration)

	return set, nil
}
