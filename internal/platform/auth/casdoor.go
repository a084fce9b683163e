// Package auth verifies bearer JWTs issued by the configured OIDC
// provider (Casdoor) against its published JWKS, caching the key set
// and retrying transient fetch failures with capped backoff.
package auth

import (
	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
)

// CasdoorConnection lazily opens a Casdoor SDK client from static config.
type CasdoorConnection struct {
	Conf   *casdoorsdk.AuthConfig
	client *casdoorsdk.Client
}

// GetClient returns the shared Casdoor client, connecting on first use.
func (cc *CasdoorConnection) GetClient() *casdoorsdk.Client {
	if cc.client == nil {
		cc.client = casdoorsdk.NewClientWithConf(cc.Conf)
	}

	return cc.client
}
