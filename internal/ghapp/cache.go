// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package ghapp

import (
	"context"
	"sync"
	"time"
)

const (
	// refreshMargin renews a token this long before GitHub expires it.
	refreshMargin = time.Minute
	// defaultTokenLifetime is assumed when GitHub omits expires_at.
	defaultTokenLifetime = time.Hour
)

// Minter is implemented by Issuer.
type Minter interface {
	AppJWT() (string, error)
	Mint(ctx context.Context, installationID int64) (Token, error)
}

// CachedIssuer reuses installation tokens until shortly before they expire.
// Tokens are refreshed lazily on the first request after that point.
type CachedIssuer struct {
	minter Minter
	now    func() time.Time

	mu     sync.Mutex
	tokens map[int64]Token
}

func NewCachedIssuer(minter Minter) *CachedIssuer {
	return &CachedIssuer{
		minter: minter,
		now:    time.Now,
		tokens: make(map[int64]Token),
	}
}

func (c *CachedIssuer) AppJWT() (string, error) {
	return c.minter.AppJWT()
}

// MintInstallationCredential returns a bearer token for the installation.
// The lock is held while minting so concurrent callers for a cold
// installation trigger a single exchange.
func (c *CachedIssuer) MintInstallationCredential(ctx context.Context, installationID int64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if token, ok := c.tokens[installationID]; ok && now.Before(token.ExpiresAt.Add(-refreshMargin)) {
		return token.Value, nil
	}

	token, err := c.minter.Mint(ctx, installationID)
	if err != nil {
		delete(c.tokens, installationID)
		return "", err
	}
	if token.ExpiresAt.IsZero() {
		token.ExpiresAt = now.Add(defaultTokenLifetime)
	}
	c.tokens[installationID] = token

	return token.Value, nil
}

// Invalidate drops the cached token, e.g. after GitHub answered 401 to it.
func (c *CachedIssuer) Invalidate(installationID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, installationID)
}
