// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package ghapp mints GitHub App credentials: the short lived app JWT and
// the installation access tokens exchanged for it.
package ghapp

import (
	"context"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"
)

const (
	// clockSkew backdates the assertion so a GitHub clock slightly behind
	// ours does not reject it.
	clockSkew = 30 * time.Second
	// assertionLifetime is the longest lifetime GitHub accepts for an app JWT.
	assertionLifetime = 9 * time.Minute
)

// ErrAuthConfig is returned when the app id or the signing key is missing or
// unusable.
var ErrAuthConfig = errors.New("github app credentials are not configured")

// ProviderAuthError is returned when GitHub rejects the token exchange.
type ProviderAuthError struct {
	InstallationID int64
	StatusCode     int
	Err            error
}

func (e *ProviderAuthError) Error() string {
	return fmt.Sprintf("installation %d: token exchange rejected (status %d): %v", e.InstallationID, e.StatusCode, e.Err)
}

func (e *ProviderAuthError) Unwrap() error {
	return e.Err
}

// Token is an installation access token.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenCreator is the part of the GitHub Apps API used for the exchange.
type TokenCreator interface {
	CreateInstallationToken(ctx context.Context, id int64, opts *github.InstallationTokenOptions) (*github.InstallationToken, *github.Response, error)
}

// AppClientFunc builds a client authenticated with the given app JWT.
type AppClientFunc func(appJWT string) TokenCreator

// Issuer mints credentials. It never retries; callers decide.
type Issuer struct {
	appID        int64
	key          *rsa.PrivateKey
	keyErr       error
	newAppClient AppClientFunc
	now          func() time.Time
}

// NewIssuer parses the PEM encoded private key. A missing or malformed key
// does not fail construction: every mint reports ErrAuthConfig instead, so a
// misconfigured process keeps running and alerting.
func NewIssuer(appID int64, privateKey []byte, newAppClient AppClientFunc) *Issuer {
	i := &Issuer{
		appID:        appID,
		newAppClient: newAppClient,
		now:          time.Now,
	}

	switch {
	case appID <= 0:
		i.keyErr = errors.Wrap(ErrAuthConfig, "app id is not set")
	case len(privateKey) == 0:
		i.keyErr = errors.Wrap(ErrAuthConfig, "private key is not set")
	default:
		key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKey)
		if err != nil {
			i.keyErr = errors.Wrapf(ErrAuthConfig, "private key is malformed: %v", err)
		}
		i.key = key
	}

	return i
}

// AppJWT signs a new RS256 assertion identifying the app.
func (i *Issuer) AppJWT() (string, error) {
	if i.keyErr != nil {
		return "", i.keyErr
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iat": now.Add(-clockSkew).Unix(),
		"exp": now.Add(assertionLifetime).Unix(),
		"iss": i.appID,
	})

	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", errors.Wrapf(ErrAuthConfig, "could not sign app assertion: %v", err)
	}
	return signed, nil
}

// Mint exchanges a fresh app JWT for an installation access token.
func (i *Issuer) Mint(ctx context.Context, installationID int64) (Token, error) {
	appJWT, err := i.AppJWT()
	if err != nil {
		return Token{}, err
	}

	it, resp, err := i.newAppClient(appJWT).CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		authErr := &ProviderAuthError{InstallationID: installationID, Err: err}
		if resp != nil && resp.Response != nil {
			authErr.StatusCode = resp.StatusCode
		}
		return Token{}, authErr
	}

	return Token{Value: it.GetToken(), ExpiresAt: it.GetExpiresAt()}, nil
}
