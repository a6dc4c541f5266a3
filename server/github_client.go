// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/die-net/lrucache"
	"github.com/google/go-github/v39/github"
	"github.com/m4ns0ur/httpcache"
	"github.com/pkg/errors"
	"github.com/reporeply/reporeply/metrics"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	githubCacheMaxBytes = 64 << 20
	githubCacheMaxAge   = 24 * time.Hour
	httpClientTimeout   = time.Minute
)

type AppsService interface {
	CreateInstallationToken(ctx context.Context, id int64, opts *github.InstallationTokenOptions) (*github.InstallationToken, *github.Response, error)
	ListInstallations(ctx context.Context, opts *github.ListOptions) ([]*github.Installation, *github.Response, error)
	ListRepos(ctx context.Context, opts *github.ListOptions) (*github.ListRepositories, *github.Response, error)
}

type IssuesService interface {
	CreateComment(ctx context.Context, owner string, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	Edit(ctx context.Context, owner string, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	ListByRepo(ctx context.Context, owner string, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	ListComments(ctx context.Context, owner string, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
}

type RateLimitService interface {
	RateLimits(ctx context.Context) (*github.RateLimits, *github.Response, error)
}

// GithubClient wraps the github.Client with relevant interfaces.
type GithubClient struct {
	Apps      AppsService
	Issues    IssuesService
	RateLimit RateLimitService
}

// newGithubTransport builds the transport shared by every GitHub client:
// rate limited, instrumented, and backed by a conditional request cache.
// GitHub answers with "Vary: Authorization" so cached responses are not
// shared between installations.
func newGithubTransport(limiter *rate.Limiter, metricsProvider metrics.Provider) http.RoundTripper {
	cache := httpcache.NewTransport(lrucache.New(githubCacheMaxBytes, int64(githubCacheMaxAge/time.Second)))
	cache.Transport = http.DefaultTransport

	return NewRateLimitTransport(limiter, metrics.NewTransport(cache, metricsProvider))
}

// parseGitHubAPIURL returns nil for an empty URL, which keeps the public API.
func parseGitHubAPIURL(baseURL string) (*url.URL, error) {
	if baseURL == "" {
		return nil, nil
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid GitHub API URL %q", baseURL)
	}
	return u, nil
}

// NewGithubClient returns a client authenticating every request with the
// given bearer token, which is either an app JWT or an installation token.
func NewGithubClient(accessToken string, baseURL *url.URL, base http.RoundTripper) *GithubClient {
	httpClient := &http.Client{
		Timeout: httpClientTimeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
			Base:   base,
		},
	}
	client := github.NewClient(httpClient)
	if baseURL != nil {
		client.BaseURL = baseURL
	}

	return &GithubClient{
		Apps:      client.Apps,
		Issues:    client.Issues,
		RateLimit: client,
	}
}
