// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestParseGitHubAPIURL(t *testing.T) {
	u, err := parseGitHubAPIURL("")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = parseGitHubAPIURL("https://github.example.com/api/v3")
	require.NoError(t, err)
	assert.Equal(t, "https://github.example.com/api/v3/", u.String())

	_, err = parseGitHubAPIURL("://broken")
	require.Error(t, err)
}

func TestNewGithubClient(t *testing.T) {
	transport := httpmock.NewMockTransport()
	baseURL, err := parseGitHubAPIURL("https://github.example.com/api/v3")
	require.NoError(t, err)

	var authorization string
	transport.RegisterResponder(http.MethodPost, "https://github.example.com/api/v3/repos/owner/repo/issues/7/comments",
		func(req *http.Request) (*http.Response, error) {
			authorization = req.Header.Get("Authorization")
			return httpmock.NewStringResponse(http.StatusCreated, `{"id": 1, "body": "hi"}`), nil
		})

	client := NewGithubClient("installation-token", baseURL, NewRateLimitTransport(rate.NewLimiter(rate.Inf, 1), transport))
	comment, _, err := client.Issues.CreateComment(context.Background(), "owner", "repo", 7, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), comment.GetID())
	assert.Equal(t, "Bearer installation-token", authorization)
}

func TestRateLimitTransport(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://api.github.com/rate_limit",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An exhausted limiter makes the request wait, a cancelled context
	// aborts the wait before anything is sent.
	limiter := rate.NewLimiter(rate.Limit(0.001), 1)
	limiter.Allow()
	client := &http.Client{Transport: NewRateLimitTransport(limiter, transport)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.github.com/rate_limit", nil)
	require.NoError(t, err)
	_, err = client.Do(req)
	require.Error(t, err)
	assert.Zero(t, transport.GetTotalCallCount())
}
