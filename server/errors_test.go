// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/xanzy/go-gitlab"

	"github.com/reporeply/reporeply/internal/delivery"
	"github.com/reporeply/reporeply/internal/ghapp"
	"github.com/reporeply/reporeply/model"
)

func TestClassifyError(t *testing.T) {
	gitlabError := func(status int) error {
		return &gitlab.ErrorResponse{
			Response: &http.Response{
				StatusCode: status,
				Request:    &http.Request{Method: http.MethodPost, URL: &url.URL{Scheme: "https", Host: "gitlab.com", Path: "/api/v4/projects/1/issues/1/notes"}},
			},
			Message: http.StatusText(status),
		}
	}

	tests := []struct {
		name     string
		err      error
		expected delivery.Class
	}{
		{"nil", nil, delivery.Transient},
		{"unknown", errors.New("connection reset by peer"), delivery.Transient},
		{"deadline", errors.Wrap(context.DeadlineExceeded, "comment"), delivery.Transient},
		{"auth config", errors.Wrap(ghapp.ErrAuthConfig, "no key"), delivery.Transient},
		{"malformed repository", errors.Wrap(model.ErrMalformedRepository, "repo"), delivery.Permanent},
		{"unsupported provider", errors.Wrap(errUnsupportedProvider, "bitbucket"), delivery.Permanent},
		{"github rate limit", &github.RateLimitError{Response: &http.Response{StatusCode: http.StatusForbidden}}, delivery.Transient},
		{"github abuse limit", &github.AbuseRateLimitError{Response: &http.Response{StatusCode: http.StatusForbidden}}, delivery.Transient},
		{"github 500", githubError(http.StatusInternalServerError), delivery.Transient},
		{"github 502 wrapped", errors.Wrap(githubError(http.StatusBadGateway), "comment"), delivery.Transient},
		{"github 401", githubError(http.StatusUnauthorized), delivery.Permanent},
		{"github 403", githubError(http.StatusForbidden), delivery.Permanent},
		{"github 404 wrapped", errors.Wrap(githubError(http.StatusNotFound), "comment"), delivery.Permanent},
		{"github 410", githubError(http.StatusGone), delivery.Permanent},
		{"github 422", githubError(http.StatusUnprocessableEntity), delivery.Transient},
		{"token exchange 401", &ghapp.ProviderAuthError{InstallationID: 1, StatusCode: http.StatusUnauthorized, Err: errors.New("bad jwt")}, delivery.Transient},
		{"token exchange 404", errors.Wrap(&ghapp.ProviderAuthError{InstallationID: 1, StatusCode: http.StatusNotFound, Err: errors.New("gone")}, "mint"), delivery.Permanent},
		{"token exchange network", &ghapp.ProviderAuthError{InstallationID: 1, Err: errors.New("dial tcp")}, delivery.Transient},
		{"gitlab 404", gitlabError(http.StatusNotFound), delivery.Permanent},
		{"gitlab 403", gitlabError(http.StatusForbidden), delivery.Permanent},
		{"gitlab 500", gitlabError(http.StatusInternalServerError), delivery.Transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyError(tt.err))
		})
	}
}
