// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"net/http"

	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"
	"github.com/reporeply/reporeply/internal/delivery"
	"github.com/reporeply/reporeply/internal/ghapp"
	"github.com/reporeply/reporeply/model"
	"github.com/xanzy/go-gitlab"
)

var (
	errUnsupportedProvider = errors.New("provider is not supported")
	errGitLabNotConfigured = errors.New("GitLab access token is not configured")
)

// classifyError decides whether a failed delivery may succeed on a later
// cycle. Anything not recognized as permanent is retried.
func classifyError(err error) delivery.Class {
	if err == nil {
		return delivery.Transient
	}

	if errors.Is(err, ghapp.ErrAuthConfig) {
		return delivery.Transient
	}
	if errors.Is(err, model.ErrMalformedRepository) || errors.Is(err, errUnsupportedProvider) {
		return delivery.Permanent
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return delivery.Transient
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return delivery.Transient
	}

	// A rejected token exchange with 401 means GitHub refused our app JWT,
	// which affects every installation alike.
	var authErr *ghapp.ProviderAuthError
	if errors.As(err, &authErr) {
		if authErr.StatusCode == http.StatusUnauthorized {
			return delivery.Transient
		}
		return statusClass(authErr.StatusCode)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return statusClass(ghErr.Response.StatusCode)
	}

	var glErr *gitlab.ErrorResponse
	if errors.As(err, &glErr) && glErr.Response != nil {
		return statusClass(glErr.Response.StatusCode)
	}

	return delivery.Transient
}

func statusClass(code int) delivery.Class {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusGone:
		return delivery.Permanent
	default:
		return delivery.Transient
	}
}

func statusCode(err error) int {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	return 0
}
