// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"
)

// NotesService exposes the part of the GitLab API reminders are posted with.
// Useful to mock in tests.
type NotesService interface {
	CreateIssueNote(pid interface{}, issue int, opt *gitlab.CreateIssueNoteOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Note, *gitlab.Response, error)
}

type GitLabClient struct {
	Notes NotesService
}

// NewGitLabClient returns a client for the GitLab API. An empty baseURL
// targets gitlab.com.
func NewGitLabClient(accessToken, baseURL string, httpClient *http.Client) (*GitLabClient, error) {
	opts := []gitlab.ClientOptionFunc{gitlab.WithHTTPClient(httpClient)}
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	c, err := gitlab.NewClient(accessToken, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create GitLab client")
	}

	return &GitLabClient{
		Notes: c.Notes,
	}, nil
}
