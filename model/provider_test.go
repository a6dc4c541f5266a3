// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFromRepo(t *testing.T) {
	assert.Equal(t, ProviderGitHub, ProviderFromRepo("octo/repo"))
	assert.Equal(t, ProviderGitHub, ProviderFromRepo(""))
	assert.Equal(t, ProviderGitLab, ProviderFromRepo("https://gitlab.com/group/project"))
	assert.Equal(t, ProviderBitbucket, ProviderFromRepo("bitbucket.org/team/repo"))
	assert.Equal(t, ProviderGitLab, ProviderFromRepo("HTTPS://GitLab.example.com/group/sub/project"))

	// Only the host decides, never the owner or repository name.
	assert.Equal(t, ProviderGitHub, ProviderFromRepo("acme/gitlab-exporter"))
	assert.Equal(t, ProviderGitHub, ProviderFromRepo("gitlab-org/tools"))
	assert.Equal(t, ProviderGitHub, ProviderFromRepo("https://github.com/acme/bitbucket-sync"))
}

func TestSplitRepoID(t *testing.T) {
	t.Run("Plain identifier", func(t *testing.T) {
		owner, name, err := SplitRepoID("octo/repo")
		require.NoError(t, err)
		assert.Equal(t, "octo", owner)
		assert.Equal(t, "repo", name)
	})

	t.Run("URL with git suffix", func(t *testing.T) {
		owner, name, err := SplitRepoID("https://github.com/octo/repo.git")
		require.NoError(t, err)
		assert.Equal(t, "octo", owner)
		assert.Equal(t, "repo", name)
	})

	t.Run("Nested GitLab groups", func(t *testing.T) {
		owner, name, err := SplitRepoID("gitlab.com/group/sub/project")
		require.NoError(t, err)
		assert.Equal(t, "group/sub", owner)
		assert.Equal(t, "project", name)
	})

	for _, id := range []string{"", "repo", "/repo", "owner/"} {
		_, _, err := SplitRepoID(id)
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, ErrMalformedRepository))
	}
}

func TestIssueURL(t *testing.T) {
	assert.Equal(t, "https://github.com/octo/repo/issues/3", IssueURL("octo/repo", 3, ProviderGitHub))
	assert.Equal(t, "https://gitlab.com/group/project/-/issues/3", IssueURL("https://gitlab.com/group/project", 3, ProviderGitLab))
}
