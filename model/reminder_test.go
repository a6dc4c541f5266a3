// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminder(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Due only when unsent and not in the future", func(t *testing.T) {
		r := &Reminder{RemindAt: now.Add(-time.Second)}
		assert.True(t, r.IsDue(now))
		r.RemindAt = now
		assert.True(t, r.IsDue(now))
		r.RemindAt = now.Add(time.Second)
		assert.False(t, r.IsDue(now))
		r.RemindAt = now.Add(-time.Hour)
		r.Sent = true
		assert.False(t, r.IsDue(now))
	})

	t.Run("Missing fields depend on the provider", func(t *testing.T) {
		r := &Reminder{RepositoryID: "octo/repo", IssueNumber: 1}
		assert.Equal(t, []string{"installation_id"}, r.MissingFields())

		r = &Reminder{RepositoryID: "gitlab.com/group/project", IssueNumber: 1}
		assert.Empty(t, r.MissingFields())

		r = &Reminder{}
		assert.Equal(t, []string{"repository_id", "issue_number", "installation_id"}, r.MissingFields())
	})

	t.Run("Quarantine keeps the sent invariant", func(t *testing.T) {
		r := &Reminder{}
		r.Quarantine(now, "malformed")
		require.NotNil(t, r.SentAt)
		assert.True(t, r.Sent)
		assert.Equal(t, now, *r.SentAt)
		assert.True(t, r.IsQuarantined())
	})

	t.Run("Installation id pins the provider to GitHub", func(t *testing.T) {
		r := &Reminder{RepositoryID: "acme/gitlab-exporter", IssueNumber: 1, InstallationID: 7}
		assert.Equal(t, ProviderGitHub, r.GetProvider())
		assert.Empty(t, r.MissingFields())

		r = &Reminder{RepositoryID: "acme/gitlab-exporter", IssueNumber: 1}
		assert.Equal(t, ProviderGitHub, r.GetProvider())

		r = &Reminder{RepositoryID: "octo/repo", Provider: ProviderGitLab, InstallationID: 7}
		assert.Equal(t, ProviderGitLab, r.GetProvider())
	})

	t.Run("Long quarantine reasons fit the column", func(t *testing.T) {
		r := &Reminder{}
		r.Quarantine(now, "permanent: "+strings.Repeat("é", 2*MaxQuarantineReasonLength))
		assert.Equal(t, MaxQuarantineReasonLength, utf8.RuneCountInString(r.QuarantineReason))
		assert.True(t, strings.HasPrefix(r.QuarantineReason, "permanent: é"))
		assert.True(t, strings.HasSuffix(r.QuarantineReason, "..."))

		r.Quarantine(now, "permanent: not found")
		assert.Equal(t, "permanent: not found", r.QuarantineReason)
	})
}
