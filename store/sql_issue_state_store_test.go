// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporeply/reporeply/model"
)

func TestIssueStateStore(t *testing.T) {
	ss := getTestSQLStore(t)
	is := ss.IssueState()

	lastActivity := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	warnedAt := lastActivity.AddDate(0, 0, 31)
	state := &model.IssueState{
		RepoOwner:      "octo",
		RepoName:       "repo",
		Number:         7,
		State:          model.InactivityWarned,
		Labels:         model.StringArray{"bug"},
		LastActivityAt: &lastActivity,
		WarnedAt:       &warnedAt,
		UpdatedAt:      warnedAt,
	}

	t.Run("no rows on Get", func(t *testing.T) {
		got, err := is.Get("octo", "repo", 7)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("happy path on Save and Get", func(t *testing.T) {
		_, err := is.Save(state)
		require.NoError(t, err)

		got, err := is.Get("octo", "repo", 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.InactivityWarned, got.State)
		assert.Equal(t, model.StringArray{"bug"}, got.Labels)
		assert.True(t, lastActivity.Equal(got.GetLastActivityAt()))
		assert.True(t, warnedAt.Equal(got.GetWarnedAt()))
		assert.Nil(t, got.ClosedAt)
	})

	t.Run("Save overwrites the state", func(t *testing.T) {
		closedAt := warnedAt.AddDate(0, 0, 7)
		state.State = model.InactivityClosed
		state.ClosedAt = &closedAt
		state.UpdatedAt = closedAt
		_, err := is.Save(state)
		require.NoError(t, err)

		got, err := is.Get("octo", "repo", 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.InactivityClosed, got.State)
		require.NotNil(t, got.ClosedAt)
	})

	t.Run("reset state without activity timestamps", func(t *testing.T) {
		resetAt := warnedAt.AddDate(0, 0, 9)
		reset := &model.IssueState{
			RepoOwner: "octo",
			RepoName:  "repo",
			Number:    7,
			State:     model.InactivityActive,
			UpdatedAt: resetAt,
		}
		_, err := is.Save(reset)
		require.NoError(t, err)

		got, err := is.Get("octo", "repo", 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.InactivityActive, got.State)
		assert.Nil(t, got.LastActivityAt)
		assert.Nil(t, got.WarnedAt)
		assert.Nil(t, got.ClosedAt)
		assert.Empty(t, got.Labels)
	})
}
