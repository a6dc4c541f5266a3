// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"time"
)

// Inactivity lifecycle states of an issue.
const (
	InactivityActive = "active"
	InactivityWarned = "warned"
	InactivityClosed = "closed"
)

// IssueState is the locally persisted inactivity state of one issue.
type IssueState struct {
	RepoOwner string `db:"RepoOwner"`
	RepoName  string `db:"RepoName"`
	Number    int    `db:"Number"`
	State     string `db:"State"`
	// Labels seen on the issue at the last transition.
	Labels StringArray `db:"Labels"`
	// LastActivityAt is the issue's updated_at observed before the warning
	// comment was posted. Unset while the issue is active.
	LastActivityAt *time.Time `db:"LastActivityAt"`
	WarnedAt       *time.Time `db:"WarnedAt"`
	ClosedAt       *time.Time `db:"ClosedAt"`
	UpdatedAt      time.Time  `db:"UpdatedAt"`
}

func (s *IssueState) GetState() string {
	if s == nil || s.State == "" {
		return InactivityActive
	}
	return s.State
}

func (s *IssueState) GetWarnedAt() time.Time {
	if s == nil || s.WarnedAt == nil {
		return time.Time{}
	}
	return *s.WarnedAt
}

func (s *IssueState) GetLastActivityAt() time.Time {
	if s == nil || s.LastActivityAt == nil {
		return time.Time{}
	}
	return *s.LastActivityAt
}
