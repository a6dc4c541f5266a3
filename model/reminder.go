// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"time"
	"unicode/utf8"
)

// MaxQuarantineReasonLength is the size of the QuarantineReason column, in
// characters.
const MaxQuarantineReasonLength = 512

// Reminder is a user-scheduled request to be pinged on an issue at RemindAt.
//
// Sent never reverts to false once set, and SentAt is present iff Sent.
// A reminder retired without a delivery keeps the reason in QuarantineReason.
type Reminder struct {
	ID               string     `db:"Id" json:"id"`
	RepositoryID     string     `db:"RepositoryId" json:"repository_id"`
	IssueNumber      int        `db:"IssueNumber" json:"issue_number"`
	RequestingUser   string     `db:"RequestingUser" json:"requesting_user"`
	InstallationID   int64      `db:"InstallationId" json:"installation_id"`
	Provider         string     `db:"Provider" json:"provider"`
	RemindAt         time.Time  `db:"RemindAt" json:"remind_at"`
	Sent             bool       `db:"Sent" json:"sent"`
	SentAt           *time.Time `db:"SentAt" json:"sent_at,omitempty"`
	QuarantineReason string     `db:"QuarantineReason" json:"quarantine_reason,omitempty"`
}

// GetProvider returns the explicit provider, GitHub for reminders bound to
// an app installation, or the one detected from the repository URL.
func (r *Reminder) GetProvider() string {
	if r == nil {
		return ProviderGitHub
	}
	if r.Provider != "" {
		return r.Provider
	}
	if r.InstallationID != 0 {
		return ProviderGitHub
	}
	return ProviderFromRepo(r.RepositoryID)
}

// IsDue reports whether an unsent reminder should be delivered at now.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Sent && !r.RemindAt.After(now)
}

// MissingFields lists the fields a delivery needs but the reminder lacks.
func (r *Reminder) MissingFields() []string {
	var missing []string
	if r.RepositoryID == "" {
		missing = append(missing, "repository_id")
	}
	if r.IssueNumber <= 0 {
		missing = append(missing, "issue_number")
	}
	if r.InstallationID == 0 && r.GetProvider() == ProviderGitHub {
		missing = append(missing, "installation_id")
	}
	return missing
}

// MarkSent records a successful delivery.
func (r *Reminder) MarkSent(now time.Time) {
	sentAt := now
	r.Sent = true
	r.SentAt = &sentAt
}

// Quarantine retires the reminder without delivering it. Reasons longer
// than the column are cut short.
func (r *Reminder) Quarantine(now time.Time, reason string) {
	r.MarkSent(now)
	r.QuarantineReason = truncateReason(reason)
}

func truncateReason(reason string) string {
	if utf8.RuneCountInString(reason) <= MaxQuarantineReasonLength {
		return reason
	}
	const ellipsis = "..."
	runes := []rune(reason)
	return string(runes[:MaxQuarantineReasonLength-len(ellipsis)]) + ellipsis
}

// IsQuarantined reports whether the reminder was retired without delivery.
func (r *Reminder) IsQuarantined() bool {
	return r.Sent && r.QuarantineReason != ""
}
