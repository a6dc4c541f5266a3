// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"github.com/reporeply/reporeply/model"
)

type Store interface {
	Reminder() ReminderStore
	IssueState() IssueStateStore
	Close() error
}

// ReminderStore persists reminders as one collection: the delivery cycle
// loads everything and writes the whole list back.
type ReminderStore interface {
	List() ([]*model.Reminder, error)
	SaveAll(reminders []*model.Reminder) error
}

type IssueStateStore interface {
	Get(repoOwner, repoName string, number int) (*model.IssueState, error)
	Save(state *model.IssueState) (*model.IssueState, error)
}
