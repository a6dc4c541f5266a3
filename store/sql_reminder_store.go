// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"github.com/pkg/errors"

	"github.com/reporeply/reporeply/model"
)

type SQLReminderStore struct {
	*SQLStore
}

func NewSQLReminderStore(sqlStore *SQLStore) ReminderStore {
	return &SQLReminderStore{sqlStore}
}

func (s SQLReminderStore) List() ([]*model.Reminder, error) {
	reminders := []*model.Reminder{}
	if err := s.dbx.Select(&reminders,
		`SELECT
				Id, RepositoryId, IssueNumber, RequestingUser, InstallationId, Provider,
				RemindAt, Sent, SentAt, QuarantineReason
			FROM
				Reminders
			ORDER BY
				RemindAt, Id`); err != nil {
		return nil, errors.Wrap(err, "could not list reminders")
	}
	return reminders, nil
}

// SaveAll upserts every reminder of the list in a single transaction. Rows
// missing from the list are left alone: reminders are created by other
// writers and the delivery cycle never removes any.
func (s SQLReminderStore) SaveAll(reminders []*model.Reminder) (err error) {
	tx, err := s.dbx.Beginx()
	if err != nil {
		return errors.Wrap(err, "could not begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, r := range reminders {
		if _, err = tx.NamedExec(
			`INSERT INTO Reminders
				(Id, RepositoryId, IssueNumber, RequestingUser, InstallationId, Provider,
					RemindAt, Sent, SentAt, QuarantineReason)
			VALUES
				(:Id, :RepositoryId, :IssueNumber, :RequestingUser, :InstallationId, :Provider,
					:RemindAt, :Sent, :SentAt, :QuarantineReason)
			ON DUPLICATE KEY UPDATE
				RepositoryId = VALUES(RepositoryId), IssueNumber = VALUES(IssueNumber),
				RequestingUser = VALUES(RequestingUser), InstallationId = VALUES(InstallationId),
				Provider = VALUES(Provider), RemindAt = VALUES(RemindAt), Sent = VALUES(Sent),
				SentAt = VALUES(SentAt), QuarantineReason = VALUES(QuarantineReason)`, r); err != nil {
			return errors.Wrapf(err, "could not save reminder: id=%v", r.ID)
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "could not commit reminders")
	}
	return nil
}
