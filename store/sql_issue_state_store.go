// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/reporeply/reporeply/model"
)

type SQLIssueStateStore struct {
	*SQLStore
}

func NewSQLIssueStateStore(sqlStore *SQLStore) IssueStateStore {
	return &SQLIssueStateStore{sqlStore}
}

func (s SQLIssueStateStore) Save(state *model.IssueState) (*model.IssueState, error) {
	if _, err := s.dbx.NamedExec(
		`INSERT INTO IssueStates
			(RepoOwner, RepoName, Number, State, Labels, LastActivityAt, WarnedAt, ClosedAt, UpdatedAt)
		VALUES
			(:RepoOwner, :RepoName, :Number, :State, :Labels, :LastActivityAt, :WarnedAt, :ClosedAt, :UpdatedAt)
		ON DUPLICATE KEY UPDATE
			State = VALUES(State), Labels = VALUES(Labels), LastActivityAt = VALUES(LastActivityAt),
			WarnedAt = VALUES(WarnedAt), ClosedAt = VALUES(ClosedAt), UpdatedAt = VALUES(UpdatedAt)`, state); err != nil {
		return nil, errors.Wrapf(err, "could not save issue state: owner=%v, name=%v, number=%v", state.RepoOwner, state.RepoName, state.Number)
	}
	return state, nil
}

func (s SQLIssueStateStore) Get(repoOwner, repoName string, number int) (*model.IssueState, error) {
	var state model.IssueState
	if err := s.dbx.Get(&state,
		`SELECT
				*
			FROM
				IssueStates
			WHERE
				RepoOwner = ?
				AND RepoName = ?
				AND Number = ?`, repoOwner, repoName, number); err != nil {
		if err != sql.ErrNoRows {
			return nil, errors.Wrapf(err, "could not get issue state: owner=%v, name=%v, number=%v", repoOwner, repoName, number)
		}
		return nil, nil // row not found.
	}
	return &state, nil
}
