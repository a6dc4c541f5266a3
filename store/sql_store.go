// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"database/sql"
	"os"

	_ "github.com/go-sql-driver/mysql" // Load MySQL Driver
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"

	"github.com/reporeply/reporeply/store/migrations"
)

type SQLStore struct {
	dbx        *sqlx.DB
	reminder   ReminderStore
	issueState IssueStateStore
}

func initConnection(driverName, dataSource string) (*SQLStore, error) {
	db, err := sqlx.Open(driverName, dataSource)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db connection")
	}

	mlog.Info("pinging db")
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not ping db")
	}

	return &SQLStore{dbx: db}, nil
}

// NewSQLStore connects to the database and brings the schema up to date.
func NewSQLStore(driverName, dataSource string) (*SQLStore, error) {
	sqlStore, err := initConnection(driverName, dataSource)
	if err != nil {
		return nil, err
	}

	if err = RunMigrations(sqlStore.dbx.DB, 0); err != nil {
		sqlStore.Close()
		return nil, err
	}

	sqlStore.reminder = NewSQLReminderStore(sqlStore)
	sqlStore.issueState = NewSQLIssueStateStore(sqlStore)

	return sqlStore, nil
}

func (ss *SQLStore) Close() error {
	mlog.Info("closing db")
	return ss.dbx.Close()
}

func (ss *SQLStore) Reminder() ReminderStore {
	return ss.reminder
}

func (ss *SQLStore) IssueState() IssueStateStore {
	return ss.issueState
}

// RunMigrations migrates the schema up, or to version when it is positive.
func RunMigrations(db *sql.DB, version uint) error {
	dbDriver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "failed to create source instance")
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "mysql", dbDriver)
	if err != nil {
		return errors.Wrap(err, "failed to create db instance")
	}

	if version > 0 {
		err = m.Migrate(version)
	} else {
		err = m.Up()
	}
	// A missing file means we rolled back to older code without running the
	// down migrations, which is not worth refusing to start for.
	if err != nil && err != migrate.ErrNoChange && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "failed to migrate DB")
	}
	return nil
}
