// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"database/sql"
	"flag"
	"os"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"

	"github.com/reporeply/reporeply/server"
	"github.com/reporeply/reporeply/store"
)

var (
	configFile     string
	migrateVersion int
)

func init() {
	flag.StringVar(&configFile, "config", "config-reporeply.json", "")
	flag.IntVar(&migrateVersion, "migration_version", -1, "Specify the target version to migrate to. 0 migrates all the way up.")
}

func main() {
	flag.Parse()

	config, err := server.GetConfig(configFile)
	if err != nil {
		mlog.Error("unable to load server config", mlog.Err(err), mlog.String("file", configFile))
		os.Exit(1)
	}
	if err = server.SetupLogging(config); err != nil {
		mlog.Error("unable to configure logging", mlog.Err(err))
		os.Exit(1)
	}

	if migrateVersion == -1 {
		mlog.Info("No migration version given, nothing to do")
		return
	}

	if err = runMigrations(config.DriverName, config.DataSource, migrateVersion); err != nil {
		mlog.Error("Failed to run migrations", mlog.Err(err))
		os.Exit(1)
	}
	mlog.Info("Migrations done", mlog.Int("version", migrateVersion))
}

func runMigrations(driverName, dataSource string, migrateVersion int) error {
	if migrateVersion < 0 {
		return errors.Errorf("invalid migration version: %d", migrateVersion)
	}

	db, err := sql.Open(driverName, dataSource)
	if err != nil {
		return errors.Wrap(err, "failed to open db connection")
	}
	defer db.Close()

	return store.RunMigrations(db, uint(migrateVersion))
}
