// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/mattermost/mattermost-server/v6/utils/fileutils"
	"github.com/pkg/errors"
)

const logFilename = "reporeply.log"

// GetLogFileLocation returns the log file path, defaulting to the logs
// directory next to the binary.
func GetLogFileLocation(fileLocation string) string {
	if fileLocation == "" {
		fileLocation, _ = fileutils.FindDir("logs")
	}

	return filepath.Join(fileLocation, logFilename)
}

// SetupLogging configures the global mlog logger from the log settings.
func SetupLogging(config *Config) error {
	logger, err := mlog.NewLogger()
	if err != nil {
		return errors.Wrap(err, "unable to create logger")
	}

	cfg, err := loggerConfiguration(config.LogSettings)
	if err != nil {
		return err
	}
	if err = logger.ConfigureTargets(cfg, nil); err != nil {
		return errors.Wrap(err, "unable to configure log targets")
	}

	mlog.InitGlobalLogger(logger)
	return nil
}

func loggerConfiguration(settings LogSettings) (mlog.LoggerConfiguration, error) {
	cfg := make(mlog.LoggerConfiguration)

	if settings.EnableConsole {
		cfg["console"] = mlog.TargetCfg{
			Type:         "console",
			Format:       logFormat(settings.ConsoleJSON),
			Options:      json.RawMessage(`{"out":"stdout"}`),
			Levels:       logLevels(settings.ConsoleLevel),
			MaxQueueSize: 1000,
		}
	}

	if settings.EnableFile {
		options, err := json.Marshal(map[string]interface{}{
			"filename": GetLogFileLocation(settings.FileLocation),
			"max_size": 100,
			"max_age":  7,
			"compress": true,
		})
		if err != nil {
			return nil, errors.Wrap(err, "unable to encode file target options")
		}
		cfg["file"] = mlog.TargetCfg{
			Type:         "file",
			Format:       logFormat(settings.FileJSON),
			Options:      options,
			Levels:       logLevels(settings.FileLevel),
			MaxQueueSize: 1000,
		}
	}

	return cfg, nil
}

func logFormat(asJSON bool) string {
	if asJSON {
		return "json"
	}
	return "plain"
}

// logLevels returns the given level and every more severe one.
func logLevels(level string) []mlog.Level {
	levels := []mlog.Level{mlog.LvlPanic, mlog.LvlFatal, mlog.LvlError}

	switch strings.ToLower(level) {
	case "error":
		return levels
	case "warn":
		return append(levels, mlog.LvlWarn)
	case "debug":
		return append(levels, mlog.LvlWarn, mlog.LvlInfo, mlog.LvlDebug)
	case "trace":
		return append(levels, mlog.LvlWarn, mlog.LvlInfo, mlog.LvlDebug, mlog.LvlTrace)
	default:
		return append(levels, mlog.LvlWarn, mlog.LvlInfo)
	}
}
