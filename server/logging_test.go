// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	assert.Equal(t, []mlog.Level{mlog.LvlPanic, mlog.LvlFatal, mlog.LvlError}, logLevels("ERROR"))
	assert.Contains(t, logLevels("warn"), mlog.LvlWarn)
	assert.NotContains(t, logLevels("warn"), mlog.LvlInfo)
	assert.Contains(t, logLevels(""), mlog.LvlInfo)
	assert.NotContains(t, logLevels("info"), mlog.LvlDebug)
	assert.Contains(t, logLevels("debug"), mlog.LvlDebug)
	assert.Contains(t, logLevels("trace"), mlog.LvlTrace)
}

func TestLoggerConfiguration(t *testing.T) {
	t.Run("nothing enabled", func(t *testing.T) {
		cfg, err := loggerConfiguration(LogSettings{})
		require.NoError(t, err)
		assert.Empty(t, cfg)
	})

	t.Run("console and file", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := loggerConfiguration(LogSettings{
			EnableConsole: true,
			ConsoleJSON:   true,
			ConsoleLevel:  "debug",
			EnableFile:    true,
			FileLevel:     "warn",
			FileLocation:  dir,
		})
		require.NoError(t, err)
		require.Len(t, cfg, 2)

		assert.Equal(t, "console", cfg["console"].Type)
		assert.Equal(t, "json", cfg["console"].Format)
		assert.Contains(t, cfg["console"].Levels, mlog.LvlDebug)

		file := cfg["file"]
		assert.Equal(t, "plain", file.Format)
		var options map[string]interface{}
		require.NoError(t, json.Unmarshal(file.Options, &options))
		assert.Equal(t, filepath.Join(dir, logFilename), options["filename"])
	})
}

func TestSetupLogging(t *testing.T) {
	err := SetupLogging(&Config{LogSettings: LogSettings{EnableConsole: true, ConsoleLevel: "error"}})
	require.NoError(t, err)
}
