// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

const (
	defaultReminderCronSpec     = "@every 2m"
	defaultSweepCronSpec        = "0 1 * * *"
	defaultInactivityDays       = 30
	defaultGracePeriodDays      = 7
	defaultExemptLabel          = "do-not-close"
	defaultAlertThrottleMinutes = 10
	defaultGitHubTokenReserve   = 50
	defaultGitHubRateLimit      = 10
	defaultGitHubRateBurst      = 10
)

// Environment variables taking precedence over the config file. They are
// meant for secrets that should not live on disk.
const (
	envGitHubAppID          = "REPOREPLY_GITHUB_APP_ID"
	envGitHubPrivateKey     = "REPOREPLY_GITHUB_PRIVATE_KEY"
	envGitHubPrivateKeyPath = "REPOREPLY_GITHUB_PRIVATE_KEY_PATH"
	envGitLabAccessToken    = "REPOREPLY_GITLAB_ACCESS_TOKEN"
	envDataSource           = "REPOREPLY_DATA_SOURCE"
	envMattermostWebhookURL = "REPOREPLY_MATTERMOST_WEBHOOK_URL"
	envTelegramBotToken     = "REPOREPLY_TELEGRAM_BOT_TOKEN"
	envTelegramChatID       = "REPOREPLY_TELEGRAM_CHAT_ID"
)

// SummarySchedule is a named cron trigger for the daily summary.
type SummarySchedule struct {
	Label string
	Spec  string
}

type LogSettings struct {
	EnableConsole bool
	ConsoleJSON   bool
	ConsoleLevel  string
	EnableFile    bool
	FileJSON      bool
	FileLevel     string
	FileLocation  string
}

type Config struct {
	GitHubAppID              int64
	GitHubPrivateKey         string
	GitHubPrivateKeyPath     string
	GitHubAPIURL             string
	GitHubTokenReserve       int
	GitHubRateLimitPerSecond float64
	GitHubRateLimitBurst     int

	GitLabAccessToken string
	GitLabAPIURL      string

	DriverName string
	DataSource string

	ReminderCronSpec string
	SweepCronSpec    string
	SummaryCronSpecs []SummarySchedule
	Timezone         string

	InactivityDays       int
	GracePeriodDays      int
	ExemptLabel          string
	AlertThrottleMinutes int

	MattermostWebhookURL    string
	MattermostWebhookFooter string

	TelegramBotToken string
	TelegramChatID   int64
	TelegramAPIURL   string

	MetricsServerPort string

	LogSettings LogSettings
}

func findConfigFile(fileName string) string {
	if _, err := os.Stat("./config/" + fileName); err == nil {
		fileName, _ = filepath.Abs("./config/" + fileName)
	} else if _, err := os.Stat("../config/" + fileName); err == nil {
		fileName, _ = filepath.Abs("../config/" + fileName)
	} else if _, err := os.Stat(fileName); err == nil {
		fileName, _ = filepath.Abs(fileName)
	}

	return fileName
}

// GetConfig loads the config file, applies environment overrides and
// defaults, and validates the result.
func GetConfig(fileName string) (*Config, error) {
	config := &Config{}
	fileName = findConfigFile(fileName)

	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open config file %s", fileName)
	}
	defer file.Close()

	if err = json.NewDecoder(file).Decode(config); err != nil {
		return nil, errors.Wrapf(err, "unable to decode config file %s", fileName)
	}

	if err = config.applyEnvOverrides(); err != nil {
		return nil, err
	}
	config.setDefaults()

	if err = config.IsValid(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnvOverrides() error {
	overrideString := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
	overrideInt64 := func(key string, target *int64) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", key)
		}
		*target = n
		return nil
	}

	overrideString(envGitHubPrivateKey, &c.GitHubPrivateKey)
	overrideString(envGitHubPrivateKeyPath, &c.GitHubPrivateKeyPath)
	overrideString(envGitLabAccessToken, &c.GitLabAccessToken)
	overrideString(envDataSource, &c.DataSource)
	overrideString(envMattermostWebhookURL, &c.MattermostWebhookURL)
	overrideString(envTelegramBotToken, &c.TelegramBotToken)

	if err := overrideInt64(envGitHubAppID, &c.GitHubAppID); err != nil {
		return err
	}
	return overrideInt64(envTelegramChatID, &c.TelegramChatID)
}

func (c *Config) setDefaults() {
	if c.ReminderCronSpec == "" {
		c.ReminderCronSpec = defaultReminderCronSpec
	}
	if c.SweepCronSpec == "" {
		c.SweepCronSpec = defaultSweepCronSpec
	}
	if c.SummaryCronSpecs == nil {
		c.SummaryCronSpecs = []SummarySchedule{
			{Label: "Morning", Spec: "0 6 * * *"},
			{Label: "Night", Spec: "0 23 * * *"},
		}
	}
	if c.InactivityDays == 0 {
		c.InactivityDays = defaultInactivityDays
	}
	if c.GracePeriodDays == 0 {
		c.GracePeriodDays = defaultGracePeriodDays
	}
	if c.ExemptLabel == "" {
		c.ExemptLabel = defaultExemptLabel
	}
	if c.AlertThrottleMinutes == 0 {
		c.AlertThrottleMinutes = defaultAlertThrottleMinutes
	}
	if c.GitHubTokenReserve == 0 {
		c.GitHubTokenReserve = defaultGitHubTokenReserve
	}
	if c.GitHubRateLimitPerSecond == 0 {
		c.GitHubRateLimitPerSecond = defaultGitHubRateLimit
	}
	if c.GitHubRateLimitBurst == 0 {
		c.GitHubRateLimitBurst = defaultGitHubRateBurst
	}
	if c.DriverName == "" {
		c.DriverName = "mysql"
	}
}

// IsValid checks the settings the process cannot run without. Missing GitHub
// App credentials are not an error here: the cycles needing them report it.
func (c *Config) IsValid() error {
	if c.DataSource == "" {
		return errors.New("DataSource is required")
	}
	if c.InactivityDays < 0 || c.GracePeriodDays < 0 || c.AlertThrottleMinutes < 0 {
		return errors.New("InactivityDays, GracePeriodDays and AlertThrottleMinutes must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	specs := map[string]string{
		"ReminderCronSpec": c.ReminderCronSpec,
		"SweepCronSpec":    c.SweepCronSpec,
	}
	for _, s := range c.SummaryCronSpecs {
		specs["SummaryCronSpecs["+s.Label+"]"] = s.Spec
	}
	for name, spec := range specs {
		if _, err := cron.ParseStandard(spec); err != nil {
			return errors.Wrapf(err, "invalid %s %q", name, spec)
		}
	}

	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		mlog.Warn("Telegram bot token is set without a chat id; Telegram alerts are disabled")
	}

	return nil
}

// Location is the time zone the cron triggers are evaluated in.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid Timezone %q", c.Timezone)
	}
	return loc, nil
}

// PrivateKeyBytes returns the GitHub App key, preferring the literal PEM over
// the key file. It returns nil when neither is configured.
func (c *Config) PrivateKeyBytes() ([]byte, error) {
	if c.GitHubPrivateKey != "" {
		// Keys passed through env files often carry escaped newlines.
		return []byte(strings.ReplaceAll(c.GitHubPrivateKey, `\n`, "\n")), nil
	}
	if c.GitHubPrivateKeyPath == "" {
		return nil, nil
	}
	b, err := os.ReadFile(c.GitHubPrivateKeyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read GitHub private key %s", c.GitHubPrivateKeyPath)
	}
	return b, nil
}

func (c *Config) alertWindow() time.Duration {
	return time.Duration(c.AlertThrottleMinutes) * time.Minute
}
