// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/reporeply/reporeply/internal/ghapp"
	"github.com/reporeply/reporeply/metrics"
	"github.com/reporeply/reporeply/store"
	"github.com/reporeply/reporeply/version"
)

const shutdownTimeout = 30 * time.Second

// CredentialIssuer hands out GitHub App credentials.
type CredentialIssuer interface {
	AppJWT() (string, error)
	MintInstallationCredential(ctx context.Context, installationID int64) (string, error)
	Invalidate(installationID int64)
}

// Server runs the scheduled tasks. It has no HTTP surface of its own.
type Server struct {
	Config      *Config
	Store       store.Store
	Metrics     metrics.Provider
	Credentials CredentialIssuer
	GitLab      *GitLabClient
	Alerts      AlertSink
	Throttle    *AlertThrottle

	newGithubClient func(token string) *GithubClient
	cron            *cron.Cron
	now             func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the server and its clients. Missing GitHub App credentials
// do not fail it; the tasks needing them report a configuration error.
func New(config *Config, metricsProvider metrics.Provider) (*Server, error) {
	baseURL, err := parseGitHubAPIURL(config.GitHubAPIURL)
	if err != nil {
		return nil, err
	}

	sqlStore, err := store.NewSQLStore(config.DriverName, config.DataSource)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create store")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		Config:  config,
		Store:   sqlStore,
		Metrics: metricsProvider,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}

	limiter := rate.NewLimiter(rate.Limit(config.GitHubRateLimitPerSecond), config.GitHubRateLimitBurst)
	githubTransport := newGithubTransport(limiter, metricsProvider)
	s.newGithubClient = func(token string) *GithubClient {
		return NewGithubClient(token, baseURL, githubTransport)
	}

	key, err := config.PrivateKeyBytes()
	if err != nil {
		mlog.Error("Unable to load the GitHub App private key", mlog.Err(err))
	}
	issuer := ghapp.NewIssuer(config.GitHubAppID, key, func(appJWT string) ghapp.TokenCreator {
		return s.newGithubClient(appJWT).Apps
	})
	s.Credentials = ghapp.NewCachedIssuer(issuer)

	httpClient := metrics.NewTransport(http.DefaultTransport, metricsProvider).Client()
	httpClient.Timeout = httpClientTimeout

	if config.GitLabAccessToken != "" {
		if s.GitLab, err = NewGitLabClient(config.GitLabAccessToken, config.GitLabAPIURL, httpClient); err != nil {
			cancel()
			_ = sqlStore.Close()
			return nil, err
		}
	}

	s.Alerts = newAlertSink(config, httpClient)
	s.Throttle = NewAlertThrottle(s.Alerts, config.alertWindow(), nil)

	if s.cron, err = s.setupCron(); err != nil {
		cancel()
		_ = sqlStore.Close()
		return nil, err
	}

	return s, nil
}

// Start starts the scheduler.
func (s *Server) Start() {
	info := version.Full()
	mlog.Info("Starting RepoReply", mlog.String("version", info.Version), mlog.String("hash", info.Hash), mlog.String("build_date", info.Date))
	s.cron.Start()
}

// Stop stops scheduling, cancels the running tasks and waits for them to
// return before closing the store.
func (s *Server) Stop() error {
	mlog.Info("Stopping RepoReply")
	cronCtx := s.cron.Stop()
	s.cancel()

	select {
	case <-cronCtx.Done():
	case <-time.After(shutdownTimeout):
		mlog.Warn("Timed out waiting for running tasks to finish")
	}

	return s.Store.Close()
}
