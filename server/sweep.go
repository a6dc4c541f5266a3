// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const installationsPerPage = 100

// RunInactivitySweep scans every repository of every installation of the app.
// A failing installation or repository is logged and skipped.
func (s *Server) RunInactivitySweep(ctx context.Context, now time.Time) error {
	appJWT, err := s.Credentials.AppJWT()
	if err != nil {
		s.alertConfigError(ctx, "inactivity sweep", err)
		return errors.Wrap(err, "unable to sign app JWT")
	}

	installations, err := listInstallations(ctx, s.newGithubClient(appJWT))
	if err != nil {
		return err
	}
	mlog.Info("Starting inactivity sweep", mlog.Int("installations", len(installations)))

	for _, installation := range installations {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = s.sweepInstallation(ctx, installation.GetID(), now); err != nil {
			mlog.Error("Unable to sweep installation", mlog.Int64("installation_id", installation.GetID()), mlog.Err(err))
		}
	}

	return nil
}

func (s *Server) sweepInstallation(ctx context.Context, installationID int64, now time.Time) error {
	client, err := s.installationClient(ctx, installationID)
	if err != nil {
		return err
	}

	repos, err := listInstallationRepos(ctx, client)
	if err != nil {
		return err
	}

	for _, repo := range repos {
		if err = ctx.Err(); err != nil {
			return err
		}
		if repo.GetArchived() || !repo.GetHasIssues() {
			continue
		}
		if s.checkLimitRateAndAbortRequest(ctx, client, installationID) {
			return nil
		}

		owner := repo.GetOwner().GetLogin()
		if err = s.ScanRepository(ctx, client, owner, repo.GetName(), now); err != nil {
			mlog.Error("Unable to scan repository",
				mlog.Int64("installation_id", installationID),
				mlog.String("repo_owner", owner),
				mlog.String("repo_name", repo.GetName()),
				mlog.Err(err),
			)
		}
	}

	return nil
}

func listInstallations(ctx context.Context, client *GithubClient) ([]*github.Installation, error) {
	var all []*github.Installation
	opts := &github.ListOptions{PerPage: installationsPerPage}
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
		installations, resp, err := client.Apps.ListInstallations(reqCtx, opts)
		cancel()
		if err != nil {
			return nil, errors.Wrap(err, "unable to list installations")
		}
		all = append(all, installations...)
		if resp == nil || resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

func listInstallationRepos(ctx context.Context, client *GithubClient) ([]*github.Repository, error) {
	var all []*github.Repository
	opts := &github.ListOptions{PerPage: installationsPerPage}
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
		list, resp, err := client.Apps.ListRepos(reqCtx, opts)
		cancel()
		if err != nil {
			return nil, errors.Wrap(err, "unable to list installation repositories")
		}
		if list != nil {
			all = append(all, list.Repositories...)
		}
		if resp == nil || resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}
