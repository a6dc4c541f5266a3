// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"

	"github.com/reporeply/reporeply/model"
)

const (
	// inactivityMarker identifies the bot's warning comment. It is only
	// consulted for issues with no persisted state.
	inactivityMarker = "inactive for"
	warningComment   = "This issue has been inactive for %d days.\n\nIf no further activity occurs, it will be automatically closed in %d days."
	closingComment   = "Closing this issue due to prolonged inactivity.\n\nIf this is still relevant, please reopen with updated information."

	// Posting the warning bumps the issue's updated_at. Updates within this
	// tolerance of the warning are not treated as new activity.
	warningActivityTolerance = 5 * time.Minute

	issuesPerPage = 100
)

// daysSince returns the number of whole days elapsed between t and now.
func daysSince(t, now time.Time) int {
	if t.After(now) {
		return 0
	}
	return int(now.Sub(t) / (24 * time.Hour))
}

// ScanRepository applies the inactivity lifecycle to every open issue of a
// repository. A failing issue is reported and skipped; only a failure to list
// the issues aborts the scan.
func (s *Server) ScanRepository(ctx context.Context, client *GithubClient, owner, repo string, now time.Time) error {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: issuesPerPage},
	}

	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
		issues, resp, err := client.Issues.ListByRepo(reqCtx, owner, repo, opts)
		cancel()
		if err != nil {
			return errors.Wrapf(err, "unable to list issues of %s/%s", owner, repo)
		}

		for _, issue := range issues {
			if err = ctx.Err(); err != nil {
				return err
			}
			if issue.IsPullRequest() {
				continue
			}

			if err = s.checkIssueInactivity(ctx, client, owner, repo, issue, now); err != nil {
				mlog.Error("Unable to apply inactivity lifecycle",
					mlog.String("repo_owner", owner),
					mlog.String("repo_name", repo),
					mlog.Int("issue", issue.GetNumber()),
					mlog.Err(err),
				)
				s.Metrics.IncreaseInactivityActions("error")
				s.alertInactivityFailure(ctx, owner, repo, issue.GetNumber(), err)
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
	}
}

func (s *Server) checkIssueInactivity(ctx context.Context, client *GithubClient, owner, repo string, issue *github.Issue, now time.Time) error {
	number := issue.GetNumber()
	labels := labelNames(issue.Labels)
	if labels.Contains(s.Config.ExemptLabel) {
		return nil
	}

	updatedAt := issue.GetUpdatedAt()
	state, err := s.Store.IssueState().Get(owner, repo, number)
	if err != nil {
		return errors.Wrap(err, "unable to get issue state")
	}

	persisted := state != nil
	if !persisted {
		// Recently updated issues need no action whatever their comments say.
		if daysSince(updatedAt, now) < s.Config.InactivityDays {
			return nil
		}
		state, err = s.stateFromComments(ctx, client, owner, repo, number)
		if err != nil {
			return err
		}
	}

	switch state.GetState() {
	case model.InactivityWarned:
		if persisted && (updatedAt.After(state.GetWarnedAt().Add(warningActivityTolerance)) || !state.Labels.Equal(labels)) {
			mlog.Debug("Activity after the inactivity warning",
				mlog.String("repo_owner", owner),
				mlog.String("repo_name", repo),
				mlog.Int("issue", number),
				mlog.Any("labels_at_warning", state.Labels),
				mlog.Any("labels", labels),
			)
			state = resetIssueState(state)
			state.Labels = labels
			return s.saveIssueState(state, now)
		}
		state.Labels = labels
		return s.closeIfExpired(ctx, client, issue, state, now)
	case model.InactivityClosed:
		// We closed it before and somebody reopened it.
		state = resetIssueState(state)
		state.Labels = labels
		if daysSince(updatedAt, now) < s.Config.InactivityDays {
			return s.saveIssueState(state, now)
		}
	}

	state.Labels = labels
	if daysSince(updatedAt, now) < s.Config.InactivityDays {
		return nil
	}
	return s.warnInactiveIssue(ctx, client, issue, state, now)
}

// stateFromComments derives the state of an issue that has no persisted
// record from the bot's latest warning comment.
func (s *Server) stateFromComments(ctx context.Context, client *GithubClient, owner, repo string, number int) (*model.IssueState, error) {
	state := &model.IssueState{
		RepoOwner: owner,
		RepoName:  repo,
		Number:    number,
		State:     model.InactivityActive,
	}

	opts := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: issuesPerPage}}
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
		comments, resp, err := client.Issues.ListComments(reqCtx, owner, repo, number, opts)
		cancel()
		if err != nil {
			return nil, errors.Wrap(err, "unable to list issue comments")
		}

		for _, comment := range comments {
			if comment.GetUser().GetType() != "Bot" || !strings.Contains(comment.GetBody(), inactivityMarker) {
				continue
			}
			warnedAt := comment.GetCreatedAt()
			state.State = model.InactivityWarned
			state.WarnedAt = &warnedAt
		}

		if resp == nil || resp.NextPage == 0 {
			return state, nil
		}
		opts.Page = resp.NextPage
	}
}

func (s *Server) warnInactiveIssue(ctx context.Context, client *GithubClient, issue *github.Issue, state *model.IssueState, now time.Time) error {
	body := fmt.Sprintf(warningComment, s.Config.InactivityDays, s.Config.GracePeriodDays)
	comment, err := s.createComment(ctx, client, state.RepoOwner, state.RepoName, state.Number, body)
	if err != nil {
		return errors.Wrap(err, "unable to post inactivity warning")
	}

	// The comment sets the issue's updated_at to its own creation time, which
	// may be well after the sweep started.
	warnedAt := comment.GetCreatedAt()
	if warnedAt.IsZero() {
		warnedAt = s.now()
	}
	lastActivity := issue.GetUpdatedAt()
	state.State = model.InactivityWarned
	state.LastActivityAt = &lastActivity
	state.WarnedAt = &warnedAt
	state.ClosedAt = nil

	mlog.Info("Warned inactive issue", mlog.String("repo_owner", state.RepoOwner), mlog.String("repo_name", state.RepoName), mlog.Int("issue", state.Number), mlog.Any("labels", state.Labels))
	s.Metrics.IncreaseInactivityActions("warned")
	return s.saveIssueState(state, now)
}

// closeIfExpired closes a warned issue once the grace period has passed both
// since its last activity and since the warning.
func (s *Server) closeIfExpired(ctx context.Context, client *GithubClient, issue *github.Issue, state *model.IssueState, now time.Time) error {
	lastActivity := state.GetLastActivityAt()
	if lastActivity.IsZero() {
		lastActivity = issue.GetUpdatedAt()
	}
	if daysSince(lastActivity, now) < s.Config.InactivityDays+s.Config.GracePeriodDays {
		return nil
	}
	// The warning is posted up to a sweep's length after the sweep started,
	// so it is measured against the start of the sweep that posted it.
	if state.WarnedAt != nil && daysSince(state.WarnedAt.Add(-sweepCronTaskTimeout), now) < s.Config.GracePeriodDays {
		return nil
	}

	if _, err := s.createComment(ctx, client, state.RepoOwner, state.RepoName, state.Number, closingComment); err != nil {
		return errors.Wrap(err, "unable to post closing comment")
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()
	if _, _, err := client.Issues.Edit(reqCtx, state.RepoOwner, state.RepoName, state.Number, &github.IssueRequest{State: github.String("closed")}); err != nil {
		return errors.Wrap(err, "unable to close issue")
	}

	closedAt := now
	state.State = model.InactivityClosed
	state.ClosedAt = &closedAt

	mlog.Info("Closed inactive issue", mlog.String("repo_owner", state.RepoOwner), mlog.String("repo_name", state.RepoName), mlog.Int("issue", state.Number), mlog.Any("labels", state.Labels))
	s.Metrics.IncreaseInactivityActions("closed")
	return s.saveIssueState(state, now)
}

func (s *Server) createComment(ctx context.Context, client *GithubClient, owner, repo string, number int, body string) (*github.IssueComment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	comment, _, err := client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{Body: github.String(body)})
	return comment, err
}

func (s *Server) saveIssueState(state *model.IssueState, now time.Time) error {
	state.UpdatedAt = now
	if _, err := s.Store.IssueState().Save(state); err != nil {
		return errors.Wrap(err, "unable to save issue state")
	}
	return nil
}

func resetIssueState(state *model.IssueState) *model.IssueState {
	state.State = model.InactivityActive
	state.LastActivityAt = nil
	state.WarnedAt = nil
	state.ClosedAt = nil
	return state
}

func labelNames(labels []*github.Label) model.StringArray {
	names := make(model.StringArray, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.GetName())
	}
	return names
}
