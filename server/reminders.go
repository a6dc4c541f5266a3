// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"

	"github.com/reporeply/reporeply/internal/delivery"
	"github.com/reporeply/reporeply/internal/ghapp"
	"github.com/reporeply/reporeply/model"
)

const (
	reminderComment = "Reminder notification.\n\n@%s, you requested to be notified about this issue."

	maxCredentialAttempts = 2
)

// RunDeliveryCycle delivers every unsent reminder due at now. Each one gets
// exactly one attempt; failures are either left for the next cycle or
// quarantined. The reminder list is written back only when something
// changed.
func (s *Server) RunDeliveryCycle(ctx context.Context, now time.Time) error {
	reminders, err := s.Store.Reminder().List()
	if err != nil {
		return errors.Wrap(err, "unable to load reminders")
	}

	var changed bool
	var delivered, failed, quarantined int
	var configErr error
	for _, r := range reminders {
		if r.Sent {
			continue
		}

		if missing := r.MissingFields(); len(missing) > 0 {
			reason := "malformed: missing " + strings.Join(missing, ", ")
			mlog.Warn("Quarantining malformed reminder", mlog.String("reminder_id", r.ID), mlog.String("reason", reason))
			r.Quarantine(now, reason)
			s.Metrics.IncreaseRemindersQuarantined("malformed")
			quarantined++
			changed = true
			continue
		}

		if !r.IsDue(now) {
			continue
		}
		// Without usable app credentials no GitHub reminder can go out.
		if configErr != nil && r.GetProvider() == model.ProviderGitHub {
			failed++
			continue
		}

		a := s.deliverReminder(ctx, r)
		if errors.Is(a.Error, ghapp.ErrAuthConfig) {
			configErr = a.Error
		}
		switch {
		case a.Delivered():
			r.MarkSent(now)
			s.Metrics.IncreaseRemindersDelivered(r.GetProvider())
			delivered++
			changed = true
		case a.ShouldQuarantine():
			mlog.Warn("Quarantining undeliverable reminder", mlog.String("reminder_id", r.ID), mlog.String("repository", r.RepositoryID), mlog.Int("issue", r.IssueNumber), mlog.Err(a.Error))
			r.Quarantine(now, a.Class.String()+": "+a.Error.Error())
			s.Metrics.IncreaseReminderFailures(r.GetProvider(), a.Class.String())
			s.Metrics.IncreaseRemindersQuarantined(a.Class.String())
			quarantined++
			changed = true
		default:
			mlog.Warn("Reminder delivery failed, will retry", mlog.String("reminder_id", r.ID), mlog.String("repository", r.RepositoryID), mlog.Int("issue", r.IssueNumber), mlog.Err(a.Error))
			s.Metrics.IncreaseReminderFailures(r.GetProvider(), a.Class.String())
			failed++
		}

		if a.ReportError {
			s.alertDeliveryFailure(ctx, r, a.Error)
		}
	}

	if changed {
		if err = s.Store.Reminder().SaveAll(reminders); err != nil {
			return errors.Wrap(err, "unable to save reminders")
		}
	}

	mlog.Info("Reminder delivery cycle finished",
		mlog.Int("delivered", delivered),
		mlog.Int("failed", failed),
		mlog.Int("quarantined", quarantined),
	)
	return nil
}

func (s *Server) deliverReminder(ctx context.Context, r *model.Reminder) *delivery.Attempt {
	a := delivery.New(r.ID)
	body := fmt.Sprintf(reminderComment, r.RequestingUser)

	var err error
	switch provider := r.GetProvider(); provider {
	case model.ProviderGitHub:
		err = s.postGitHubComment(ctx, r, body)
	case model.ProviderGitLab:
		err = s.postGitLabNote(ctx, r, body)
	default:
		err = errors.Wrapf(errUnsupportedProvider, "provider %q", provider)
	}

	if err != nil {
		return a.WithError(err).WithClass(classifyError(err)).ShouldReportError()
	}
	return a
}

// postGitHubComment posts body on the reminder's issue. A 401 usually means
// the cached installation token went stale, so the comment is retried once
// with a freshly minted one before the failure is reported.
func (s *Server) postGitHubComment(ctx context.Context, r *model.Reminder, body string) error {
	owner, name, err := model.SplitRepoID(r.RepositoryID)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err = s.createReminderComment(ctx, r.InstallationID, owner, name, r.IssueNumber, body)
		if err == nil || statusCode(err) != http.StatusUnauthorized || isTokenExchangeError(err) {
			return err
		}

		s.Credentials.Invalidate(r.InstallationID)
		if attempt == maxCredentialAttempts {
			return err
		}
		mlog.Debug("Installation token rejected, retrying with a new one", mlog.Int64("installation_id", r.InstallationID))
	}
}

// isTokenExchangeError reports whether err comes from minting the token
// rather than from the comment call.
func isTokenExchangeError(err error) bool {
	var authErr *ghapp.ProviderAuthError
	return errors.As(err, &authErr)
}

func (s *Server) createReminderComment(ctx context.Context, installationID int64, owner, name string, number int, body string) error {
	client, err := s.installationClient(ctx, installationID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	if _, _, err = client.Issues.CreateComment(ctx, owner, name, number, &github.IssueComment{Body: github.String(body)}); err != nil {
		return errors.Wrapf(err, "unable to comment on %s/%s#%d", owner, name, number)
	}
	return nil
}

func (s *Server) postGitLabNote(ctx context.Context, r *model.Reminder, body string) error {
	if s.GitLab == nil {
		return errGitLabNotConfigured
	}

	owner, name, err := model.SplitRepoID(r.RepositoryID)
	if err != nil {
		return err
	}
	project := owner + "/" + name

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	_, _, err = s.GitLab.Notes.CreateIssueNote(project, r.IssueNumber, &gitlab.CreateIssueNoteOptions{Body: gitlab.String(body)}, gitlab.WithContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "unable to add note to %s#%d", project, r.IssueNumber)
	}
	return nil
}

// installationClient mints, or reuses, an installation token and returns a
// client authenticated with it.
func (s *Server) installationClient(ctx context.Context, installationID int64) (*GithubClient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	token, err := s.Credentials.MintInstallationCredential(ctx, installationID)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to get credentials for installation %d", installationID)
	}
	return s.newGithubClient(token), nil
}
