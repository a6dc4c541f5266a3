// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/reporeply/reporeply/model"
)

// AlertSink delivers operator notifications. Implementations log their own
// failures and never return them.
type AlertSink interface {
	Notify(ctx context.Context, text string)
}

// MultiSink fans an alert out to every sink.
type MultiSink []AlertSink

func (m MultiSink) Notify(ctx context.Context, text string) {
	for _, sink := range m {
		sink.Notify(ctx, text)
	}
}

// LogSink only writes the alert to the log. It is used when no other sink
// is configured.
type LogSink struct{}

func (LogSink) Notify(_ context.Context, text string) {
	mlog.Warn("Alert", mlog.String("text", text))
}

func newAlertSink(config *Config, httpClient *http.Client) AlertSink {
	var sinks MultiSink
	if config.MattermostWebhookURL != "" {
		sinks = append(sinks, NewMattermostSink(config.MattermostWebhookURL, config.MattermostWebhookFooter, httpClient))
	}
	if config.TelegramBotToken != "" && config.TelegramChatID != 0 {
		tg, err := NewTelegramSink(config.TelegramBotToken, config.TelegramChatID, config.TelegramAPIURL, httpClient)
		if err != nil {
			mlog.Error("Unable to create the Telegram alert sink", mlog.Err(err))
		} else {
			sinks = append(sinks, tg)
		}
	}
	if len(sinks) == 0 {
		mlog.Warn("No alert sink configured, alerts are only logged")
		return LogSink{}
	}
	return sinks
}

// alert sends message through the throttle and counts the outcome.
func (s *Server) alert(ctx context.Context, message string) bool {
	sent := s.Throttle.TryAlert(ctx, message)
	if sent {
		s.Metrics.IncreaseAlerts("sent")
	} else {
		s.Metrics.IncreaseAlerts("dropped")
	}
	return sent
}

func (s *Server) alertDeliveryFailure(ctx context.Context, r *model.Reminder, err error) {
	msg := fmt.Sprintf("RepoReply Alert\n\nReminder delivery failed.\nRepository: %s\nIssue: #%d\nUser: @%s\nError: %v",
		r.RepositoryID, r.IssueNumber, r.RequestingUser, err)
	msg += "\nURL: " + model.IssueURL(r.RepositoryID, r.IssueNumber, r.GetProvider())
	s.alert(ctx, msg)
}

func (s *Server) alertInactivityFailure(ctx context.Context, owner, repo string, number int, err error) {
	s.alert(ctx, fmt.Sprintf("RepoReply Alert\n\nInactivity scan failed.\nRepository: %s/%s\nIssue: #%d\nError: %v",
		owner, repo, number, err))
}

func (s *Server) alertConfigError(ctx context.Context, task string, err error) {
	s.alert(ctx, fmt.Sprintf("RepoReply Alert\n\nConfiguration error, %s skipped.\nError: %v", task, err))
}
