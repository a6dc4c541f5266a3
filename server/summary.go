// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/reporeply/reporeply/version"
)

const summaryMessage = "RepoReply Daily Summary (%s)\n\nTotal reminders: %d\nPending reminders: %d\nSent reminders: %d\nQuarantined reminders: %d\n\nVersion: %s\nTimestamp: %s"

// SendDailySummary reports reminder counts to the alert sink. Summaries are
// not failure alerts and bypass the throttle.
func (s *Server) SendDailySummary(ctx context.Context, label string, now time.Time) error {
	reminders, err := s.Store.Reminder().List()
	if err != nil {
		return errors.Wrap(err, "unable to load reminders")
	}

	var pending, sent, quarantined int
	for _, r := range reminders {
		switch {
		case r.IsQuarantined():
			quarantined++
		case r.Sent:
			sent++
		default:
			pending++
		}
	}

	s.Alerts.Notify(ctx, fmt.Sprintf(summaryMessage,
		label, len(reminders), pending, sent, quarantined,
		version.Full().Version, now.Format("2006-01-02 15:04:05 MST"),
	))
	s.Metrics.IncreaseAlerts("summary")
	return nil
}
