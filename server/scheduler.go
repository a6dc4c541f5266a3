// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultCronTaskTimeout = 15 * time.Minute
	sweepCronTaskTimeout   = 6 * time.Hour
)

type cronTask func(ctx context.Context, now time.Time) error

// cronLogger routes the cron library's logs to mlog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	mlog.Debug(msg, kvFields(keysAndValues)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	mlog.Error(msg, append(kvFields(keysAndValues), mlog.Err(err))...)
}

func kvFields(keysAndValues []interface{}) []mlog.Field {
	fields := make([]mlog.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields = append(fields, mlog.Any(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1]))
	}
	return fields
}

// setupCron registers every task. A tick is skipped while the previous run of
// the same task is still in flight; different tasks may run concurrently.
func (s *Server) setupCron() (*cron.Cron, error) {
	loc, err := s.Config.Location()
	if err != nil {
		return nil, err
	}

	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	add := func(name, spec string, timeout time.Duration, task cronTask) error {
		if _, err := c.AddFunc(spec, func() { s.runTask(name, timeout, task) }); err != nil {
			return errors.Wrapf(err, "unable to schedule %s with %q", name, spec)
		}
		return nil
	}

	if err = add("reminders", s.Config.ReminderCronSpec, defaultCronTaskTimeout, s.RunDeliveryCycle); err != nil {
		return nil, err
	}
	if err = add("inactivity_sweep", s.Config.SweepCronSpec, sweepCronTaskTimeout, s.RunInactivitySweep); err != nil {
		return nil, err
	}
	for _, summary := range s.Config.SummaryCronSpecs {
		label := summary.Label
		task := func(ctx context.Context, now time.Time) error {
			return s.SendDailySummary(ctx, label, now)
		}
		if err = add("summary_"+strings.ToLower(label), summary.Spec, defaultCronTaskTimeout, task); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// runTask runs one task under a deadline and records its duration and
// failure.
func (s *Server) runTask(name string, timeout time.Duration, task cronTask) {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	mlog.Debug("Running cron task", mlog.String("task", name))
	start := time.Now()
	err := task(ctx, s.now())
	s.Metrics.ObserveCronTaskDuration(name, time.Since(start).Seconds())

	if err != nil {
		mlog.Error("Cron task failed", mlog.String("task", name), mlog.Err(err))
		s.Metrics.IncreaseCronTaskErrors(name)
	}
}
