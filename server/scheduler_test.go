// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporeply/reporeply/model"
)

func TestSetupCron(t *testing.T) {
	t.Run("registers every task", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.Config.ReminderCronSpec = "@every 2m"
		ts.Config.SweepCronSpec = "0 1 * * *"
		ts.Config.SummaryCronSpecs = []SummarySchedule{{Label: "Morning", Spec: "0 6 * * *"}, {Label: "Night", Spec: "0 23 * * *"}}
		ts.Config.Timezone = "Europe/Berlin"

		c, err := ts.setupCron()
		require.NoError(t, err)
		assert.Len(t, c.Entries(), 4)
		assert.Equal(t, "Europe/Berlin", c.Location().String())
	})

	t.Run("invalid spec", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.Config.ReminderCronSpec = "sometimes"
		ts.Config.SweepCronSpec = "0 1 * * *"

		_, err := ts.setupCron()
		require.Error(t, err)
	})
}

func TestRunTask(t *testing.T) {
	t.Run("passes the clock and a deadline", func(t *testing.T) {
		ts := setupTestServer(t)

		var gotNow time.Time
		var hasDeadline bool
		ts.runTask("test", time.Minute, func(ctx context.Context, now time.Time) error {
			gotNow = now
			_, hasDeadline = ctx.Deadline()
			return nil
		})
		assert.Equal(t, ts.clock, gotNow)
		assert.True(t, hasDeadline)
	})

	t.Run("failures do not panic", func(t *testing.T) {
		ts := setupTestServer(t)
		assert.NotPanics(t, func() {
			ts.runTask("test", time.Minute, func(context.Context, time.Time) error {
				return errors.New("boom")
			})
		})
	})

	t.Run("cancelled server context reaches the task", func(t *testing.T) {
		ts := setupTestServer(t)
		ctx, cancel := context.WithCancel(context.Background())
		ts.ctx = ctx
		cancel()

		ts.runTask("test", time.Minute, func(ctx context.Context, _ time.Time) error {
			assert.Error(t, ctx.Err())
			return ctx.Err()
		})
	})

	t.Run("overlapping ticks are skipped", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.Config.ReminderCronSpec = "@every 1s"
		ts.Config.SweepCronSpec = "0 1 * * *"

		started := make(chan struct{}, 10)
		release := make(chan struct{})
		ts.reminders.EXPECT().List().DoAndReturn(func() ([]*model.Reminder, error) {
			started <- struct{}{}
			<-release
			return nil, nil
		}).MinTimes(1)

		c, err := ts.setupCron()
		require.NoError(t, err)
		c.Start()

		<-started
		// Two more ticks fire while the first run is blocked.
		time.Sleep(2500 * time.Millisecond)
		ctx := c.Stop()
		close(release)
		<-ctx.Done()

		assert.Len(t, started, 0, "no second run may start while the first is in flight")
	})
}

func TestKVFields(t *testing.T) {
	fields := kvFields([]interface{}{"entry", 1, "next", "soon", "dangling"})
	require.Len(t, fields, 2)
	assert.Equal(t, "entry", fields[0].Key)
	assert.Equal(t, "next", fields[1].Key)
}
