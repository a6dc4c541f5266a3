// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"sync"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

// AlertThrottle lets at most one alert through per window. Alerts arriving
// inside the window are dropped, not queued.
type AlertThrottle struct {
	sink   AlertSink
	window time.Duration
	now    func() time.Time

	mu          sync.Mutex
	lastAlertAt time.Time
}

// NewAlertThrottle returns a throttle in front of sink. A nil clock uses
// time.Now.
func NewAlertThrottle(sink AlertSink, window time.Duration, clock func() time.Time) *AlertThrottle {
	if clock == nil {
		clock = time.Now
	}
	return &AlertThrottle{sink: sink, window: window, now: clock}
}

// TryAlert dispatches message when more than the window has passed since
// the last dispatched alert, and reports whether it did.
func (t *AlertThrottle) TryAlert(ctx context.Context, message string) bool {
	t.mu.Lock()
	now := t.now()
	if !t.lastAlertAt.IsZero() && now.Sub(t.lastAlertAt) <= t.window {
		t.mu.Unlock()
		mlog.Debug("Alert dropped by throttle", mlog.String("last_alert_at", t.lastAlertAt.Format(time.RFC3339)))
		return false
	}
	t.lastAlertAt = now
	t.mu.Unlock()

	t.sink.Notify(ctx, message)
	return true
}
