// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/reporeply/reporeply/server/mocks"
)

func TestAlertThrottle(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, tc := range map[string]struct {
		offsets  []time.Duration
		expected []bool
	}{
		"second failure inside the window is dropped": {
			offsets:  []time.Duration{0, 5 * time.Minute},
			expected: []bool{true, false},
		},
		"second failure after the window is sent": {
			offsets:  []time.Duration{0, 11 * time.Minute},
			expected: []bool{true, true},
		},
		"exactly the window is still dropped": {
			offsets:  []time.Duration{0, 10 * time.Minute},
			expected: []bool{true, false},
		},
		"dropped alerts do not extend the window": {
			offsets:  []time.Duration{0, 9 * time.Minute, 10*time.Minute + time.Second},
			expected: []bool{true, false, true},
		},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sent := 0
			for _, e := range tc.expected {
				if e {
					sent++
				}
			}
			sink := mocks.NewMockAlertSink(ctrl)
			sink.EXPECT().Notify(gomock.Any(), "boom").Times(sent)

			now := start
			throttle := NewAlertThrottle(sink, 10*time.Minute, func() time.Time { return now })
			for i, offset := range tc.offsets {
				now = start.Add(offset)
				assert.Equal(t, tc.expected[i], throttle.TryAlert(ctx, "boom"), "alert %d", i)
			}
		})
	}

	t.Run("concurrent failures send one alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sink := mocks.NewMockAlertSink(ctrl)
		sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1)
		throttle := NewAlertThrottle(sink, 10*time.Minute, func() time.Time { return start })

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				throttle.TryAlert(ctx, "boom")
			}()
		}
		wg.Wait()
	})
}
