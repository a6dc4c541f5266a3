// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

// checkLimitRateAndAbortRequest reports whether the installation behind
// client is down to its token reserve. Failing to read the limit does not
// abort: the requests themselves will surface a rate limit error.
func (s *Server) checkLimitRateAndAbortRequest(ctx context.Context, client *GithubClient, installationID int64) bool {
	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	rate, _, err := client.RateLimit.RateLimits(ctx)
	if err != nil {
		mlog.Error("Error getting the rate limit", mlog.Int64("installation_id", installationID), mlog.Err(err))
		return false
	}

	core := rate.GetCore()
	if core == nil {
		return false
	}
	mlog.Debug("Current rate limit", mlog.Int64("installation_id", installationID), mlog.Int("remaining", core.Remaining), mlog.Int("limit", core.Limit))

	if core.Remaining <= s.Config.GitHubTokenReserve {
		mlog.Warn("--Rate Limiting-- Tokens reached minimum reserve, aborting installation",
			mlog.Int64("installation_id", installationID),
			mlog.Int("reserve", s.Config.GitHubTokenReserve),
			mlog.String("reset", core.Reset.Time.Format(time.RFC3339)),
		)
		return true
	}
	return false
}
