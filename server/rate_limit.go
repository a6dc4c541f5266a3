// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitTransport waits on a limiter shared by every GitHub client of the
// process before passing the request to the base transport.
type RateLimitTransport struct {
	limiter *rate.Limiter
	base    http.RoundTripper
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewRateLimitTransport limits the requests going through base. A nil limiter
// lets everything through.
func NewRateLimitTransport(limiter *rate.Limiter, base http.RoundTripper) *RateLimitTransport {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &RateLimitTransport{limiter: limiter, base: base}
}
