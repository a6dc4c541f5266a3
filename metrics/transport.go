// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
)

// numericSegment matches path segments that are ids, so issue numbers and
// installation ids do not explode the label cardinality.
var numericSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

type Transport struct {
	Base    http.RoundTripper
	metrics Provider
}

func NewTransport(base http.RoundTripper, metrics Provider) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base, metrics}
}

func (t *Transport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	start := time.Now()
	resp, err = t.Base.RoundTrip(req)
	elapsed := float64(time.Since(start)) / float64(time.Second)
	// rate limit error
	if resp == nil && err != nil {
		return resp, err
	}
	handler := HandlerName(req.URL.Path)
	statusCode := strconv.Itoa(resp.StatusCode)
	t.metrics.ObserveProviderRequestDuration(req.URL.Host, req.Method, handler, statusCode, elapsed)

	if resp.Header.Get("X-From-Cache") == "1" {
		t.metrics.IncreaseProviderCacheHits(req.Method, handler)
	} else {
		t.metrics.IncreaseProviderCacheMisses(req.Method, handler)
	}

	return resp, err
}

func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// HandlerName replaces numeric path segments with a placeholder.
func HandlerName(path string) string {
	for numericSegment.MatchString(path) {
		path = numericSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}
