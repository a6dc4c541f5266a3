// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v39/github"

	"github.com/reporeply/reporeply/metrics"
	"github.com/reporeply/reporeply/server/mocks"
	stmock "github.com/reporeply/reporeply/store/mocks"
)

var ctxInterface = reflect.TypeOf((*context.Context)(nil)).Elem()

type testServer struct {
	*Server

	clock time.Time

	apps        *mocks.MockAppsService
	issues      *mocks.MockIssuesService
	limits      *mocks.MockRateLimitService
	notes       *mocks.MockNotesService
	credentials *mocks.MockCredentialIssuer
	sink        *mocks.MockAlertSink
	reminders   *stmock.MockReminderStore
	issueStates *stmock.MockIssueStateStore
	tokens      []string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		clock:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		apps:        mocks.NewMockAppsService(ctrl),
		issues:      mocks.NewMockIssuesService(ctrl),
		limits:      mocks.NewMockRateLimitService(ctrl),
		notes:       mocks.NewMockNotesService(ctrl),
		credentials: mocks.NewMockCredentialIssuer(ctrl),
		sink:        mocks.NewMockAlertSink(ctrl),
		reminders:   stmock.NewMockReminderStore(ctrl),
		issueStates: stmock.NewMockIssueStateStore(ctrl),
	}

	ss := stmock.NewMockStore(ctrl)
	ss.EXPECT().Reminder().Return(ts.reminders).AnyTimes()
	ss.EXPECT().IssueState().Return(ts.issueStates).AnyTimes()

	config := &Config{
		InactivityDays:       30,
		GracePeriodDays:      7,
		ExemptLabel:          "do-not-close",
		AlertThrottleMinutes: 10,
		GitHubTokenReserve:   50,
	}

	ts.Server = &Server{
		Config:      config,
		Store:       ss,
		Metrics:     metrics.NewPrometheusProvider(),
		Credentials: ts.credentials,
		GitLab:      &GitLabClient{Notes: ts.notes},
		Alerts:      ts.sink,
		now:         func() time.Time { return ts.clock },
		ctx:         context.Background(),
	}
	ts.Throttle = NewAlertThrottle(ts.sink, config.alertWindow(), func() time.Time { return ts.clock })

	client := &GithubClient{Apps: ts.apps, Issues: ts.issues, RateLimit: ts.limits}
	ts.newGithubClient = func(token string) *GithubClient {
		ts.tokens = append(ts.tokens, token)
		return client
	}

	return ts
}

func (ts *testServer) githubClient() *GithubClient {
	return ts.newGithubClient("test")
}

// githubError builds the error go-github returns for a non-2xx response.
func githubError(status int) error {
	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    httptest.NewRequest(http.MethodPost, "https://api.github.com/repos/owner/repo/issues/1/comments", nil),
		},
		Message: http.StatusText(status),
	}
}
