// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const webhookUsername = "RepoReply"

type Payload struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// MattermostSink posts alerts to a Mattermost incoming webhook.
type MattermostSink struct {
	url    string
	footer string
	client *http.Client
}

func NewMattermostSink(url, footer string, client *http.Client) *MattermostSink {
	if client == nil {
		client = http.DefaultClient
	}
	return &MattermostSink{url: url, footer: footer, client: client}
}

func (m *MattermostSink) Notify(ctx context.Context, text string) {
	if m.url == "" {
		mlog.Warn("No Mattermost webhook URL set: unable to send message")
		return
	}

	mlog.Debug("Sending Mattermost message", mlog.String("message", text))
	if m.footer != "" {
		text += "\n---\n" + m.footer
	}

	if err := m.sendToWebhook(ctx, &Payload{Username: webhookUsername, Text: text}); err != nil {
		mlog.Error("Unable to post to Mattermost webhook", mlog.Err(err))
	}
}

func (m *MattermostSink) sendToWebhook(ctx context.Context, payload *Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	r, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(ioutil.Discard, r.Body)
		r.Body.Close()
	}()

	if r.StatusCode != http.StatusOK {
		return errors.Errorf("received non-200 status code posting to mattermost: %v", r.StatusCode)
	}

	return nil
}
