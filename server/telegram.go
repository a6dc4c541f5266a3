// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"net/http"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	tele "gopkg.in/telebot.v4"
)

// TelegramSink sends alerts to one Telegram chat through the bot API. The
// bot never polls for updates; it only sends.
type TelegramSink struct {
	bot    *tele.Bot
	chatID int64
}

// NewTelegramSink creates the sink without contacting Telegram. An empty
// apiURL uses the public Bot API.
func NewTelegramSink(token string, chatID int64, apiURL string, client *http.Client) (*TelegramSink, error) {
	bot, err := tele.NewBot(tele.Settings{
		URL:     apiURL,
		Token:   token,
		Client:  client,
		Offline: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to create telegram bot")
	}
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (t *TelegramSink) Notify(_ context.Context, text string) {
	if t.bot == nil || t.chatID == 0 {
		mlog.Warn("Telegram alert sink is not configured: unable to send message")
		return
	}

	if _, err := t.bot.Send(&tele.Chat{ID: t.chatID}, text); err != nil {
		mlog.Error("Unable to send Telegram alert", mlog.Int64("chat_id", t.chatID), mlog.Err(err))
	}
}
