// Package notifier delivers operator alerts for faucet events that need a
// human: failed deployments, a draining faucet balance. Alerts are advisory
// and never fail or block the pipeline that raised them.
package notifier

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-telegram/bot"

	"github.com/core-coin/fontis/pkg/logger"
)

type Telegram struct {
	logger *logger.Logger

	bot    *bot.Bot
	chatID string
}

func NewTelegram(token, chatID string, logger *logger.Logger) (*Telegram, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Telegram{logger: logger, bot: b, chatID: chatID}, nil
}

// Alert sends the message to the operator chat. Delivery runs detached from
// the caller and recovers its own panics.
func (t *Telegram) Alert(message string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.logger.Error("Alert delivery panicked ",
					"panic ", r,
					"stack ", string(debug.Stack()))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		params := &bot.SendMessageParams{
			ChatID: t.chatID,
			Text:   message,
		}
		if _, err := t.bot.SendMessage(ctx, params); err != nil {
			t.logger.Error("Failed to send alert: ", err)
		}
	}()
}
