package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers reminders to a single chat via a Telegram bot.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSender returns nil when the bot token is not configured, in
// which case the caller should fall back to another sender.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSender) Send(ctx context.Context, title, body string) error {
	msg := tgbotapi.NewMessage(s.chatID, title+"\n"+body)
	_, err := s.bot.Send(msg)
	return err
}
