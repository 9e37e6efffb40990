package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

// Bot is the Telegram frontend: it answers media lookup commands.
type Bot struct {
	api     *tgbotapi.BotAPI
	client  *shutterstock.Client
	allowed *allowList
	logger  *slog.Logger
}

// New creates a new Telegram Bot.
func New(token string, allowedUserIDs []int64, client *shutterstock.Client, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Bot{
		api:     api,
		client:  client,
		allowed: newAllowList(allowedUserIDs),
		logger:  logger,
	}, nil
}

// Name returns the frontend name.
func (b *Bot) Name() string { return "telegram" }

// Start starts the long-polling loop. It blocks until ctx is canceled.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("telegram bot started",
		slog.String("username", b.api.Self.UserName),
	)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches an incoming Telegram update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// deliver sends a reply as a photo with caption when it has a preview, as text otherwise.
func (b *Bot) deliver(chatID int64, r reply) {
	if r.photoURL != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(r.photoURL))
		photo.Caption = truncate(r.text, maxCaptionLen)
		_, err := b.api.Send(photo)
		if err == nil {
			return
		}
		b.logger.Debug("failed to send preview, falling back to text",
			slog.String("url", r.photoURL),
			slog.String("error", err.Error()),
		)
	}

	msg := tgbotapi.NewMessage(chatID, r.text)
	if r.keyboard != nil {
		msg.ReplyMarkup = r.keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	b.deliver(chatID, reply{text: text})
}
