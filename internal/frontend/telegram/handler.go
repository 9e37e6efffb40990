package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	errorMsg        = "An error occurred while processing your request. Please try again."
	helpMsg         = `Commands:
/images [keyword] - search images
/videos [keyword] - search videos
/image <id> - image details
/video <id> - video details`

	callbackImage = "img:" // callback data prefix for image detail buttons
	callbackVideo = "vid:" // callback data prefix for video detail buttons

	maxButtons     = 5  // detail buttons attached to a search reply
	maxButtonLabel = 30 // max characters in inline keyboard button label
	maxCaptionLen  = 1024
)

// reply is what the bot sends back for one command.
type reply struct {
	text     string
	photoURL string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

// handleMessage processes an incoming text message.
// Channel posts carry no sender and are ignored.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message",
		slog.Int64("user_id", userID),
	)

	if !b.allowed.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.api.Send(typing) //nolint:errcheck // best-effort typing indicator

	b.deliver(chatID, b.respond(ctx, text))
}

// handleCallback processes inline keyboard callback queries from search replies.
// Callbacks without an originating chat message (inline mode) are ignored.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	callback := tgbotapi.NewCallback(cq.ID, "")
	b.api.Send(callback) //nolint:errcheck // best-effort ack

	if !b.allowed.isAllowed(userID) {
		return
	}

	switch {
	case strings.HasPrefix(cq.Data, callbackImage):
		b.deliver(chatID, b.imageDetails(ctx, strings.TrimPrefix(cq.Data, callbackImage)))
	case strings.HasPrefix(cq.Data, callbackVideo):
		b.deliver(chatID, b.videoDetails(ctx, strings.TrimPrefix(cq.Data, callbackVideo)))
	}
}

// respond turns one command line into a reply.
func (b *Bot) respond(ctx context.Context, text string) reply {
	cmd, arg := splitCommand(text)

	switch cmd {
	case "/start", "/help":
		return reply{text: helpMsg}
	case "/image":
		if arg == "" {
			return reply{text: "Usage: /image <id>"}
		}
		return b.imageDetails(ctx, arg)
	case "/video":
		if arg == "" {
			return reply{text: "Usage: /video <id>"}
		}
		return b.videoDetails(ctx, arg)
	case "/images":
		return b.searchImages(ctx, arg)
	case "/videos":
		return b.searchVideos(ctx, arg)
	default:
		return reply{text: helpMsg}
	}
}

func (b *Bot) imageDetails(ctx context.Context, id string) reply {
	img, _, err := b.client.Image.Get(ctx, id)
	if err != nil {
		return b.errorReply("image", id, err)
	}
	return reply{text: FormatImageDetails(img), photoURL: img.Assets["preview"].URL}
}

func (b *Bot) videoDetails(ctx context.Context, id string) reply {
	video, _, err := b.client.Video.Get(ctx, id)
	if err != nil {
		return b.errorReply("video", id, err)
	}
	return reply{text: FormatVideoDetails(video), photoURL: video.Assets["thumb_jpg"].URL}
}

func (b *Bot) searchImages(ctx context.Context, keyword string) reply {
	result, err := b.client.Image.Search(ctx, shutterstock.SearchOptions{Query: keyword})
	if err != nil {
		return b.errorReply("images", keyword, err)
	}

	ids := make([]string, 0, len(result.Data))
	labels := make([]string, 0, len(result.Data))
	for _, img := range result.Data {
		ids = append(ids, img.ID)
		labels = append(labels, img.Description)
	}
	return reply{
		text:     FormatImageResults(result),
		keyboard: buildDetailKeyboard(callbackImage, ids, labels),
	}
}

func (b *Bot) searchVideos(ctx context.Context, keyword string) reply {
	result, err := b.client.Video.Search(ctx, shutterstock.SearchOptions{Query: keyword})
	if err != nil {
		return b.errorReply("videos", keyword, err)
	}

	ids := make([]string, 0, len(result.Data))
	labels := make([]string, 0, len(result.Data))
	for _, v := range result.Data {
		ids = append(ids, v.ID)
		labels = append(labels, v.Description)
	}
	return reply{
		text:     FormatVideoResults(result),
		keyboard: buildDetailKeyboard(callbackVideo, ids, labels),
	}
}

// errorReply maps a lookup failure to a user-facing message.
func (b *Bot) errorReply(kind, arg string, err error) reply {
	if errors.Is(err, shutterstock.ErrNotFound) {
		return reply{text: fmt.Sprintf("No %s found for %q.", kind, arg)}
	}
	b.logger.Error("media API error",
		slog.String("kind", kind),
		slog.String("arg", arg),
		slog.String("error", err.Error()),
	)
	return reply{text: errorMsg}
}

// splitCommand splits "/images red fox" into "/images" and "red fox".
// A "@botname" suffix on the command is dropped.
func splitCommand(text string) (string, string) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

// buildDetailKeyboard builds one button per result that opens its details.
// Returns nil when there is nothing to show.
func buildDetailKeyboard(prefix string, ids, labels []string) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, id := range ids {
		if i >= maxButtons {
			break
		}
		label := id
		if i < len(labels) && labels[i] != "" {
			label = truncate(labels[i], maxButtonLabel)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d. %s", i+1, label), prefix+id),
		))
	}
	if len(rows) == 0 {
		return nil
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}
