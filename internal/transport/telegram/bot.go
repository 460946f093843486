package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/service/assistant"
	"github.com/sandevgo/trackmate/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Assistant
	sender    *sender
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	assistant *assistant.Assistant,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: assistant,
		sender:    newSender(b),
		ownerID:   cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	turn, err := b.assistant.Run(ctx, sessionID, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("assistant run failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	if ticketCard := renderTicketCard(turn.Params); ticketCard != "" {
		if err := b.sender.sendMarkdown(ctx, c.Chat(), ticketCard, true); err != nil {
			logger.Error().Err(err).Msg("failed to send ticket card")
		}
	}

	if strings.TrimSpace(turn.Content) == "" {
		return nil
	}
	return b.sender.sendMarkdown(ctx, c.Chat(), turn.Content, false)
}

// renderTicketCard formats the created-ticket side channel, if present.
func renderTicketCard(params map[string]string) string {
	if params == nil || params["task_id"] == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎫 **%s**\n", params["task_name"]))
	if desc := params["description"]; desc != "" {
		sb.WriteString(desc + "\n")
	}
	if email := params["assignee_email"]; email != "" {
		sb.WriteString(fmt.Sprintf("Assignee: `%s`\n", email))
	}
	sb.WriteString(fmt.Sprintf("ID: `%s`", params["task_id"]))
	return sb.String()
}
