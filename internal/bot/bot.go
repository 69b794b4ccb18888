// Package bot wires the attendance services to Discord slash commands.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/felixgrant/punchcard/internal/service"
)

type Bot struct {
	session    *discordgo.Session
	attendance service.AttendanceService
	categories service.CategoryService
	reports    service.ReportService
	logger     *slog.Logger
	guildID    string
}

// New builds a bot around an authenticated session. Commands are not
// registered until Run.
func New(token, guildID string, attendance service.AttendanceService, categories service.CategoryService, reports service.ReportService, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session:    session,
		attendance: attendance,
		categories: categories,
		reports:    reports,
		logger:     logger,
		guildID:    guildID,
	}
	session.AddHandler(b.handleInteraction)
	session.AddHandler(b.onReady)
	return b, nil
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	b.logger.Info("bot logged in", "user", s.State.User.String(), "id", s.State.User.ID)
	if err := s.UpdateWatchStatus(0, "for /clock-in and /clock-out"); err != nil {
		b.logger.Warn("setting presence", "error", err)
	}
}

// Run opens the gateway connection, registers the slash commands, and
// blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway connection: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.logger.Error("closing session", "error", err)
		}
	}()

	// Guild-scoped registration propagates instantly, which is what you
	// want during development; global registration can take up to an hour.
	appID := b.session.State.User.ID
	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, b.guildID, commandDefinitions())
	if err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	b.logger.Info("commands registered", "count", len(registered), "guild", b.guildID)

	<-ctx.Done()
	b.logger.Info("shutting down bot")
	return nil
}
