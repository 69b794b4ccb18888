package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/felixgrant/punchcard/internal/render"
	"github.com/felixgrant/punchcard/internal/service"
)

// interactionUser resolves the invoking user for guild and DM interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.logger.Error("responding to interaction", "error", err)
	}
}

func (b *Bot) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	b.respond(s, i, errorEmbed(title, description, interactionUser(i)), true)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		ctx := context.Background()
		switch data.Name {
		case cmdClockIn:
			b.handleClockIn(ctx, s, i, data)
		case cmdClockOut:
			b.handleClockOut(ctx, s, i, data)
		case cmdMySummary:
			b.handleMySummary(ctx, s, i)
		case cmdWeeklyReport:
			b.handleWeeklyReport(ctx, s, i, data)
		case cmdAddType:
			b.handleAddType(ctx, s, i, data)
		case cmdListTypes:
			b.handleListTypes(ctx, s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleTypeAutocomplete(context.Background(), s, i)
	}
}

func (b *Bot) handleClockIn(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	user := interactionUser(i)
	opts := optionMap(data)
	typeName := stringOption(opts, "attendance_type")
	note := render.CleanNote(stringOption(opts, "notes"))

	event, category, err := b.attendance.ClockIn(ctx, user.ID, user.Username, typeName, note)
	if err != nil {
		var transition *service.TransitionError
		if errors.As(err, &transition) {
			b.respondError(s, i, "Cannot Clock In", transition.Reason)
			return
		}
		var invalid *service.ValidationError
		if errors.As(err, &invalid) {
			b.respondError(s, i, "Invalid Attendance Type", invalid.Reason)
			return
		}
		b.logger.Error("clock-in failed", "user", user.ID, "error", err)
		b.respondError(s, i, "System Error", "An error occurred while processing your clock-in. Please try again.")
		return
	}

	description := fmt.Sprintf("Successfully clocked in for **%s**", category.Name)
	if event.Note != "" {
		description += fmt.Sprintf("\n📝 Notes: %s", event.Note)
	}
	b.respond(s, i, successEmbed("Clocked In", description, user), false)
	b.logger.Info("user clocked in", "user", user.Username, "type", category.Name)
}

func (b *Bot) handleClockOut(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	user := interactionUser(i)
	note := render.CleanNote(stringOption(optionMap(data), "notes"))

	event, err := b.attendance.ClockOut(ctx, user.ID, user.Username, note)
	if err != nil {
		var transition *service.TransitionError
		if errors.As(err, &transition) {
			b.respondError(s, i, "Cannot Clock Out", transition.Reason)
			return
		}
		b.logger.Error("clock-out failed", "user", user.ID, "error", err)
		b.respondError(s, i, "System Error", "An error occurred while processing your clock-out. Please try again.")
		return
	}

	description := "Successfully clocked out"
	if event.Note != "" {
		description += fmt.Sprintf("\n📝 Notes: %s", event.Note)
	}
	b.respond(s, i, successEmbed("Clocked Out", description, user), false)
	b.logger.Info("user clocked out", "user", user.Username)
}

func (b *Bot) handleMySummary(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	summary, err := b.reports.Summary(ctx, user.ID)
	if err != nil {
		b.logger.Error("summary failed", "user", user.ID, "error", err)
		b.respondError(s, i, "System Error", "An error occurred while retrieving your summary. Please try again.")
		return
	}
	if summary.TotalRecords == 0 {
		embed := infoEmbed("No Attendance Records",
			"You haven't recorded any attendance yet. Use `/clock-in` to get started!", user)
		b.respond(s, i, embed, true)
		return
	}
	b.respond(s, i, buildSummaryEmbed(summary, user), true)
}

func (b *Bot) handleWeeklyReport(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	user := interactionUser(i)
	weeksAgo := int(intOption(optionMap(data), "weeks_ago"))

	report, err := b.reports.Weekly(ctx, user.ID, -weeksAgo)
	if err != nil {
		b.logger.Error("weekly report failed", "user", user.ID, "error", err)
		b.respondError(s, i, "System Error", "An error occurred while building your report. Please try again.")
		return
	}
	b.respond(s, i, buildWeeklyEmbed(report, user), true)
}

func (b *Bot) handleAddType(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	user := interactionUser(i)
	opts := optionMap(data)

	category, err := b.categories.Create(ctx, stringOption(opts, "type_name"), stringOption(opts, "description"))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCategory) {
			b.respondError(s, i, "Duplicate Entry",
				fmt.Sprintf("Attendance type '%s' already exists.", stringOption(opts, "type_name")))
			return
		}
		var invalid *service.ValidationError
		if errors.As(err, &invalid) {
			b.respondError(s, i, "Invalid Input", invalid.Reason)
			return
		}
		b.logger.Error("add type failed", "user", user.ID, "error", err)
		b.respondError(s, i, "System Error", "An error occurred while adding the attendance type. Please try again.")
		return
	}

	description := fmt.Sprintf("Successfully added attendance type **%s**", category.Name)
	if category.Description != "" {
		description += fmt.Sprintf("\n📝 Description: %s", category.Description)
	}
	b.respond(s, i, successEmbed("Attendance Type Added", description, user), false)
	b.logger.Info("attendance type added", "user", user.Username, "type", category.Name)
}

func (b *Bot) handleListTypes(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	categories, err := b.categories.List(ctx, false)
	if err != nil {
		b.logger.Error("list types failed", "user", user.ID, "error", err)
		b.respondError(s, i, "System Error", "An error occurred while retrieving attendance types. Please try again.")
		return
	}
	if len(categories) == 0 {
		b.respond(s, i, infoEmbed("No Attendance Types", "No attendance types found in the system.", user), true)
		return
	}
	b.respond(s, i, buildTypeListEmbed(categories, user), true)
}

func (b *Bot) handleTypeAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	var current string
	for _, opt := range data.Options {
		if opt.Focused {
			current = opt.StringValue()
			break
		}
	}

	categories, err := b.categories.List(ctx, true)
	if err != nil {
		b.logger.Error("autocomplete lookup failed", "error", err)
		categories = nil
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: typeChoices(categories, current),
		},
	})
	if err != nil {
		b.logger.Error("responding to autocomplete", "error", err)
	}
}
