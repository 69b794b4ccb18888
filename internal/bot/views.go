package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/felixgrant/punchcard/internal/domain"
	"github.com/felixgrant/punchcard/internal/render"
	"github.com/felixgrant/punchcard/internal/service"
)

// typeChoices filters the category catalog against the partial input the
// user has typed so far, capped at Discord's choice limit.
func typeChoices(categories []*domain.Category, current string) []*discordgo.ApplicationCommandOptionChoice {
	current = strings.ToLower(current)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxAutocompleteChoices)
	for _, cat := range categories {
		if current != "" && !strings.Contains(strings.ToLower(cat.Name), current) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  cat.Name,
			Value: cat.Name,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	return choices
}

func buildSummaryEmbed(summary *service.UserSummary, author *discordgo.User) *discordgo.MessageEmbed {
	e := baseEmbed("📊 Your Attendance Summary", "", colorInfo, author)

	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   "Total Records",
		Value:  fmt.Sprintf("%d", summary.TotalRecords),
		Inline: true,
	})

	status := "🔴 Clocked Out"
	if summary.Status.ClockedIn {
		status = "🟢 Clocked In"
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   "Current Status",
		Value:  status,
		Inline: true,
	})

	if summary.LatestClockIn != nil {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   "Last Clock In",
			Value:  render.DiscordTimestamp(*summary.LatestClockIn, "f"),
			Inline: true,
		})
	}
	if summary.LatestClockOut != nil {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   "Last Clock Out",
			Value:  render.DiscordTimestamp(*summary.LatestClockOut, "f"),
			Inline: true,
		})
	}

	if len(summary.Recent) > 0 {
		lines := make([]string, 0, len(summary.Recent))
		for _, rec := range summary.Recent {
			lines = append(lines, render.RecordLine(rec, summary.CategoryNames[rec.CategoryID]))
		}
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:  "Recent Activity",
			Value: render.Truncate(strings.Join(lines, "\n\n"), embedFieldLimit),
		})
	}
	return e
}

func buildWeeklyEmbed(report *service.WeeklyReport, author *discordgo.User) *discordgo.MessageEmbed {
	s := report.Summary
	title := fmt.Sprintf("🗓️ Week of %s", s.WeekStart.Format("January 2, 2006"))
	e := baseEmbed(title, "", colorInfo, author)

	var days strings.Builder
	for _, day := range s.PerDay {
		switch {
		case day.Incomplete:
			fmt.Fprintf(&days, "**%s** - ⏳ still clocked in\n", render.DayLabel(day.Date))
		case day.WorkedHours > 0:
			fmt.Fprintf(&days, "**%s** - %s\n", render.DayLabel(day.Date), render.FormatHours(day.WorkedHours))
		default:
			fmt.Fprintf(&days, "**%s** - no records\n", render.DayLabel(day.Date))
		}
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:  "Daily Hours",
		Value: render.Truncate(days.String(), embedFieldLimit),
	})

	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   "Total",
		Value:  render.FormatHours(s.TotalHours),
		Inline: true,
	})
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   "Worked Days",
		Value:  fmt.Sprintf("%d", s.WorkedDays),
		Inline: true,
	})
	if avg, ok := s.AverageHours(); ok {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   "Daily Average",
			Value:  render.FormatHours(avg),
			Inline: true,
		})
	}
	if top, ok := s.TopCategory(); ok {
		name := report.CategoryNames[top.CategoryID]
		if name == "" {
			name = top.CategoryID
		}
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   "Most Used Type",
			Value:  fmt.Sprintf("%s (%d)", name, top.Count),
			Inline: true,
		})
	}
	if s.IncompleteDays > 0 {
		e.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d day(s) have an open clock-in and are not counted", s.IncompleteDays),
		}
	}
	return e
}

func buildTypeListEmbed(categories []*domain.Category, author *discordgo.User) *discordgo.MessageEmbed {
	e := baseEmbed("📋 Attendance Types", "", colorInfo, author)

	var active, inactive []string
	activeCount := 0
	for _, cat := range categories {
		text := fmt.Sprintf("**%s**", cat.Name)
		if cat.Description != "" {
			text += fmt.Sprintf("\n  ├ %s", cat.Description)
		}
		if cat.Active {
			active = append(active, text)
			activeCount++
		} else {
			inactive = append(inactive, fmt.Sprintf("~~%s~~", cat.Name))
		}
	}

	if len(active) > 0 {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:  "🟢 Active Types",
			Value: render.Truncate(strings.Join(active, "\n\n"), embedFieldLimit),
		})
	}
	if len(inactive) > 0 {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:  "🔴 Inactive Types",
			Value: render.Truncate(strings.Join(inactive, "\n\n"), embedFieldLimit),
		})
	}
	e.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Total: %d types (%d active)", len(categories), activeCount),
	}
	return e
}
