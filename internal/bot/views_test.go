package bot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgrant/punchcard/internal/domain"
	"github.com/felixgrant/punchcard/internal/service"
)

func catalogFixture() []*domain.Category {
	return []*domain.Category{
		{ID: "type-regular", Name: "Regular Work", Active: true},
		{ID: "type-remote", Name: "Remote Work", Description: "Working from home", Active: true},
		{ID: "type-overtime", Name: "Overtime", Active: true},
		{ID: "type-legacy", Name: "Legacy Shift", Active: false},
	}
}

func TestTypeChoices_FiltersByPartialInput(t *testing.T) {
	choices := typeChoices(catalogFixture(), "work")
	require.Len(t, choices, 2)
	assert.Equal(t, "Regular Work", choices[0].Name)
	assert.Equal(t, "Remote Work", choices[1].Name)
}

func TestTypeChoices_EmptyInputReturnsAll(t *testing.T) {
	choices := typeChoices(catalogFixture(), "")
	assert.Len(t, choices, 4)
}

func TestTypeChoices_CaseInsensitive(t *testing.T) {
	choices := typeChoices(catalogFixture(), "OVER")
	require.Len(t, choices, 1)
	assert.Equal(t, "Overtime", choices[0].Value)
}

func TestTypeChoices_CapsAtDiscordLimit(t *testing.T) {
	var many []*domain.Category
	for i := 0; i < 40; i++ {
		many = append(many, &domain.Category{Name: "Type", Active: true})
	}
	assert.Len(t, typeChoices(many, ""), maxAutocompleteChoices)
}

func TestBuildSummaryEmbed(t *testing.T) {
	in := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 16, 17, 30, 0, 0, time.UTC)
	summary := &service.UserSummary{
		TotalRecords:   12,
		Status:         domain.CurrentStatus{ClockedIn: true, CanClockOut: true},
		LatestClockIn:  &in,
		LatestClockOut: &out,
		Recent: []domain.AttendanceEvent{
			{Kind: domain.KindClockIn, Timestamp: in, CategoryID: "type-remote"},
		},
		CategoryNames: map[string]string{"type-remote": "Remote Work"},
	}

	embed := buildSummaryEmbed(summary, &discordgo.User{Username: "alice"})

	assert.Equal(t, "📊 Your Attendance Summary", embed.Title)
	assert.Equal(t, "alice", embed.Author.Name)
	require.GreaterOrEqual(t, len(embed.Fields), 5)
	assert.Equal(t, "12", embed.Fields[0].Value)
	assert.Equal(t, "🟢 Clocked In", embed.Fields[1].Value)
	recent := embed.Fields[len(embed.Fields)-1]
	assert.Equal(t, "Recent Activity", recent.Name)
	assert.Contains(t, recent.Value, "Remote Work")
}

func TestBuildWeeklyEmbed(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	summary := &domain.WeeklySummary{
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 7).Add(-time.Nanosecond),
	}
	for i := 0; i < 7; i++ {
		summary.PerDay = append(summary.PerDay, domain.DaySession{Date: start.AddDate(0, 0, i)})
	}
	summary.PerDay[0].WorkedHours = 8
	summary.PerDay[1].Incomplete = true
	summary.TotalHours = 8
	summary.WorkedDays = 1
	summary.IncompleteDays = 1
	summary.CategoryUsage = []domain.CategoryCount{{CategoryID: "type-regular", Count: 1}}

	report := &service.WeeklyReport{
		Summary:       summary,
		CategoryNames: map[string]string{"type-regular": "Regular Work"},
	}
	embed := buildWeeklyEmbed(report, &discordgo.User{Username: "alice"})

	assert.Contains(t, embed.Title, "Week of June 16, 2025")
	require.NotEmpty(t, embed.Fields)
	assert.Contains(t, embed.Fields[0].Value, "8h")
	assert.Contains(t, embed.Fields[0].Value, "still clocked in")
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "open clock-in")
}

func TestBuildTypeListEmbed(t *testing.T) {
	embed := buildTypeListEmbed(catalogFixture(), &discordgo.User{Username: "alice"})

	require.Len(t, embed.Fields, 2)
	assert.Contains(t, embed.Fields[0].Value, "Remote Work")
	assert.Contains(t, embed.Fields[0].Value, "Working from home")
	assert.Contains(t, embed.Fields[1].Value, "~~Legacy Shift~~")
	assert.Equal(t, "Total: 4 types (3 active)", embed.Footer.Text)
}

func TestOptionHelpers(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "attendance_type", Type: discordgo.ApplicationCommandOptionString, Value: "Remote Work"},
			{Name: "weeks_ago", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(2)},
		},
	}
	opts := optionMap(data)
	assert.Equal(t, "Remote Work", stringOption(opts, "attendance_type"))
	assert.Equal(t, int64(2), intOption(opts, "weeks_ago"))
	assert.Equal(t, "", stringOption(opts, "notes"))
	assert.Equal(t, int64(0), intOption(opts, "missing"))
}
