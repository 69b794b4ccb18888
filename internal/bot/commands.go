package bot

import "github.com/bwmarrin/discordgo"

const (
	cmdClockIn      = "clock-in"
	cmdClockOut     = "clock-out"
	cmdMySummary    = "my-summary"
	cmdWeeklyReport = "weekly-report"
	cmdAddType      = "add-attendance-type"
	cmdListTypes    = "list-attendance-types"
)

// maxAutocompleteChoices is Discord's cap on autocomplete suggestions.
const maxAutocompleteChoices = 25

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdClockIn,
			Description: "Record your clock-in time",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "attendance_type",
					Description:  "Type of work you're starting",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "notes",
					Description: "Optional notes about your work session",
				},
			},
		},
		{
			Name:        cmdClockOut,
			Description: "Record your clock-out time",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "notes",
					Description: "Optional notes about your work session",
				},
			},
		},
		{
			Name:        cmdMySummary,
			Description: "View your attendance summary",
		},
		{
			Name:        cmdWeeklyReport,
			Description: "View your weekly hours report",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "weeks_ago",
					Description: "How many weeks back (0 = current week)",
					MinValue:    float64Ptr(0),
					MaxValue:    52,
				},
			},
		},
		{
			Name:        cmdAddType,
			Description: "Add a new attendance type",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type_name",
					Description: "Name of the new attendance type",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Optional description for the attendance type",
				},
			},
		},
		{
			Name:        cmdListTypes,
			Description: "List all attendance types",
		},
	}
}

func float64Ptr(v float64) *float64 { return &v }

// optionMap indexes interaction options by name.
func optionMap(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return 0
}
