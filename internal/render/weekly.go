package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgrant/punchcard/internal/domain"
)

// WeeklyText renders a weekly summary for the terminal report command.
// categoryNames maps category IDs to display names; colored disables
// styling when stdout is not a terminal.
func WeeklyText(summary *domain.WeeklySummary, categoryNames map[string]string, colored bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !colored {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", style(styleHeader, fmt.Sprintf("Week %s – %s",
		summary.WeekStart.Format("2006-01-02"), summary.WeekEnd.Format("2006-01-02"))))

	for _, day := range summary.PerDay {
		label := DayLabel(day.Date)
		switch {
		case day.Incomplete:
			fmt.Fprintf(&b, "  %s  %s\n", label, style(styleYellow, "still clocked in"))
		case day.WorkedHours > 0:
			fmt.Fprintf(&b, "  %s  %s\n", label, style(styleGreen, FormatHours(day.WorkedHours)))
		default:
			fmt.Fprintf(&b, "  %s  %s\n", label, style(styleDim, "-"))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total        %s\n", FormatHours(summary.TotalHours))
	fmt.Fprintf(&b, "  Worked days  %d\n", summary.WorkedDays)
	if avg, ok := summary.AverageHours(); ok {
		fmt.Fprintf(&b, "  Average      %s/day\n", FormatHours(avg))
	}
	if top, ok := summary.TopCategory(); ok {
		name := categoryNames[top.CategoryID]
		if name == "" {
			name = top.CategoryID
		}
		fmt.Fprintf(&b, "  Most used    %s (%d)\n", name, top.Count)
	}
	if summary.IncompleteDays > 0 {
		fmt.Fprintf(&b, "  %s\n", style(styleYellow,
			fmt.Sprintf("%d day(s) with an open clock-in", summary.IncompleteDays)))
	}
	return b.String()
}
