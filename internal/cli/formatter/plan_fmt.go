package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/domain"
)

// FormatPlan formats a PlanResponse into a styled CLI dashboard string.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Plan for %s", resp.Date.Format("Monday, Jan 2"))))
	b.WriteString("\n\n")

	if len(resp.Blocks) == 0 {
		b.WriteString(Dim("Nothing to schedule."))
		b.WriteString("\n")
	}

	for i, block := range resp.Blocks {
		timeRange := StyleBlue.Render(ClockRange(block.Start, block.End))
		titleLine := fmt.Sprintf("%s  %s  %s",
			timeRange,
			Bold(block.Title),
			StyleDim.Render(fmt.Sprintf("(%s)", FormatMinutes(block.EstimatedMin))),
		)
		b.WriteString(titleLine + "\n")

		badges := make([]string, 0, 2)
		if block.Energy != "" {
			badges = append(badges, EnergyBadge(domain.EnergyLevel(block.Energy)))
		}
		if block.Focus != "" {
			badges = append(badges, FocusBadge(domain.FocusType(block.Focus)))
		}
		if len(badges) > 0 {
			b.WriteString("   " + strings.Join(badges, "  ") + "\n")
		}
		if block.Reasoning != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("WHY:"), Dim(block.Reasoning)))
		}

		if i < len(resp.Blocks)-1 {
			b.WriteString("\n")
		}
	}

	if len(resp.Unscheduled) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Unscheduled"))
		b.WriteString("\n")
		for _, u := range resp.Unscheduled {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				StyleDim.Render("·"),
				StyleFg.Render(u.Title),
				Dim(fmt.Sprintf("(%s, score %.0f)", FormatMinutes(u.EstimatedMin), u.Score)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Energy fit  "), RenderMetric(resp.EnergyOptimization, 12)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Focus fit   "), RenderMetric(resp.FocusOptimization, 12)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Deadline risk"), RenderMetric(resp.DeadlineRisk, 12)))
	b.WriteString(Dim(fmt.Sprintf("Total planned: %s", FormatMinutes(resp.TotalEstimatedMin))) + "\n")

	if resp.CalendarDegraded {
		b.WriteString("\n" + StyleYellow.Render("  WARNING: calendar data may be incomplete") + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}

	return RenderBox("Daily Plan", b.String())
}
