package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
)

// FormatTaskList renders tasks as a compact list, one task per line with a
// detail line for optional attributes.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Add one with `focusday task add`.") + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			TruncID(t.ID),
			StatusPill(t.Status),
			Bold(t.Title),
			Dim(fmt.Sprintf("(%s)", FormatMinutes(t.EffectiveEstimatedMin()))),
		))

		details := make([]string, 0, 4)
		if t.Priority != nil {
			details = append(details, fmt.Sprintf("P%d", *t.Priority))
		}
		if t.Energy != nil {
			details = append(details, EnergyBadge(*t.Energy))
		}
		if t.Focus != nil {
			details = append(details, FocusBadge(*t.Focus))
		}
		if t.HardDeadline != nil {
			details = append(details, Dim("due ")+DeadlineStyled(*t.HardDeadline, now))
		}
		if len(details) > 0 {
			b.WriteString("          " + strings.Join(details, "  ") + "\n")
		}
	}
	return b.String()
}

// FormatTask renders a single task in full detail.
func FormatTask(t *domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(t.Title), StatusPill(t.Status)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), t.ID))
	if t.Description != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Description:"), t.Description))
	}
	if t.Priority != nil {
		b.WriteString(fmt.Sprintf("%s %d\n", Dim("Priority:"), *t.Priority))
	}
	if t.Energy != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Energy:"), EnergyBadge(*t.Energy)))
	}
	if t.Focus != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Focus:"), FocusBadge(*t.Focus)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Estimate:"), FormatMinutes(t.EffectiveEstimatedMin())))
	if t.HardDeadline != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Deadline:"), DeadlineStyled(*t.HardDeadline, now)))
	}
	return b.String()
}

// FormatPrefs renders the scheduling preferences.
func FormatPrefs(p *domain.SchedulingPrefs) string {
	var b strings.Builder
	b.WriteString(Header("Scheduling Preferences"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Morning energy:  "), EnergyBadge(p.MorningEnergy)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Afternoon energy:"), EnergyBadge(p.AfternoonEnergy)))
	b.WriteString(fmt.Sprintf("%s %s–%s\n", Dim("Work hours:      "), p.WorkStart, p.WorkEnd))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Focus session:   "), FormatMinutes(p.FocusSessionMin)))
	if len(p.PreferredFocus) > 0 {
		labels := make([]string, len(p.PreferredFocus))
		for i, ft := range p.PreferredFocus {
			labels[i] = FocusBadge(ft)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Preferred focus: "), strings.Join(labels, ", ")))
	}
	return b.String()
}
