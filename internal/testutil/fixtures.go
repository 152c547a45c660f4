package testutil

import (
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p int) TaskOption {
	return func(t *domain.Task) {
		t.Priority = &p
	}
}

func WithEnergy(e domain.EnergyLevel) TaskOption {
	return func(t *domain.Task) {
		t.Energy = &e
	}
}

func WithFocus(f domain.FocusType) TaskOption {
	return func(t *domain.Task) {
		t.Focus = &f
	}
}

func WithEstimatedMin(m int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = m
	}
}

func WithHardDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.HardDeadline = &d
	}
}

func WithDescription(desc string) TaskOption {
	return func(t *domain.Task) {
		t.Description = desc
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:           uuid.New().String(),
		Title:        title,
		Status:       domain.TaskPending,
		EstimatedMin: 30,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Prefs options
type PrefsOption func(*domain.SchedulingPrefs)

func WithMorningEnergy(e domain.EnergyLevel) PrefsOption {
	return func(p *domain.SchedulingPrefs) {
		p.MorningEnergy = e
	}
}

func WithAfternoonEnergy(e domain.EnergyLevel) PrefsOption {
	return func(p *domain.SchedulingPrefs) {
		p.AfternoonEnergy = e
	}
}

func WithWorkWindow(start, end string) PrefsOption {
	return func(p *domain.SchedulingPrefs) {
		p.WorkStart = start
		p.WorkEnd = end
	}
}

func WithFocusSessionMin(m int) PrefsOption {
	return func(p *domain.SchedulingPrefs) {
		p.FocusSessionMin = m
	}
}

func WithPreferredFocus(types ...domain.FocusType) PrefsOption {
	return func(p *domain.SchedulingPrefs) {
		p.PreferredFocus = types
	}
}

func NewTestPrefs(opts ...PrefsOption) *domain.SchedulingPrefs {
	p := domain.DefaultSchedulingPrefs()
	for _, opt := range opts {
		opt(p)
	}
	return p
}
