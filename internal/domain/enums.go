package domain

import "fmt"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "in_progress": true, "done": true, "blocked": true,
}

// ParseTaskStatus validates and converts a raw status string.
func ParseTaskStatus(s string) (TaskStatus, error) {
	if !ValidTaskStatuses[s] {
		return "", fmt.Errorf("invalid task status %q", s)
	}
	return TaskStatus(s), nil
}

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "HIGH"
	EnergyMedium EnergyLevel = "MEDIUM"
	EnergyLow    EnergyLevel = "LOW"
)

// ParseEnergyLevel validates and converts a raw energy level string.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	switch EnergyLevel(s) {
	case EnergyHigh, EnergyMedium, EnergyLow:
		return EnergyLevel(s), nil
	}
	return "", fmt.Errorf("invalid energy level %q", s)
}

type FocusType string

const (
	FocusCreative       FocusType = "CREATIVE"
	FocusTechnical      FocusType = "TECHNICAL"
	FocusAdministrative FocusType = "ADMINISTRATIVE"
	FocusSocial         FocusType = "SOCIAL"
)

// ParseFocusType validates and converts a raw focus type string.
func ParseFocusType(s string) (FocusType, error) {
	switch FocusType(s) {
	case FocusCreative, FocusTechnical, FocusAdministrative, FocusSocial:
		return FocusType(s), nil
	}
	return "", fmt.Errorf("invalid focus type %q", s)
}
