package domain

// Default scheduling preference values, applied when the profile row is
// created lazily on the first plan request.
const (
	DefaultWorkStart       = "09:00"
	DefaultWorkEnd         = "17:00"
	DefaultFocusSessionMin = 90
)

// SchedulingPrefs holds the single local user's planning preferences.
type SchedulingPrefs struct {
	ID              string // always "default"
	MorningEnergy   EnergyLevel
	AfternoonEnergy EnergyLevel
	WorkStart       string // "HH:MM"
	WorkEnd         string // "HH:MM"
	FocusSessionMin int
	PreferredFocus  []FocusType // advisory, not yet consulted by the assigner
}

// DefaultSchedulingPrefs returns the profile created on first use.
func DefaultSchedulingPrefs() *SchedulingPrefs {
	return &SchedulingPrefs{
		ID:              "default",
		MorningEnergy:   EnergyMedium,
		AfternoonEnergy: EnergyMedium,
		WorkStart:       DefaultWorkStart,
		WorkEnd:         DefaultWorkEnd,
		FocusSessionMin: DefaultFocusSessionMin,
	}
}
