package contract

import "github.com/alexanderramin/focusday/internal/domain"

// UpdatePrefsRequest carries a partial preferences update; nil pointers leave
// the stored value unchanged.
type UpdatePrefsRequest struct {
	MorningEnergy   *domain.EnergyLevel
	AfternoonEnergy *domain.EnergyLevel
	WorkStart       *string
	WorkEnd         *string
	FocusSessionMin *int
	PreferredFocus  []domain.FocusType
	SetPreferred    bool
}

type PrefsErrorCode string

const (
	PrefsErrInvalidTime   PrefsErrorCode = "INVALID_TIME_FORMAT"
	PrefsErrInvalidWindow PrefsErrorCode = "INVALID_WORK_WINDOW"
	PrefsErrInternal      PrefsErrorCode = "INTERNAL_ERROR"
)

type PrefsError struct {
	Code    PrefsErrorCode
	Message string
}

func (e *PrefsError) Error() string {
	return string(e.Code) + ": " + e.Message
}
