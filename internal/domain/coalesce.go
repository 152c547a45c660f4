package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// EnergyFromPtrWithDefault returns the first non-nil *EnergyLevel value, or the fallback.
func EnergyFromPtrWithDefault(fallback EnergyLevel, ptrs ...*EnergyLevel) EnergyLevel {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// FocusFromPtrWithDefault returns the first non-nil *FocusType value, or the fallback.
func FocusFromPtrWithDefault(fallback FocusType, ptrs ...*FocusType) FocusType {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
