package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/alexanderramin/focusday/internal/repository"
	"github.com/alexanderramin/focusday/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrefsService(t *testing.T) PrefsService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewPrefsService(repository.NewSQLitePrefsRepo(database))
}

func strPtr(v string) *string { return &v }

func energyPtr(v domain.EnergyLevel) *domain.EnergyLevel { return &v }

func TestPrefsService_Get_LazilyCreatesDefaults(t *testing.T) {
	svc := newPrefsService(t)

	prefs, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "default", prefs.ID)
	assert.Equal(t, domain.EnergyMedium, prefs.MorningEnergy)
	assert.Equal(t, "09:00", prefs.WorkStart)
}

func TestPrefsService_Update_PartialUpdate(t *testing.T) {
	svc := newPrefsService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, contract.UpdatePrefsRequest{
		MorningEnergy:  energyPtr(domain.EnergyHigh),
		WorkStart:      strPtr("08:00"),
		PreferredFocus: []domain.FocusType{domain.FocusCreative},
		SetPreferred:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.EnergyHigh, updated.MorningEnergy)
	assert.Equal(t, domain.EnergyMedium, updated.AfternoonEnergy, "untouched fields survive")
	assert.Equal(t, "08:00", updated.WorkStart)
	assert.Equal(t, []domain.FocusType{domain.FocusCreative}, updated.PreferredFocus)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "08:00", got.WorkStart)
}

func TestPrefsService_Update_RejectsMalformedTime(t *testing.T) {
	svc := newPrefsService(t)

	_, err := svc.Update(context.Background(), contract.UpdatePrefsRequest{
		WorkStart: strPtr("9am"),
	})
	var prefsErr *contract.PrefsError
	require.ErrorAs(t, err, &prefsErr)
	assert.Equal(t, contract.PrefsErrInvalidTime, prefsErr.Code)
}

func TestPrefsService_Update_RejectsInvertedWindow(t *testing.T) {
	svc := newPrefsService(t)

	_, err := svc.Update(context.Background(), contract.UpdatePrefsRequest{
		WorkStart: strPtr("18:00"),
		WorkEnd:   strPtr("09:00"),
	})
	var prefsErr *contract.PrefsError
	require.ErrorAs(t, err, &prefsErr)
	assert.Equal(t, contract.PrefsErrInvalidWindow, prefsErr.Code)
}
