package service

import (
	"context"
	"time"

	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/alexanderramin/focusday/internal/repository"
)

type prefsService struct {
	prefs    repository.PrefsRepo
	observer UseCaseObserver
}

func NewPrefsService(prefs repository.PrefsRepo, observers ...UseCaseObserver) PrefsService {
	return &prefsService{
		prefs:    prefs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *prefsService) Get(ctx context.Context) (*domain.SchedulingPrefs, error) {
	return s.prefs.GetOrCreate(ctx)
}

func (s *prefsService) Update(ctx context.Context, req contract.UpdatePrefsRequest) (*domain.SchedulingPrefs, error) {
	prefs, err := s.prefs.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if req.MorningEnergy != nil {
		prefs.MorningEnergy = *req.MorningEnergy
	}
	if req.AfternoonEnergy != nil {
		prefs.AfternoonEnergy = *req.AfternoonEnergy
	}
	if req.WorkStart != nil {
		if !validClock(*req.WorkStart) {
			return nil, &contract.PrefsError{Code: contract.PrefsErrInvalidTime, Message: "work_start must be HH:MM"}
		}
		prefs.WorkStart = *req.WorkStart
	}
	if req.WorkEnd != nil {
		if !validClock(*req.WorkEnd) {
			return nil, &contract.PrefsError{Code: contract.PrefsErrInvalidTime, Message: "work_end must be HH:MM"}
		}
		prefs.WorkEnd = *req.WorkEnd
	}
	if req.FocusSessionMin != nil {
		prefs.FocusSessionMin = *req.FocusSessionMin
	}
	if req.SetPreferred {
		prefs.PreferredFocus = req.PreferredFocus
	}

	start, _ := time.Parse("15:04", prefs.WorkStart)
	end, _ := time.Parse("15:04", prefs.WorkEnd)
	if !start.Before(end) {
		return nil, &contract.PrefsError{Code: contract.PrefsErrInvalidWindow, Message: "work_start must be before work_end"}
	}

	if err := s.prefs.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
