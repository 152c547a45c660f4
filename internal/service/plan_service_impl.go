package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focusday/internal/calendar"
	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/planner"
	"github.com/alexanderramin/focusday/internal/repository"
)

// BusyFetcher pulls busy intervals for one day. *calendar.RetryClient is the
// production implementation; a nil fetcher means no calendar is configured
// and the plan runs against an empty commitment list.
type BusyFetcher interface {
	FetchBusyIntervals(ctx context.Context, calendarID string, start, end time.Time) ([]calendar.BusyInterval, error)
}

type planService struct {
	tasks    repository.TaskRepo
	deps     repository.DependencyRepo
	prefs    repository.PrefsRepo
	fetcher  BusyFetcher
	observer UseCaseObserver
}

func NewPlanService(
	tasks repository.TaskRepo,
	deps repository.DependencyRepo,
	prefs repository.PrefsRepo,
	fetcher BusyFetcher,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		tasks:    tasks,
		deps:     deps,
		prefs:    prefs,
		fetcher:  fetcher,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": req.Date.Format("2006-01-02")}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Date.IsZero() {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrInvalidDate,
			Message: "plan date must be set",
		}
	}
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	edges, err := s.deps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dependencies: %w", err)
	}
	prefs, err := s.prefs.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scheduling prefs: %w", err)
	}

	// Calendar fetch is the only blocking I/O in the pipeline. Failure never
	// kills the plan; the response degrades to zero commitments instead.
	var busy []planner.Interval
	var warnings []string
	degraded := false
	if s.fetcher != nil {
		intervals, fetchErr := s.fetcher.FetchBusyIntervals(ctx, req.CalendarID, date, date.Add(24*time.Hour))
		switch {
		case fetchErr == nil:
			for _, b := range intervals {
				busy = append(busy, planner.Interval{Start: b.Start, End: b.End})
			}
		case ctx.Err() != nil:
			err = fetchErr
			return nil, err
		default:
			degraded = true
			warnings = append(warnings, "calendar unavailable; plan may conflict with existing commitments")
			fields["calendar_degraded"] = true
		}
	}

	ready, err := planner.Resolve(tasks, edges)
	if err != nil {
		var cycleErr *planner.CircularDependencyError
		if errors.As(err, &cycleErr) {
			err = &contract.PlanError{
				Code:    contract.PlanErrCircularDependency,
				Message: cycleErr.Error(),
			}
			return nil, err
		}
		return nil, fmt.Errorf("resolving dependencies: %w", err)
	}

	scored := planner.ScoreTasks(ready, date)
	slots, window := planner.GenerateSlots(date, prefs, busy)
	if window.Defaulted {
		warnings = append(warnings, "work hours malformed; using 09:00-17:00")
	}
	assignments := planner.AssignSlots(scored, slots)
	result := planner.Assemble(scored, assignments)

	fields["scheduled"] = len(result.Blocks)
	fields["unscheduled"] = len(result.Unscheduled)

	return buildPlanResponse(now, date, result, degraded, warnings), nil
}

func buildPlanResponse(now, date time.Time, result planner.PlanResult, degraded bool, warnings []string) *contract.PlanResponse {
	resp := &contract.PlanResponse{
		GeneratedAt:        now,
		Date:               date,
		TotalEstimatedMin:  result.TotalEstimatedMin,
		EnergyOptimization: result.EnergyOptimization,
		FocusOptimization:  result.FocusOptimization,
		DeadlineRisk:       result.DeadlineRisk,
		CalendarDegraded:   degraded,
		Warnings:           warnings,
	}

	for _, a := range result.Blocks {
		block := contract.ScheduledBlock{
			TaskID:       a.Task.ID,
			Title:        a.Task.Title,
			Start:        a.Slot.Start,
			End:          a.Slot.End,
			EstimatedMin: a.Task.EffectiveEstimatedMin(),
			EnergyMatch:  a.EnergyMatch,
			FocusMatch:   a.FocusMatch,
			DurationFit:  a.DurationFit,
			Reasoning:    a.Reasoning,
		}
		if a.Task.Energy != nil {
			block.Energy = string(*a.Task.Energy)
		}
		if a.Task.Focus != nil {
			block.Focus = string(*a.Task.Focus)
		}
		resp.Blocks = append(resp.Blocks, block)
	}

	for _, st := range result.Unscheduled {
		resp.Unscheduled = append(resp.Unscheduled, contract.UnscheduledTask{
			TaskID:       st.Task.ID,
			Title:        st.Task.Title,
			Score:        st.Score,
			EstimatedMin: st.Task.EffectiveEstimatedMin(),
		})
	}

	return resp
}
