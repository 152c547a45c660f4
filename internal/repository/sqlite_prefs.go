package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/focusday/internal/db"
	"github.com/alexanderramin/focusday/internal/domain"
)

// SQLitePrefsRepo implements PrefsRepo using a SQLite database.
type SQLitePrefsRepo struct {
	db db.DBTX
}

// NewSQLitePrefsRepo creates a new SQLitePrefsRepo.
func NewSQLitePrefsRepo(conn db.DBTX) *SQLitePrefsRepo {
	return &SQLitePrefsRepo{db: conn}
}

// GetOrCreate returns the stored scheduling preferences, inserting the
// defaults on first access so callers always get a row back.
func (r *SQLitePrefsRepo) GetOrCreate(ctx context.Context) (*domain.SchedulingPrefs, error) {
	p, err := r.get(ctx)
	if err == nil {
		return p, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading scheduling prefs: %w", err)
	}

	defaults := domain.DefaultSchedulingPrefs()
	if err := r.Upsert(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (r *SQLitePrefsRepo) Upsert(ctx context.Context, p *domain.SchedulingPrefs) error {
	query := `INSERT OR REPLACE INTO scheduling_prefs (id, morning_energy, afternoon_energy,
		work_start, work_end, focus_session_min, preferred_focus)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.MorningEnergy),
		string(p.AfternoonEnergy),
		p.WorkStart,
		p.WorkEnd,
		p.FocusSessionMin,
		joinFocusTypes(p.PreferredFocus),
	)
	if err != nil {
		return fmt.Errorf("upserting scheduling prefs: %w", err)
	}
	return nil
}

func (r *SQLitePrefsRepo) get(ctx context.Context) (*domain.SchedulingPrefs, error) {
	query := `SELECT id, morning_energy, afternoon_energy, work_start, work_end,
		focus_session_min, preferred_focus
		FROM scheduling_prefs WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.SchedulingPrefs
	var morningStr, afternoonStr, focusStr string
	err := row.Scan(
		&p.ID,
		&morningStr,
		&afternoonStr,
		&p.WorkStart,
		&p.WorkEnd,
		&p.FocusSessionMin,
		&focusStr,
	)
	if err != nil {
		return nil, err
	}

	p.MorningEnergy = domain.EnergyLevel(morningStr)
	p.AfternoonEnergy = domain.EnergyLevel(afternoonStr)
	p.PreferredFocus = splitFocusTypes(focusStr)
	return &p, nil
}

// joinFocusTypes serializes an ordered focus list as a comma-separated string.
func joinFocusTypes(types []domain.FocusType) string {
	parts := make([]string, len(types))
	for i, ft := range types {
		parts[i] = string(ft)
	}
	return strings.Join(parts, ",")
}

// splitFocusTypes parses the stored comma-separated focus list, dropping
// anything that is not a known focus type.
func splitFocusTypes(s string) []domain.FocusType {
	if s == "" {
		return nil
	}
	var types []domain.FocusType
	for _, part := range strings.Split(s, ",") {
		ft, err := domain.ParseFocusType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		types = append(types, ft)
	}
	return types
}
