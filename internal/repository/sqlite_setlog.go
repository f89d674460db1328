package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/domain"
)

const setLogColumns = `id, program_id, period_number, day_index, exercise_order, set_number,
	reps, rpe, velocity_loss_pct, autostopped, logged_at`

type SQLiteSetLogRepo struct {
	db db.DBTX
}

func NewSQLiteSetLogRepo(conn db.DBTX) *SQLiteSetLogRepo {
	return &SQLiteSetLogRepo{db: conn}
}

func (r *SQLiteSetLogRepo) Create(ctx context.Context, l *domain.SetLog) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO set_logs (`+setLogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID,
		l.ProgramID,
		l.PeriodNumber,
		l.DayIndex,
		l.ExerciseOrder,
		l.SetNumber,
		l.Reps,
		nullableFloat(l.RPE),
		nullableFloat(l.VelocityLossPct),
		boolToInt(l.Autostopped),
		formatTime(l.LoggedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting set log: %w", err)
	}
	return nil
}

func (r *SQLiteSetLogRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.SetLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+setLogColumns+` FROM set_logs
		WHERE program_id = ?
		ORDER BY period_number, day_index, exercise_order, set_number, logged_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing set logs: %w", err)
	}
	defer rows.Close()
	return scanSetLogs(rows)
}

func (r *SQLiteSetLogRepo) ListByDay(ctx context.Context, programID string, period, day int) ([]*domain.SetLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+setLogColumns+` FROM set_logs
		WHERE program_id = ? AND period_number = ? AND day_index = ?
		ORDER BY exercise_order, set_number, logged_at`, programID, period, day)
	if err != nil {
		return nil, fmt.Errorf("listing set logs by day: %w", err)
	}
	defer rows.Close()
	return scanSetLogs(rows)
}

func scanSetLogs(rows *sql.Rows) ([]*domain.SetLog, error) {
	var out []*domain.SetLog
	for rows.Next() {
		var (
			l           domain.SetLog
			rpe, vl     sql.NullFloat64
			autostop    int
			loggedAtStr string
		)
		if err := rows.Scan(&l.ID, &l.ProgramID, &l.PeriodNumber, &l.DayIndex, &l.ExerciseOrder, &l.SetNumber,
			&l.Reps, &rpe, &vl, &autostop, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scanning set log row: %w", err)
		}
		l.RPE = floatPtr(rpe)
		l.VelocityLossPct = floatPtr(vl)
		l.Autostopped = intToBool(autostop)
		loggedAt, err := time.Parse(time.RFC3339, loggedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing logged_at: %w", err)
		}
		l.LoggedAt = loggedAt
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating set logs: %w", err)
	}
	return out, nil
}
