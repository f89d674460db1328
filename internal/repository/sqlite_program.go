package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/domain"
)

const programColumns = `id, goal_id, goal_name, frequency, sex, morphotype, weekly_sets,
	start_date, end_date, created_at`

// SQLiteProgramRepo writes a program tree across four tables. Create is not
// atomic on its own; run it inside a unit of work.
type SQLiteProgramRepo struct {
	db db.DBTX
}

func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.TrainingProgram) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO programs (`+programColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.GoalID,
		p.GoalName,
		string(p.Frequency),
		string(p.Sex),
		string(p.MorphotypeSnapshot),
		p.WeeklySets,
		formatDate(p.StartDate),
		formatDate(p.EndDate),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	for _, period := range p.Periods {
		if err := r.insertPeriod(ctx, p.ID, period); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProgramRepo) insertPeriod(ctx context.Context, programID string, period domain.Period) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO periods
		(program_id, number, type, volume_modifier, intensity_modifier, start_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		programID, period.Number, string(period.Type), period.VolumeModifier, period.IntensityModifier,
		formatDate(period.StartDate),
	)
	if err != nil {
		return fmt.Errorf("inserting period %d: %w", period.Number, err)
	}
	for _, d := range period.Days {
		_, err := r.db.ExecContext(ctx, `INSERT INTO days
			(program_id, period_number, day_index, label, rest, session_sets, priority_sets, maintenance_sets, estimated_minutes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			programID, period.Number, d.Index, string(d.Label), boolToInt(d.Rest),
			d.SessionSets, d.PrioritySets, d.MaintenanceSets, d.EstimatedMinutes,
		)
		if err != nil {
			return fmt.Errorf("inserting day %d.%d: %w", period.Number, d.Index, err)
		}
		for _, e := range d.Exercises {
			_, err := r.db.ExecContext(ctx, `INSERT INTO prescribed_exercises
				(program_id, period_number, day_index, exercise_order, exercise_id, exercise_name, muscle,
				 sets, rep_range, rpe, rest_seconds, tempo, is_priority, why, priority_justification)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				programID, period.Number, d.Index, e.Order, e.ExerciseID, e.ExerciseName, e.Muscle,
				e.Sets, e.RepRange, e.RPE, e.RestSeconds, e.Tempo, boolToInt(e.IsPriority), e.Why, e.PriorityJustification,
			)
			if err != nil {
				return fmt.Errorf("inserting prescribed exercise %d.%d.%d: %w", period.Number, d.Index, e.Order, err)
			}
		}
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.TrainingProgram, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	p, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}
	if err := r.loadPeriods(ctx, p); err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, p); err != nil {
		return nil, err
	}
	if err := r.loadExercises(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.TrainingProgram, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+programColumns+` FROM programs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var out []*domain.TrainingProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return out, nil
}

func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanProgram(s rowScanner) (*domain.TrainingProgram, error) {
	var (
		p                     domain.TrainingProgram
		freq, sex, morpho     string
		start, end, createdAt string
	)
	if err := s.Scan(&p.ID, &p.GoalID, &p.GoalName, &freq, &sex, &morpho, &p.WeeklySets,
		&start, &end, &createdAt); err != nil {
		return nil, err
	}
	p.Frequency = domain.Frequency(freq)
	p.Sex = domain.Sex(sex)
	p.MorphotypeSnapshot = domain.Morphotype(morpho)

	var err error
	if p.StartDate, err = parseDate(start); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if p.EndDate, err = parseDate(end); err != nil {
		return nil, fmt.Errorf("parsing end_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProgramRepo) loadPeriods(ctx context.Context, p *domain.TrainingProgram) error {
	rows, err := r.db.QueryContext(ctx, `SELECT number, type, volume_modifier, intensity_modifier, start_date
		FROM periods WHERE program_id = ? ORDER BY number`, p.ID)
	if err != nil {
		return fmt.Errorf("loading periods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			period    domain.Period
			typ, date string
		)
		if err := rows.Scan(&period.Number, &typ, &period.VolumeModifier, &period.IntensityModifier, &date); err != nil {
			return fmt.Errorf("scanning period: %w", err)
		}
		period.Type = domain.PeriodType(typ)
		if period.StartDate, err = parseDate(date); err != nil {
			return fmt.Errorf("parsing period start_date: %w", err)
		}
		p.Periods = append(p.Periods, period)
	}
	return rows.Err()
}

func (r *SQLiteProgramRepo) loadDays(ctx context.Context, p *domain.TrainingProgram) error {
	rows, err := r.db.QueryContext(ctx, `SELECT period_number, day_index, label, rest,
		session_sets, priority_sets, maintenance_sets, estimated_minutes
		FROM days WHERE program_id = ? ORDER BY period_number, day_index`, p.ID)
	if err != nil {
		return fmt.Errorf("loading days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d            domain.Day
			periodNumber int
			label        string
			rest         int
		)
		if err := rows.Scan(&periodNumber, &d.Index, &label, &rest,
			&d.SessionSets, &d.PrioritySets, &d.MaintenanceSets, &d.EstimatedMinutes); err != nil {
			return fmt.Errorf("scanning day: %w", err)
		}
		d.Label = domain.DayLabel(label)
		d.Rest = intToBool(rest)
		period := p.Period(periodNumber)
		if period == nil {
			return fmt.Errorf("day references missing period %d", periodNumber)
		}
		period.Days = append(period.Days, d)
	}
	return rows.Err()
}

func (r *SQLiteProgramRepo) loadExercises(ctx context.Context, p *domain.TrainingProgram) error {
	rows, err := r.db.QueryContext(ctx, `SELECT period_number, day_index, exercise_order, exercise_id,
		exercise_name, muscle, sets, rep_range, rpe, rest_seconds, tempo, is_priority, why, priority_justification
		FROM prescribed_exercises WHERE program_id = ?
		ORDER BY period_number, day_index, exercise_order`, p.ID)
	if err != nil {
		return fmt.Errorf("loading prescribed exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e                    domain.PrescribedExercise
			periodNumber, dayIdx int
			priority             int
		)
		if err := rows.Scan(&periodNumber, &dayIdx, &e.Order, &e.ExerciseID, &e.ExerciseName, &e.Muscle,
			&e.Sets, &e.RepRange, &e.RPE, &e.RestSeconds, &e.Tempo, &priority, &e.Why, &e.PriorityJustification); err != nil {
			return fmt.Errorf("scanning prescribed exercise: %w", err)
		}
		e.IsPriority = intToBool(priority)
		d := p.Day(periodNumber, dayIdx)
		if d == nil {
			return fmt.Errorf("exercise references missing day %d.%d", periodNumber, dayIdx)
		}
		d.Exercises = append(d.Exercises, e)
	}
	return rows.Err()
}
