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

const exerciseColumns = `e.id, e.name, e.category, e.primary_muscle, e.secondary_muscles,
	e.equipment_type, e.stretch_bonus, e.tags, e.created_at, e.updated_at,
	m.brand, m.resistance_profile`

const exerciseFrom = `FROM exercises e LEFT JOIN machine_specs m ON m.exercise_id = e.id`

type SQLiteExerciseRepo struct {
	db db.DBTX
}

func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) Create(ctx context.Context, e *domain.Exercise) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO exercises
		(id, name, category, primary_muscle, secondary_muscles, equipment_type, stretch_bonus, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Name,
		e.Category,
		e.PrimaryMuscle,
		joinList(e.SecondaryMuscles),
		e.EquipmentType,
		boolToInt(e.StretchBonus),
		joinList(e.Tags),
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	if e.Machine != nil {
		_, err = r.db.ExecContext(ctx, `INSERT INTO machine_specs (exercise_id, brand, resistance_profile)
			VALUES (?, ?, ?)`, e.ID, e.Machine.Brand, e.Machine.ResistanceProfile)
		if err != nil {
			return fmt.Errorf("inserting machine spec: %w", err)
		}
	}
	return nil
}

func (r *SQLiteExerciseRepo) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` `+exerciseFrom+` WHERE e.id = ?`, id)
	return r.scanExercise(row)
}

func (r *SQLiteExerciseRepo) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` `+exerciseFrom+` WHERE e.name = ? COLLATE NOCASE`, name)
	return r.scanExercise(row)
}

func (r *SQLiteExerciseRepo) List(ctx context.Context) ([]*domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+exerciseColumns+` `+exerciseFrom+` ORDER BY e.name COLLATE NOCASE, e.id`)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()
	return r.scanExercises(rows)
}

func (r *SQLiteExerciseRepo) ListByPrimaryMuscle(ctx context.Context, muscle string) ([]*domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+exerciseColumns+` `+exerciseFrom+`
		WHERE e.primary_muscle = ? COLLATE NOCASE
		ORDER BY e.name COLLATE NOCASE, e.id`, muscle)
	if err != nil {
		return nil, fmt.Errorf("listing exercises by muscle: %w", err)
	}
	defer rows.Close()
	return r.scanExercises(rows)
}

func (r *SQLiteExerciseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteExerciseRepo) scanExercise(row *sql.Row) (*domain.Exercise, error) {
	e, err := scanExerciseRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning exercise: %w", err)
	}
	return e, nil
}

func (r *SQLiteExerciseRepo) scanExercises(rows *sql.Rows) ([]*domain.Exercise, error) {
	var out []*domain.Exercise
	for rows.Next() {
		e, err := scanExerciseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return out, nil
}

func scanExerciseRow(s rowScanner) (*domain.Exercise, error) {
	var (
		e                    domain.Exercise
		secondary, tags      string
		stretch              int
		createdAt, updatedAt string
		brand, profile       sql.NullString
	)
	if err := s.Scan(&e.ID, &e.Name, &e.Category, &e.PrimaryMuscle, &secondary,
		&e.EquipmentType, &stretch, &tags, &createdAt, &updatedAt, &brand, &profile); err != nil {
		return nil, err
	}
	e.SecondaryMuscles = splitList(secondary)
	e.Tags = splitList(tags)
	e.StretchBonus = intToBool(stretch)

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	if brand.Valid {
		e.Machine = &domain.MachineSpec{ExerciseID: e.ID, Brand: brand.String, ResistanceProfile: profile.String}
	}
	return &e, nil
}
