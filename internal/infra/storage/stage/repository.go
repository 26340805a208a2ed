package stage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/pkg/dbmetrics"
	"github.com/FHLn-git/SoundPath-sub003/pkg/psqlbuilder"
)

// DBExecutor общий интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

var stageColumns = []string{
	"id",
	"venue_id",
	"name",
	"operating_hours",
	"capacity",
	"tech_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со сценами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сцен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую сцену
func (r *Repository) Create(ctx context.Context, s *domain.Stage) (*domain.Stage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hours, err := encodeHours(s.OperatingHours)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("stages").
		Columns("venue_id", "name", "operating_hours", "capacity", "tech_notes").
		Values(s.VenueID, s.Name, hours, s.Capacity, s.TechNotes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сцену по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Stage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stageColumns...).
		From("stages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStage(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stage: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetAllByVenue получает все сцены площадки
func (r *Repository) GetAllByVenue(ctx context.Context, venueID int64) ([]*domain.Stage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stageColumns...).
		From("stages").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stages := make([]*domain.Stage, 0)
	for rows.Next() {
		s, err := scanStage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByVenue - scan stage row: %v", ErrScanRow, err)
		}
		stages = append(stages, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByVenue - iterate rows: %v", ErrExecQuery, err)
	}

	return stages, nil
}

// UpdateOperatingHours заменяет недельное расписание сцены целиком
func (r *Repository) UpdateOperatingHours(ctx context.Context, id int64, hours domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := encodeHours(hours)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("stages").
		Set("operating_hours", encoded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStageNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStage(row rowScanner) (*domain.Stage, error) {
	var s domain.Stage
	var hoursRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.VenueID,
		&s.Name,
		&hoursRaw,
		&s.Capacity,
		&s.TechNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(hoursRaw) > 0 {
		if err := json.Unmarshal(hoursRaw, &s.OperatingHours); err != nil {
			return nil, fmt.Errorf("decode operating hours: %v", err)
		}
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func encodeHours(hours domain.OperatingHours) ([]byte, error) {
	if hours == nil {
		hours = domain.OperatingHours{}
	}
	data, err := json.Marshal(hours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeHours, err)
	}
	return data, nil
}
