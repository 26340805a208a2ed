package show

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/pkg/dbmetrics"
	"github.com/FHLn-git/SoundPath-sub003/pkg/psqlbuilder"
)

var showColumns = []string{
	"id",
	"venue_id",
	"title",
	"stage_id",
	"is_multi_stage",
	"linked_stage_ids",
	"show_date",
	"load_in",
	"soundcheck",
	"doors",
	"curfew",
	"load_out",
	"status",
	"hold_rank",
	"hold_auto_promote",
	"artist_id",
	"artist_name",
	"guarantee",
	"door_split_pct",
	"ticket_revenue",
	"expenses",
	"settlement_amount",
	"settlement_notes",
	"settlement_finalized_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с шоу
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шоу
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое шоу
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, s *domain.Show) (*domain.Show, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	expenses, err := encodeExpenses(s.Expenses)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("shows").
		Columns(
			"venue_id",
			"title",
			"stage_id",
			"is_multi_stage",
			"linked_stage_ids",
			"show_date",
			"load_in",
			"soundcheck",
			"doors",
			"curfew",
			"load_out",
			"status",
			"hold_rank",
			"hold_auto_promote",
			"artist_id",
			"artist_name",
			"guarantee",
			"door_split_pct",
			"ticket_revenue",
			"expenses",
			"settlement_notes",
		).
		Values(
			s.VenueID,
			s.Title,
			s.StageID,
			s.IsMultiStage,
			pq.Array(s.LinkedStageIDs),
			s.Date,
			s.LoadIn,
			s.Soundcheck,
			s.Doors,
			s.Curfew,
			s.LoadOut,
			s.Status,
			s.HoldRank,
			s.HoldAutoPromote,
			s.ArtistID,
			s.ArtistName,
			nullDecimal(s.Guarantee),
			nullDecimal(s.DoorSplitPct),
			nullDecimal(s.TicketRevenue),
			expenses,
			s.SettlementNotes,
		).
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

// GetByID получает шоу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Show, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(showColumns...).
		From("shows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanShow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrShowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan show: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByVenueWithFilter получает шоу площадки с гибкой фильтрацией.
// Фильтр по сцене отбирает шоу, занимающие сцену напрямую ИЛИ через
// linked_stage_ids; multi-stage блокировка дальше разбирается движком.
func (r *Repository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueShowsFilter) ([]*domain.Show, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(showColumns...).
		From("shows").
		Where(squirrel.Eq{"venue_id": filter.VenueID}).
		OrderBy("show_date ASC, doors ASC, id ASC")

	if filter.StageID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"stage_id": *filter.StageID},
			squirrel.Expr("? = ANY(linked_stage_ids)", *filter.StageID),
		})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"show_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"show_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShows(rows)
}

// GetHoldsByVenueAndDate получает все холды площадки на дату.
// Выбирается статус hold целиком; сортировка по рангу - на стороне движка.
func (r *Repository) GetHoldsByVenueAndDate(ctx context.Context, venueID int64, date string) ([]*domain.Show, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(showColumns...).
		From("shows").
		Where(squirrel.Eq{
			"venue_id":  venueID,
			"show_date": date,
			"status":    domain.StatusHold,
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHoldsByVenueAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoldsByVenueAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShows(rows)
}

// UpdateStatus обновляет статус шоу
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ShowStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shows").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res)
}

// ReleaseHold снимает холд: переводит шоу в новый статус и очищает ранг
func (r *Repository) ReleaseHold(ctx context.Context, id int64, status domain.ShowStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shows").
		Set("status", status).
		Set("hold_rank", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusHold}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseHold - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseHold - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res)
}

// UpdateHoldRank устанавливает новый ранг холда
func (r *Repository) UpdateHoldRank(ctx context.Context, id int64, rank int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shows").
		Set("hold_rank", rank).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateHoldRank - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateHoldRank - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res)
}

// FinalizeSettlement сохраняет рассчитанный расчёт и фиксирует момент финализации
func (r *Repository) FinalizeSettlement(ctx context.Context, id int64, amount decimal.Decimal, notes *string, finalizedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shows").
		Set("settlement_amount", amount).
		Set("settlement_notes", notes).
		Set("settlement_finalized_at", finalizedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"settlement_finalized_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: FinalizeSettlement - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: FinalizeSettlement - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrShowNotFound
	}
	return nil
}

func encodeExpenses(expenses []domain.ExpenseItem) ([]byte, error) {
	if expenses == nil {
		expenses = []domain.ExpenseItem{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeExpenses, err)
	}
	return data, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
