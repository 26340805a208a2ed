package show

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShow(row rowScanner) (*domain.Show, error) {
	var s domain.Show

	var (
		showDate              sql.NullTime
		linkedStageIDs        pq.Int64Array
		guarantee             decimal.NullDecimal
		doorSplitPct          decimal.NullDecimal
		ticketRevenue         decimal.NullDecimal
		settlementAmount      decimal.NullDecimal
		expensesRaw           []byte
		settlementFinalizedAt sql.NullTime
		createdAt, updatedAt  sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.VenueID,
		&s.Title,
		&s.StageID,
		&s.IsMultiStage,
		&linkedStageIDs,
		&showDate,
		&s.LoadIn,
		&s.Soundcheck,
		&s.Doors,
		&s.Curfew,
		&s.LoadOut,
		&s.Status,
		&s.HoldRank,
		&s.HoldAutoPromote,
		&s.ArtistID,
		&s.ArtistName,
		&guarantee,
		&doorSplitPct,
		&ticketRevenue,
		&expensesRaw,
		&settlementAmount,
		&s.SettlementNotes,
		&settlementFinalizedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.LinkedStageIDs = []int64(linkedStageIDs)
	if showDate.Valid {
		s.Date = showDate.Time.Format(domain.DateFormat)
	}
	s.Guarantee = decimalPtr(guarantee)
	s.DoorSplitPct = decimalPtr(doorSplitPct)
	s.TicketRevenue = decimalPtr(ticketRevenue)
	s.SettlementAmount = decimalPtr(settlementAmount)

	if len(expensesRaw) > 0 {
		// Расходы хранятся как jsonb; мусорные элементы уже
		// приводятся к нулю на этапе разбора ExpenseItem
		if err := json.Unmarshal(expensesRaw, &s.Expenses); err != nil {
			return nil, fmt.Errorf("decode expenses: %v", err)
		}
	}

	if settlementFinalizedAt.Valid {
		t := settlementFinalizedAt.Time
		s.SettlementFinalizedAt = &t
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanShows(rows *sql.Rows) ([]*domain.Show, error) {
	shows := make([]*domain.Show, 0)

	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan show row: %v", ErrScanRow, err)
		}
		shows = append(shows, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}

	return shows, nil
}
