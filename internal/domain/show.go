package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// ShowStatus represents the lifecycle status of a show
type ShowStatus string

const (
	StatusDraft           ShowStatus = "draft"
	StatusOpen            ShowStatus = "open"
	StatusHold            ShowStatus = "hold"
	StatusHold1           ShowStatus = "hold_1"
	StatusHold2           ShowStatus = "hold_2"
	StatusChallenged      ShowStatus = "challenged"
	StatusConfirmed       ShowStatus = "confirmed"
	StatusPendingApproval ShowStatus = "pending-approval"
	StatusOnSale          ShowStatus = "on_sale"
	StatusCancelled       ShowStatus = "cancelled"
	StatusCompleted       ShowStatus = "completed"
)

// Show represents one scheduled or proposed event on a venue calendar
type Show struct {
	ID      int64
	VenueID int64
	Title   string

	// Placement. StageID == nil means venue-level, no specific stage.
	// When IsMultiStage is true the show occupies every stage in
	// LinkedStageIDs and StageID is ignored for conflict purposes.
	StageID        *int64
	IsMultiStage   bool
	LinkedStageIDs []int64

	// Temporal. Date is a calendar day, никакой конвертации таймзон
	// движок не делает - сравнение дат строковое.
	Date       string
	LoadIn     types.TimeString
	Soundcheck types.TimeString
	Doors      types.TimeString
	Curfew     types.TimeString
	LoadOut    types.TimeString

	Status ShowStatus

	// Ranking among competing holds on the same date/stage.
	// Lower rank = higher priority; nil = unranked (sorts last).
	HoldRank        *int
	HoldAutoPromote bool

	// Financials
	ArtistID              *int64
	ArtistName            *string
	Guarantee             *decimal.Decimal
	DoorSplitPct          *decimal.Decimal
	TicketRevenue         *decimal.Decimal
	Expenses              []ExpenseItem
	SettlementAmount      *decimal.Decimal
	SettlementNotes       *string
	SettlementFinalizedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHold returns true if the show is an unranked hold
func (s *Show) IsHold() bool {
	return s.Status == StatusHold
}

// IsRankedHold returns true for the ranked hold variants
func (s *Show) IsRankedHold() bool {
	return s.Status == StatusHold1 || s.Status == StatusHold2
}

// IsConfirmLike returns true for the statuses that represent a locked-in show
func (s *Show) IsConfirmLike() bool {
	return s.Status == StatusConfirmed || s.Status == StatusOnSale || s.Status == StatusCompleted
}

// IsTerminal returns true if the show has reached a terminal lifecycle state
func (s *Show) IsTerminal() bool {
	return s.Status == StatusCancelled || s.Status == StatusCompleted
}

// CanBeCancelled returns true if the show can still be cancelled
func (s *Show) CanBeCancelled() bool {
	return s.Status != StatusCancelled && s.Status != StatusCompleted
}

// IsSettled returns true once the settlement has been finalized
func (s *Show) IsSettled() bool {
	return s.SettlementFinalizedAt != nil
}

// OccupiedStageIDs returns the stages the show occupies for conflict purposes
func (s *Show) OccupiedStageIDs() []int64 {
	if s.IsMultiStage {
		return s.LinkedStageIDs
	}
	if s.StageID != nil {
		return []int64{*s.StageID}
	}
	return nil
}
