package compute_settlement

import (
	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// PreviewRequest запрос предварительного расчёта
// Overrides позволяют промоутеру прикинуть выплату до ввода фактической кассы
type PreviewRequest struct {
	UserID int64 `json:"userId"`
	ShowID int64 `json:"showId"`

	// Overrides подменяют сохранённые финансовые поля шоу на время расчёта
	Guarantee     *decimal.Decimal     `json:"guarantee,omitempty"`
	DoorSplitPct  *decimal.Decimal     `json:"doorSplitPct,omitempty"`
	TicketRevenue *decimal.Decimal     `json:"ticketRevenue,omitempty"`
	Expenses      []domain.ExpenseItem `json:"expenses,omitempty"`
}

// FinalizeRequest запрос финализации расчёта
type FinalizeRequest struct {
	UserID int64   `json:"userId"`
	ShowID int64   `json:"showId"`
	Notes  *string `json:"notes,omitempty"`
}

// Response результат расчёта
type Response struct {
	ShowID     int64   `json:"showId"`
	ArtistName *string `json:"artistName,omitempty"`

	GuaranteeAmount    decimal.Decimal `json:"guaranteeAmount"`
	DoorSplitAmount    decimal.Decimal `json:"doorSplitAmount"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	AmountOwedToArtist decimal.Decimal `json:"amountOwedToArtist"`
	Breakdown          []string        `json:"breakdown"`

	// PnL прибыль площадки: касса минус выплата минус расходы
	PnL decimal.Decimal `json:"pnl"`

	Finalized   bool    `json:"finalized"`
	FinalizedAt *string `json:"finalizedAt,omitempty"` // ISO 8601
}
