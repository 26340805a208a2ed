package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid show status")
)

// Request модели

// CreateShowRequest запрос на создание шоу
// Промоутерский wizard создает шоу в статусе draft; hold с рангом
// ставится отдельным переходом статуса
type CreateShowRequest struct {
	UserID          int64             `json:"userId"`
	VenueID         int64             `json:"venueId"`
	Title           string            `json:"title"`
	StageID         *int64            `json:"stageId,omitempty"`
	IsMultiStage    bool              `json:"isMultiStage,omitempty"`
	LinkedStageIDs  []int64           `json:"linkedStageIds,omitempty"`
	Date            string            `json:"date"`
	LoadIn          string            `json:"loadIn,omitempty"`
	Soundcheck      string            `json:"soundcheck,omitempty"`
	Doors           string            `json:"doors,omitempty"`
	Curfew          string            `json:"curfew,omitempty"`
	LoadOut         string            `json:"loadOut,omitempty"`
	Status          *string           `json:"status,omitempty"`
	HoldRank        *int              `json:"holdRank,omitempty"`
	HoldAutoPromote bool              `json:"holdAutoPromote,omitempty"`
	ArtistID        *int64            `json:"artistId,omitempty"`
	Guarantee       *decimal.Decimal  `json:"guarantee,omitempty"`
	DoorSplitPct    *decimal.Decimal  `json:"doorSplitPct,omitempty"`
}

// ToDomainShow конвертирует request в domain модель
func (r *CreateShowRequest) ToDomainShow() (*domain.Show, error) {
	status := domain.StatusDraft
	if r.Status != nil {
		s, err := ToDomainShowStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	return &domain.Show{
		VenueID:         r.VenueID,
		Title:           r.Title,
		StageID:         r.StageID,
		IsMultiStage:    r.IsMultiStage,
		LinkedStageIDs:  r.LinkedStageIDs,
		Date:            r.Date,
		LoadIn:          types.TimeString(r.LoadIn),
		Soundcheck:      types.TimeString(r.Soundcheck),
		Doors:           types.TimeString(r.Doors),
		Curfew:          types.TimeString(r.Curfew),
		LoadOut:         types.TimeString(r.LoadOut),
		Status:          status,
		HoldRank:        r.HoldRank,
		HoldAutoPromote: r.HoldAutoPromote,
		ArtistID:        r.ArtistID,
		Guarantee:       r.Guarantee,
		DoorSplitPct:    r.DoorSplitPct,
	}, nil
}

// UpdateStatusRequest запрос на смену статуса шоу
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// CancelShowRequest запрос на отмену шоу
type CancelShowRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason,omitempty"`
}

// ListShowsRequest запрос на получение шоу площадки
type ListShowsRequest struct {
	UserID           int64   `json:"userId"`
	VenueID          int64   `json:"venueId"`
	StageID          *int64  `json:"stageId,omitempty"`
	StartDate        *string `json:"startDate,omitempty"`
	EndDate          *string `json:"endDate,omitempty"`
	Status           *string `json:"status,omitempty"`
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListShowsRequest) ToDomainFilter() (domain.VenueShowsFilter, error) {
	filter := domain.VenueShowsFilter{
		VenueID:          r.VenueID,
		StageID:          r.StageID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainShowStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ReleaseHoldRequest запрос на снятие холда
// Outcome - статус, в который переходит снимаемый холд
type ReleaseHoldRequest struct {
	UserID  int64  `json:"userId"`
	Outcome string `json:"outcome"` // open | confirmed | cancelled
}

// Response модели

// ShowResponse ответ с данными шоу
type ShowResponse struct {
	ID              int64    `json:"id"`
	VenueID         int64    `json:"venueId"`
	Title           string   `json:"title"`
	StageID         *int64   `json:"stageId,omitempty"`
	IsMultiStage    bool     `json:"isMultiStage"`
	LinkedStageIDs  []int64  `json:"linkedStageIds,omitempty"`
	Date            string   `json:"date"`
	LoadIn          string   `json:"loadIn,omitempty"`
	Soundcheck      string   `json:"soundcheck,omitempty"`
	Doors           string   `json:"doors,omitempty"`
	Curfew          string   `json:"curfew,omitempty"`
	LoadOut         string   `json:"loadOut,omitempty"`
	Status          string   `json:"status"`
	HoldRank        *int     `json:"holdRank,omitempty"`
	HoldAutoPromote bool     `json:"holdAutoPromote"`

	ArtistID   *int64  `json:"artistId,omitempty"`
	ArtistName *string `json:"artistName,omitempty"`

	Guarantee             *decimal.Decimal `json:"guarantee,omitempty"`
	DoorSplitPct          *decimal.Decimal `json:"doorSplitPct,omitempty"`
	TicketRevenue         *decimal.Decimal `json:"ticketRevenue,omitempty"`
	SettlementAmount      *decimal.Decimal `json:"settlementAmount,omitempty"`
	SettlementNotes       *string          `json:"settlementNotes,omitempty"`
	SettlementFinalizedAt *string          `json:"settlementFinalizedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShowListResponse ответ со списком шоу
type ShowListResponse struct {
	Shows []ShowResponse `json:"shows"`
}

// HoldQueueEntry одна позиция в очереди холдов
type HoldQueueEntry struct {
	ShowID          int64  `json:"showId"`
	Title           string `json:"title"`
	HoldRank        *int   `json:"holdRank,omitempty"`
	HoldAutoPromote bool   `json:"holdAutoPromote"`
}

// HoldQueueResponse очередь холдов на дату, отсортированная по приоритету
type HoldQueueResponse struct {
	VenueID int64            `json:"venueId"`
	Date    string           `json:"date"`
	Queue   []HoldQueueEntry `json:"queue"`
}

// Методы конвертации

// FromDomainShow конвертирует domain модель в DTO
func FromDomainShow(s *domain.Show) *ShowResponse {
	if s == nil {
		return nil
	}

	resp := &ShowResponse{
		ID:              s.ID,
		VenueID:         s.VenueID,
		Title:           s.Title,
		StageID:         s.StageID,
		IsMultiStage:    s.IsMultiStage,
		LinkedStageIDs:  s.LinkedStageIDs,
		Date:            s.Date,
		LoadIn:          s.LoadIn.String(),
		Soundcheck:      s.Soundcheck.String(),
		Doors:           s.Doors.String(),
		Curfew:          s.Curfew.String(),
		LoadOut:         s.LoadOut.String(),
		Status:          string(s.Status),
		HoldRank:        s.HoldRank,
		HoldAutoPromote: s.HoldAutoPromote,
		ArtistID:        s.ArtistID,
		ArtistName:      s.ArtistName,
		Guarantee:       s.Guarantee,
		DoorSplitPct:    s.DoorSplitPct,
		TicketRevenue:   s.TicketRevenue,

		SettlementAmount: s.SettlementAmount,
		SettlementNotes:  s.SettlementNotes,

		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.SettlementFinalizedAt != nil {
		finalized := s.SettlementFinalizedAt.Format(time.RFC3339)
		resp.SettlementFinalizedAt = &finalized
	}

	return resp
}

// FromDomainShowList конвертирует список domain моделей в DTO
func FromDomainShowList(shows []*domain.Show) *ShowListResponse {
	resp := &ShowListResponse{
		Shows: make([]ShowResponse, 0, len(shows)),
	}
	for _, s := range shows {
		resp.Shows = append(resp.Shows, *FromDomainShow(s))
	}
	return resp
}

// ToDomainShowStatus конвертирует строку в domain статус
func ToDomainShowStatus(s string) (domain.ShowStatus, error) {
	status := domain.ShowStatus(s)
	switch status {
	case domain.StatusDraft,
		domain.StatusOpen,
		domain.StatusHold,
		domain.StatusHold1,
		domain.StatusHold2,
		domain.StatusChallenged,
		domain.StatusConfirmed,
		domain.StatusPendingApproval,
		domain.StatusOnSale,
		domain.StatusCancelled,
		domain.StatusCompleted:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
