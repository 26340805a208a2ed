package models

import (
	"time"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// Request модели

// HoursWindow окно рабочих часов в формате HH:MM
// Окно через полночь (start > end) допустимо
type HoursWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateStageRequest запрос на создание сцены
type CreateStageRequest struct {
	UserID         int64                   `json:"userId"`
	VenueID        int64                   `json:"venueId"`
	Name           string                  `json:"name"`
	OperatingHours map[string]*HoursWindow `json:"operatingHours,omitempty"`
	Capacity       *int                    `json:"capacity,omitempty"`
	TechNotes      *string                 `json:"techNotes,omitempty"`
}

// ToDomainStage конвертирует request в domain модель
func (r *CreateStageRequest) ToDomainStage() *domain.Stage {
	return &domain.Stage{
		VenueID:        r.VenueID,
		Name:           r.Name,
		OperatingHours: ToDomainOperatingHours(r.OperatingHours),
		Capacity:       r.Capacity,
		TechNotes:      r.TechNotes,
	}
}

// UpdateHoursRequest запрос на обновление рабочих часов сцены
type UpdateHoursRequest struct {
	UserID         int64                   `json:"userId"`
	OperatingHours map[string]*HoursWindow `json:"operatingHours"`
}

// CheckHoursRequest запрос на проверку таймингов шоу против часов сцены
type CheckHoursRequest struct {
	Date   string `json:"date"`
	Doors  string `json:"doors"`
	Curfew string `json:"curfew"`
}

// Response модели

// StageResponse ответ с данными сцены
type StageResponse struct {
	ID             int64                   `json:"id"`
	VenueID        int64                   `json:"venueId"`
	Name           string                  `json:"name"`
	OperatingHours map[string]*HoursWindow `json:"operatingHours,omitempty"`
	Capacity       *int                    `json:"capacity,omitempty"`
	TechNotes      *string                 `json:"techNotes,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// StageListResponse ответ со списком сцен
type StageListResponse struct {
	Stages []StageResponse `json:"stages"`
}

// CheckHoursResponse вердикт проверки таймингов
// OutsideHours = true, когда doors или curfew выходят за рабочие часы
// либо сцена закрыта в этот день недели
type CheckHoursResponse struct {
	StageID      int64  `json:"stageId"`
	Date         string `json:"date"`
	WeekdayKey   string `json:"weekdayKey"`
	OutsideHours bool   `json:"outsideHours"`
}

// Методы конвертации

// ToDomainOperatingHours конвертирует DTO часы в domain модель
func ToDomainOperatingHours(hours map[string]*HoursWindow) domain.OperatingHours {
	if hours == nil {
		return nil
	}
	out := make(domain.OperatingHours, len(hours))
	for day, w := range hours {
		if w == nil {
			out[day] = nil
			continue
		}
		out[day] = &domain.HoursWindow{
			Start: types.TimeString(w.Start),
			End:   types.TimeString(w.End),
		}
	}
	return out
}

// FromDomainOperatingHours конвертирует domain часы в DTO
func FromDomainOperatingHours(hours domain.OperatingHours) map[string]*HoursWindow {
	if hours == nil {
		return nil
	}
	out := make(map[string]*HoursWindow, len(hours))
	for day, w := range hours {
		if w == nil {
			out[day] = nil
			continue
		}
		out[day] = &HoursWindow{
			Start: w.Start.String(),
			End:   w.End.String(),
		}
	}
	return out
}

// FromDomainStage конвертирует domain модель в DTO
func FromDomainStage(s *domain.Stage) *StageResponse {
	if s == nil {
		return nil
	}
	return &StageResponse{
		ID:             s.ID,
		VenueID:        s.VenueID,
		Name:           s.Name,
		OperatingHours: FromDomainOperatingHours(s.OperatingHours),
		Capacity:       s.Capacity,
		TechNotes:      s.TechNotes,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainStageList конвертирует список domain моделей в DTO
func FromDomainStageList(stages []*domain.Stage) *StageListResponse {
	resp := &StageListResponse{
		Stages: make([]StageResponse, 0, len(stages)),
	}
	for _, s := range stages {
		resp.Stages = append(resp.Stages, *FromDomainStage(s))
	}
	return resp
}
