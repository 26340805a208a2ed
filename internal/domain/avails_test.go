package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FHLn-git/SoundPath-sub003/pkg/ptr"
)

func TestShowBlocksStages(t *testing.T) {
	single := &Show{StageID: ptr.Ptr(int64(1))}
	venueLevel := &Show{}
	festival := &Show{IsMultiStage: true, LinkedStageIDs: []int64{1, 2}}

	// empty filter = venue-wide query, any show blocks
	assert.True(t, ShowBlocksStages(single, nil))
	assert.True(t, ShowBlocksStages(venueLevel, nil))
	assert.True(t, ShowBlocksStages(festival, []int64{}))

	assert.True(t, ShowBlocksStages(single, []int64{1, 3}))
	assert.False(t, ShowBlocksStages(single, []int64{2}))
	assert.False(t, ShowBlocksStages(venueLevel, []int64{1}))

	// multi-stage показывает конфликт по любой из связанных сцен,
	// даже при StageID == nil
	assert.True(t, ShowBlocksStages(festival, []int64{2}))
	assert.False(t, ShowBlocksStages(festival, []int64{3}))
}

func TestCountsAsBusy(t *testing.T) {
	q := AvailsQuery{IncludeHolds: true, IncludeConfirms: true}

	tests := []struct {
		status ShowStatus
		want   bool
	}{
		{StatusHold, true},
		{StatusConfirmed, true},
		{StatusOnSale, true},
		{StatusCompleted, true},
		{StatusDraft, false},
		{StatusOpen, false},
		{StatusChallenged, false},
		{StatusCancelled, false},
		{StatusPendingApproval, false},
		// ranked holds are not busy under current policy
		{StatusHold1, false},
		{StatusHold2, false},
	}

	for _, tt := range tests {
		show := &Show{Status: tt.status, Date: "2025-06-01"}
		assert.Equal(t, tt.want, show.CountsAsBusy(q), "status %s", tt.status)
	}
}

func TestCountsAsBusyRespectsToggles(t *testing.T) {
	hold := &Show{Status: StatusHold, Date: "2025-06-01"}
	confirmed := &Show{Status: StatusConfirmed, Date: "2025-06-01"}

	assert.False(t, hold.CountsAsBusy(AvailsQuery{IncludeConfirms: true}))
	assert.True(t, hold.CountsAsBusy(AvailsQuery{IncludeHolds: true}))
	assert.False(t, confirmed.CountsAsBusy(AvailsQuery{IncludeHolds: true}))
	assert.True(t, confirmed.CountsAsBusy(AvailsQuery{IncludeConfirms: true}))
}

func TestBusyDatesSetSemantics(t *testing.T) {
	shows := []*Show{
		{Status: StatusConfirmed, Date: "2025-06-01"},
		{Status: StatusConfirmed, Date: "2025-06-01"}, // same date, collapses
		{Status: StatusHold, Date: "2025-06-02"},
		{Status: StatusDraft, Date: "2025-06-03"},
	}

	busy := BusyDates(shows, AvailsQuery{IncludeHolds: true, IncludeConfirms: true})

	assert.Len(t, busy, 2)
	assert.Contains(t, busy, "2025-06-01")
	assert.Contains(t, busy, "2025-06-02")
	assert.NotContains(t, busy, "2025-06-03")
}

func TestBusyDatesMultiStage(t *testing.T) {
	shows := []*Show{
		{Status: StatusConfirmed, Date: "2025-07-04", IsMultiStage: true, LinkedStageIDs: []int64{10, 20}},
	}

	busy := BusyDates(shows, AvailsQuery{StageIDs: []int64{20}, IncludeConfirms: true})
	assert.Contains(t, busy, "2025-07-04")

	busy = BusyDates(shows, AvailsQuery{StageIDs: []int64{30}, IncludeConfirms: true})
	assert.Empty(t, busy)
}
