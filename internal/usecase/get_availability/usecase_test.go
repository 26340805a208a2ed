package get_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/pkg/ptr"
	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

type stubShowRepo struct {
	shows []*domain.Show
	err   error
	calls int
}

func (r *stubShowRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueShowsFilter) ([]*domain.Show, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Show
	for _, s := range r.shows {
		if s.VenueID != filter.VenueID {
			continue
		}
		if filter.StartDate != nil && s.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && s.Date > *filter.EndDate {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func show(venueID int64, date string, status domain.ShowStatus, stageID *int64) *domain.Show {
	return &domain.Show{
		VenueID: venueID,
		Title:   "show",
		StageID: stageID,
		Date:    date,
		Status:  status,
	}
}

func TestExecute(t *testing.T) {
	mainStage := ptr.Ptr(int64(100))

	t.Run("confirmed shows block dates", func(t *testing.T) {
		repo := &stubShowRepo{shows: []*domain.Show{
			show(10, "2025-06-02", domain.StatusConfirmed, mainStage),
			show(10, "2025-06-04", domain.StatusOnSale, mainStage),
		}}
		uc := NewUseCase(repo, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			UserID: 1, VenueID: 10,
			From: "2025-06-01", To: "2025-06-05",
			IncludeConfirms: true,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-06-01", "2025-06-03", "2025-06-05"}, resp.Dates)
		assert.Equal(t, 2, resp.BusyCount)
	})

	t.Run("holds only block when requested", func(t *testing.T) {
		repo := &stubShowRepo{shows: []*domain.Show{
			show(10, "2025-06-02", domain.StatusHold, mainStage),
		}}
		uc := NewUseCase(repo, noopLogger{})

		withoutHolds, err := uc.Execute(context.Background(), &Request{
			UserID: 1, VenueID: 10, From: "2025-06-01", To: "2025-06-03",
		})
		require.NoError(t, err)
		assert.Contains(t, withoutHolds.Dates, "2025-06-02")

		withHolds, err := uc.Execute(context.Background(), &Request{
			UserID: 1, VenueID: 10, From: "2025-06-01", To: "2025-06-03",
			IncludeHolds: true,
		})
		require.NoError(t, err)
		assert.NotContains(t, withHolds.Dates, "2025-06-02")
	})

	t.Run("stage filter ignores shows on other stages", func(t *testing.T) {
		repo := &stubShowRepo{shows: []*domain.Show{
			show(10, "2025-06-02", domain.StatusConfirmed, ptr.Ptr(int64(200))),
		}}
		uc := NewUseCase(repo, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			UserID: 1, VenueID: 10,
			From: "2025-06-01", To: "2025-06-03",
			StageIDs:        []int64{100},
			IncludeConfirms: true,
		})

		require.NoError(t, err)
		assert.Contains(t, resp.Dates, "2025-06-02")
	})

	t.Run("weekday filter", func(t *testing.T) {
		// 2025-06-01 воскресенье, 2025-06-07 суббота
		uc := NewUseCase(&stubShowRepo{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			UserID: 1, VenueID: 10,
			From: "2025-06-01", To: "2025-06-14",
			OnlyDays: []int{5, 6},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-06-06", "2025-06-07", "2025-06-13", "2025-06-14"}, resp.Dates)
	})

	t.Run("idempotent for a fixed snapshot", func(t *testing.T) {
		repo := &stubShowRepo{shows: []*domain.Show{
			show(10, "2025-06-02", domain.StatusConfirmed, mainStage),
		}}
		uc := NewUseCase(repo, noopLogger{})
		req := &Request{
			UserID: 1, VenueID: 10,
			From: "2025-06-01", To: "2025-06-05",
			IncludeConfirms: true,
		}

		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first.Dates, second.Dates)
		assert.Equal(t, first.Formatted, second.Formatted)
	})

	t.Run("busy and available partition the range", func(t *testing.T) {
		repo := &stubShowRepo{shows: []*domain.Show{
			show(10, "2025-06-01", domain.StatusConfirmed, mainStage),
			show(10, "2025-06-03", domain.StatusHold, mainStage),
			show(10, "2025-06-03", domain.StatusConfirmed, mainStage),
		}}
		uc := NewUseCase(repo, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			UserID: 1, VenueID: 10,
			From: "2025-06-01", To: "2025-06-05",
			IncludeHolds: true, IncludeConfirms: true,
		})

		require.NoError(t, err)
		assert.Len(t, resp.Dates, len(types.EnumerateDates("2025-06-01", "2025-06-05"))-resp.BusyCount)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewUseCase(&stubShowRepo{}, noopLogger{})

		tests := []struct {
			name string
			req  Request
			want error
		}{
			{"bad venue", Request{VenueID: 0, From: "2025-06-01", To: "2025-06-02"}, ErrInvalidVenueID},
			{"malformed from", Request{VenueID: 10, From: "06/01/2025", To: "2025-06-02"}, ErrInvalidDateRange},
			{"inverted range", Request{VenueID: 10, From: "2025-06-05", To: "2025-06-01"}, ErrInvalidDateRange},
			{"bad weekday", Request{VenueID: 10, From: "2025-06-01", To: "2025-06-02", OnlyDays: []int{7}}, ErrInvalidOnlyDays},
			{"bad style", Request{VenueID: 10, From: "2025-06-01", To: "2025-06-02", Style: "fancy"}, ErrInvalidStyle},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), &tt.req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestFormatAvails(t *testing.T) {
	dates := []string{"2025-06-01", "2025-06-03", "2025-06-05"}

	tests := []struct {
		name  string
		dates []string
		style string
		want  string
	}{
		{"short", dates, StyleShort, "Jun 1, Jun 3, Jun 5"},
		{"default is short", dates, "", "Jun 1, Jun 3, Jun 5"},
		{"long", dates, StyleLong, "Sunday, June 1, 2025\nTuesday, June 3, 2025\nThursday, June 5, 2025"},
		{"csv", dates, StyleCSV, "2025-06-01\n2025-06-03\n2025-06-05"},
		{"empty short", nil, StyleShort, NoAvailableDates},
		{"empty csv", nil, StyleCSV, NoAvailableDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAvails(tt.dates, tt.style))
		})
	}
}

func TestAvailableDates(t *testing.T) {
	busy := map[string]struct{}{"2025-06-02": {}}

	t.Run("skips busy dates", func(t *testing.T) {
		got := AvailableDates("2025-06-01", "2025-06-03", busy, nil)
		assert.Equal(t, []string{"2025-06-01", "2025-06-03"}, got)
	})

	t.Run("empty on inverted range", func(t *testing.T) {
		got := AvailableDates("2025-06-03", "2025-06-01", nil, nil)
		assert.Empty(t, got)
	})
}
