package import_calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/pkg/ptr"
)

type stubShowRepo struct {
	shows []*domain.Show
}

func (r *stubShowRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueShowsFilter) ([]*domain.Show, error) {
	var out []*domain.Show
	for _, s := range r.shows {
		if s.VenueID == filter.VenueID {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubStageRepo struct {
	stages []*domain.Stage
}

func (r *stubStageRepo) GetAllByVenue(_ context.Context, venueID int64) ([]*domain.Stage, error) {
	return r.stages, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestParseTable(t *testing.T) {
	t.Run("us dates normalized to iso", func(t *testing.T) {
		rows, skipped, err := ParseTable("Date,Artist,Stage\n03/14/2025,Jane Doe,Main Room")

		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, rows, 1)
		assert.Equal(t, Row{Date: "2025-03-14", Name: "Jane Doe", Stage: "Main Room"}, rows[0])
	})

	t.Run("iso dates pass through", func(t *testing.T) {
		rows, _, err := ParseTable("date,name\n2025-06-01,Opener")

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2025-06-01", rows[0].Date)
	})

	t.Run("header columns are case-insensitive", func(t *testing.T) {
		rows, _, err := ParseTable("DATE,EVENT,ROOM\n2025-06-01,Album Release,Loft")

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Album Release", rows[0].Name)
		assert.Equal(t, "Loft", rows[0].Stage)
	})

	t.Run("bad rows are silently dropped", func(t *testing.T) {
		payload := "date,name\n" +
			"2025-06-01,Keeper\n" +
			"not a date,Dropped\n" +
			"2025-06-02,\n" +
			"2025-06-03"

		rows, skipped, err := ParseTable(payload)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Keeper", rows[0].Name)
		assert.Equal(t, 3, skipped)
	})

	t.Run("missing required columns", func(t *testing.T) {
		_, _, err := ParseTable("when,who\n2025-06-01,Jane")

		assert.ErrorIs(t, err, ErrMissingColumns)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, _, err := ParseTable("  \n ")

		assert.ErrorIs(t, err, ErrEmptyPayload)
	})

	t.Run("impossible us date dropped", func(t *testing.T) {
		rows, skipped, err := ParseTable("date,name\n13/40/2025,Nobody")

		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, 1, skipped)
	})
}

func TestFindConflicts(t *testing.T) {
	busy := map[string]struct{}{"2025-06-01": {}, "2025-06-02": {}}
	stages := map[string]map[string]struct{}{
		"2025-06-01": {"main room": {}},
	}

	tests := []struct {
		name string
		rows []Row
		want []int
	}{
		{
			name: "free date never conflicts",
			rows: []Row{{Date: "2025-06-05", Name: "A", Stage: "Main Room"}},
			want: []int{},
		},
		{
			name: "same stage conflicts",
			rows: []Row{{Date: "2025-06-01", Name: "A", Stage: "Main Room"}},
			want: []int{0},
		},
		{
			name: "other stage passes",
			rows: []Row{{Date: "2025-06-01", Name: "A", Stage: "Loft"}},
			want: []int{},
		},
		{
			name: "stage-less row always conflicts on busy date",
			rows: []Row{{Date: "2025-06-01", Name: "A"}},
			want: []int{0},
		},
		{
			name: "busy date without stage map conflicts",
			rows: []Row{{Date: "2025-06-02", Name: "A", Stage: "Loft"}},
			want: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindConflicts(tt.rows, busy, stages))
		})
	}
}

func TestExecute(t *testing.T) {
	mainStage := &domain.Stage{ID: 100, VenueID: 10, Name: "Main Room"}

	t.Run("conflicts against confirmed shows", func(t *testing.T) {
		uc := NewUseCase(
			&stubShowRepo{shows: []*domain.Show{
				{VenueID: 10, Title: "Booked", StageID: ptr.Ptr(int64(100)), Date: "2025-06-01", Status: domain.StatusConfirmed},
			}},
			&stubStageRepo{stages: []*domain.Stage{mainStage}},
			noopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:  1,
			VenueID: 10,
			Payload: "date,artist,stage\n06/01/2025,Jane Doe,Main Room\n06/02/2025,John Roe,Main Room",
		})

		require.NoError(t, err)
		require.Len(t, resp.Rows, 2)
		assert.Equal(t, []int{0}, resp.ConflictIndices)
		assert.Equal(t, 0, resp.SkippedRows)
	})

	t.Run("venue-wide show conflicts with every stage", func(t *testing.T) {
		uc := NewUseCase(
			&stubShowRepo{shows: []*domain.Show{
				{VenueID: 10, Title: "Private Event", Date: "2025-06-01", Status: domain.StatusConfirmed},
			}},
			&stubStageRepo{stages: []*domain.Stage{mainStage}},
			noopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:  1,
			VenueID: 10,
			Payload: "date,artist,stage\n2025-06-01,Jane Doe,Loft",
		})

		require.NoError(t, err)
		assert.Equal(t, []int{0}, resp.ConflictIndices)
	})

	t.Run("skipped rows surface in response", func(t *testing.T) {
		uc := NewUseCase(&stubShowRepo{}, &stubStageRepo{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:  1,
			VenueID: 10,
			Payload: "date,name\n2025-06-01,Keeper\ngarbage,Dropped",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.SkippedRows)
		require.Len(t, resp.Rows, 1)
	})

	t.Run("invalid venue", func(t *testing.T) {
		uc := NewUseCase(&stubShowRepo{}, &stubStageRepo{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{UserID: 1, VenueID: 0, Payload: "date,name\n"})

		assert.ErrorIs(t, err, ErrInvalidVenueID)
	})
}
