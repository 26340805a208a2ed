package shows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	showRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/show"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
	"github.com/FHLn-git/SoundPath-sub003/pkg/ptr"
)

type stubShowRepo struct {
	shows       map[int64]*domain.Show
	rankUpdates map[int64]int
	released    map[int64]domain.ShowStatus
	nextID      int64
}

func newStubShowRepo(shows ...*domain.Show) *stubShowRepo {
	r := &stubShowRepo{
		shows:       make(map[int64]*domain.Show),
		rankUpdates: make(map[int64]int),
		released:    make(map[int64]domain.ShowStatus),
		nextID:      1000,
	}
	for _, s := range shows {
		r.shows[s.ID] = s
	}
	return r
}

func (r *stubShowRepo) Create(_ context.Context, show *domain.Show) (*domain.Show, error) {
	r.nextID++
	show.ID = r.nextID
	r.shows[show.ID] = show
	return show, nil
}

func (r *stubShowRepo) GetByID(_ context.Context, id int64) (*domain.Show, error) {
	s, ok := r.shows[id]
	if !ok {
		return nil, showRepo.ErrShowNotFound
	}
	copied := *s
	return &copied, nil
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

func (r *stubShowRepo) GetHoldsByVenueAndDate(_ context.Context, venueID int64, date string) ([]*domain.Show, error) {
	var out []*domain.Show
	for _, s := range r.shows {
		if s.VenueID == venueID && s.Date == date && s.Status == domain.StatusHold {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubShowRepo) UpdateStatus(_ context.Context, id int64, status domain.ShowStatus) error {
	s, ok := r.shows[id]
	if !ok {
		return showRepo.ErrShowNotFound
	}
	s.Status = status
	return nil
}

func (r *stubShowRepo) ReleaseHold(_ context.Context, id int64, status domain.ShowStatus) error {
	s, ok := r.shows[id]
	if !ok || s.Status != domain.StatusHold {
		return showRepo.ErrShowNotFound
	}
	s.Status = status
	s.HoldRank = nil
	r.released[id] = status
	return nil
}

func (r *stubShowRepo) UpdateHoldRank(_ context.Context, id int64, rank int) error {
	s, ok := r.shows[id]
	if !ok {
		return showRepo.ErrShowNotFound
	}
	s.HoldRank = &rank
	r.rankUpdates[id] = rank
	return nil
}

type noopTxManager struct{}

func (noopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (noopTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (noopTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *stubShowRepo) *Service {
	return NewService(repo, noopTxManager{}, noopLogger{})
}

func hold(id, venueID int64, date string, rank *int, autoPromote bool, stageID *int64) *domain.Show {
	return &domain.Show{
		ID:              id,
		VenueID:         venueID,
		Title:           "hold",
		StageID:         stageID,
		Date:            date,
		Status:          domain.StatusHold,
		HoldRank:        rank,
		HoldAutoPromote: autoPromote,
	}
}

func TestService_Create(t *testing.T) {
	t.Run("draft by default", func(t *testing.T) {
		svc := newTestService(newStubShowRepo())

		resp, err := svc.Create(context.Background(), &models.CreateShowRequest{
			UserID:  1,
			VenueID: 10,
			Title:   "Midnight Run",
			Date:    "2025-06-01",
			Doors:   "19:00",
			Curfew:  "23:00",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusDraft), resp.Status)
		assert.Equal(t, "19:00", resp.Doors)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := newTestService(newStubShowRepo())

		_, err := svc.Create(context.Background(), &models.CreateShowRequest{
			UserID:  1,
			VenueID: 10,
			Title:   "Bad Date",
			Date:    "06/01/2025",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects hold rank on non-hold status", func(t *testing.T) {
		svc := newTestService(newStubShowRepo())

		_, err := svc.Create(context.Background(), &models.CreateShowRequest{
			UserID:   1,
			VenueID:  10,
			Title:    "Ranked Draft",
			Date:     "2025-06-01",
			HoldRank: ptr.Ptr(1),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects multi-stage without linked stages", func(t *testing.T) {
		svc := newTestService(newStubShowRepo())

		_, err := svc.Create(context.Background(), &models.CreateShowRequest{
			UserID:       1,
			VenueID:      10,
			Title:        "Festival",
			Date:         "2025-06-01",
			IsMultiStage: true,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("terminal status is frozen", func(t *testing.T) {
		show := &domain.Show{ID: 1, VenueID: 10, Title: "Done", Date: "2025-06-01", Status: domain.StatusCompleted}
		svc := newTestService(newStubShowRepo(show))

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 1, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrStatusFrozen)
	})

	t.Run("confirmed show can progress", func(t *testing.T) {
		show := &domain.Show{ID: 1, VenueID: 10, Title: "Show", Date: "2025-06-01", Status: domain.StatusConfirmed}
		repo := newStubShowRepo(show)
		svc := newTestService(repo)

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 1, Status: "on_sale"})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusOnSale), resp.Status)
		assert.Equal(t, domain.StatusOnSale, repo.shows[1].Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		show := &domain.Show{ID: 1, VenueID: 10, Title: "Show", Date: "2025-06-01", Status: domain.StatusOpen}
		svc := newTestService(newStubShowRepo(show))

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 1, Status: "archived"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(newStubShowRepo())

		_, err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{UserID: 1, Status: "open"})

		assert.ErrorIs(t, err, ErrShowNotFound)
	})
}

func TestService_HoldQueue(t *testing.T) {
	repo := newStubShowRepo(
		hold(1, 10, "2025-06-01", ptr.Ptr(3), false, ptr.Ptr(int64(100))),
		hold(2, 10, "2025-06-01", ptr.Ptr(1), false, ptr.Ptr(int64(100))),
		hold(3, 10, "2025-06-01", nil, false, ptr.Ptr(int64(100))),
		hold(4, 10, "2025-06-01", ptr.Ptr(2), false, ptr.Ptr(int64(200))),
	)
	svc := newTestService(repo)

	t.Run("sorted by rank, missing rank last", func(t *testing.T) {
		resp, err := svc.HoldQueue(context.Background(), 10, "2025-06-01", nil)

		require.NoError(t, err)
		require.Len(t, resp.Queue, 4)
		assert.Equal(t, int64(2), resp.Queue[0].ShowID)
		assert.Equal(t, int64(4), resp.Queue[1].ShowID)
		assert.Equal(t, int64(1), resp.Queue[2].ShowID)
		assert.Equal(t, int64(3), resp.Queue[3].ShowID)
	})

	t.Run("scoped to stage", func(t *testing.T) {
		resp, err := svc.HoldQueue(context.Background(), 10, "2025-06-01", ptr.Ptr(int64(200)))

		require.NoError(t, err)
		require.Len(t, resp.Queue, 1)
		assert.Equal(t, int64(4), resp.Queue[0].ShowID)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.HoldQueue(context.Background(), 10, "June 1", nil)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_ReleaseHold(t *testing.T) {
	mainStage := ptr.Ptr(int64(100))

	t.Run("auto-promotes competing holds", func(t *testing.T) {
		repo := newStubShowRepo(
			hold(1, 10, "2025-06-01", ptr.Ptr(1), true, mainStage),
			hold(2, 10, "2025-06-01", ptr.Ptr(2), false, mainStage),
			hold(3, 10, "2025-06-01", ptr.Ptr(3), false, mainStage),
			hold(4, 10, "2025-06-01", ptr.Ptr(2), false, ptr.Ptr(int64(200))),
		)
		svc := newTestService(repo)

		resp, err := svc.ReleaseHold(context.Background(), 1, &models.ReleaseHoldRequest{UserID: 1, Outcome: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Nil(t, resp.HoldRank)

		// Конкуренты за сцену 100 поднялись, сцена 200 не тронута
		assert.Equal(t, 1, repo.rankUpdates[2])
		assert.Equal(t, 2, repo.rankUpdates[3])
		_, touched := repo.rankUpdates[4]
		assert.False(t, touched)
	})

	t.Run("no promotion when autoPromote is off", func(t *testing.T) {
		repo := newStubShowRepo(
			hold(1, 10, "2025-06-01", ptr.Ptr(1), false, mainStage),
			hold(2, 10, "2025-06-01", ptr.Ptr(2), false, mainStage),
		)
		svc := newTestService(repo)

		_, err := svc.ReleaseHold(context.Background(), 1, &models.ReleaseHoldRequest{UserID: 1, Outcome: "open"})

		require.NoError(t, err)
		assert.Empty(t, repo.rankUpdates)
	})

	t.Run("rejects non-hold show", func(t *testing.T) {
		show := &domain.Show{ID: 1, VenueID: 10, Title: "Open Show", Date: "2025-06-01", Status: domain.StatusOpen}
		svc := newTestService(newStubShowRepo(show))

		_, err := svc.ReleaseHold(context.Background(), 1, &models.ReleaseHoldRequest{UserID: 1, Outcome: "confirmed"})

		assert.ErrorIs(t, err, ErrNotAHold)
	})

	t.Run("rejects invalid outcome", func(t *testing.T) {
		repo := newStubShowRepo(hold(1, 10, "2025-06-01", ptr.Ptr(1), false, mainStage))
		svc := newTestService(repo)

		_, err := svc.ReleaseHold(context.Background(), 1, &models.ReleaseHoldRequest{UserID: 1, Outcome: "completed"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("cancelling ranked hold promotes the queue", func(t *testing.T) {
		mainStage := ptr.Ptr(int64(100))
		repo := newStubShowRepo(
			hold(1, 10, "2025-06-01", ptr.Ptr(1), true, mainStage),
			hold(2, 10, "2025-06-01", ptr.Ptr(2), false, mainStage),
		)
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelShowRequest{UserID: 1})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.shows[1].Status)
		assert.Equal(t, 1, repo.rankUpdates[2])
	})

	t.Run("completed show cannot be cancelled", func(t *testing.T) {
		show := &domain.Show{ID: 1, VenueID: 10, Title: "Done", Date: "2025-06-01", Status: domain.StatusCompleted}
		svc := newTestService(newStubShowRepo(show))

		err := svc.Cancel(context.Background(), 1, &models.CancelShowRequest{UserID: 1})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}
