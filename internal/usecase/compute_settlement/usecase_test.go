package compute_settlement

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	showRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/show"
	"github.com/FHLn-git/SoundPath-sub003/internal/integrations/labelservice"
	"github.com/FHLn-git/SoundPath-sub003/pkg/ptr"
)

type stubShowRepo struct {
	shows     map[int64]*domain.Show
	finalized map[int64]decimal.Decimal
}

func newStubShowRepo(shows ...*domain.Show) *stubShowRepo {
	r := &stubShowRepo{
		shows:     make(map[int64]*domain.Show),
		finalized: make(map[int64]decimal.Decimal),
	}
	for _, s := range shows {
		r.shows[s.ID] = s
	}
	return r
}

func (r *stubShowRepo) GetByID(_ context.Context, id int64) (*domain.Show, error) {
	s, ok := r.shows[id]
	if !ok {
		return nil, showRepo.ErrShowNotFound
	}
	return s, nil
}

func (r *stubShowRepo) FinalizeSettlement(_ context.Context, id int64, amount decimal.Decimal, notes *string, finalizedAt time.Time) error {
	s, ok := r.shows[id]
	if !ok || s.SettlementFinalizedAt != nil {
		return showRepo.ErrShowNotFound
	}
	s.SettlementAmount = &amount
	s.SettlementNotes = notes
	s.SettlementFinalizedAt = &finalizedAt
	r.finalized[id] = amount
	return nil
}

type stubLabelClient struct {
	artist *labelservice.Artist
	err    error
}

func (c *stubLabelClient) GetArtistWithGracefulDegradation(context.Context, int64) (*labelservice.Artist, error) {
	return c.artist, c.err
}

type noopTxManager struct{}

func (noopTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func completedShow(id int64) *domain.Show {
	return &domain.Show{
		ID:            id,
		VenueID:       10,
		Title:         "Settled Night",
		Date:          "2025-06-01",
		Status:        domain.StatusCompleted,
		ArtistID:      ptr.Ptr(int64(7)),
		Guarantee:     money(5000),
		DoorSplitPct:  money(20),
		TicketRevenue: money(10000),
		Expenses: []domain.ExpenseItem{
			{Description: "sound", Amount: decimal.NewFromInt(1000)},
			{Description: "security", Amount: decimal.NewFromInt(500)},
		},
	}
}

func newTestUseCase(repo *stubShowRepo, label LabelServiceClient) *UseCase {
	return NewUseCase(repo, label, noopTxManager{}, noopLogger{})
}

func TestPreview(t *testing.T) {
	t.Run("guarantee wins over door split", func(t *testing.T) {
		uc := newTestUseCase(newStubShowRepo(completedShow(1)), &stubLabelClient{})

		resp, err := uc.Preview(context.Background(), &PreviewRequest{UserID: 1, ShowID: 1})

		require.NoError(t, err)
		// guarantee 5000 > 20% of 10000 = 2000
		assert.True(t, resp.AmountOwedToArtist.Equal(decimal.NewFromInt(5000)))
		assert.True(t, resp.PnL.Equal(decimal.NewFromInt(3500)))
		assert.Equal(t, []string{
			"Guarantee: 5000.00",
			"Door split (20% of 10000.00): 2000.00",
			"Artist receives the greater: 5000.00",
			"Expenses: 1500.00",
		}, resp.Breakdown)
	})

	t.Run("overrides replace stored financials", func(t *testing.T) {
		uc := newTestUseCase(newStubShowRepo(completedShow(1)), &stubLabelClient{})

		resp, err := uc.Preview(context.Background(), &PreviewRequest{
			UserID:        1,
			ShowID:        1,
			TicketRevenue: money(40000),
		})

		require.NoError(t, err)
		// 20% of 40000 = 8000 > guarantee 5000
		assert.True(t, resp.AmountOwedToArtist.Equal(decimal.NewFromInt(8000)))
	})

	t.Run("preview does not persist", func(t *testing.T) {
		repo := newStubShowRepo(completedShow(1))
		uc := newTestUseCase(repo, &stubLabelClient{})

		_, err := uc.Preview(context.Background(), &PreviewRequest{UserID: 1, ShowID: 1})

		require.NoError(t, err)
		assert.Empty(t, repo.finalized)
	})

	t.Run("artist name denormalized from label service", func(t *testing.T) {
		uc := newTestUseCase(newStubShowRepo(completedShow(1)), &stubLabelClient{
			artist: &labelservice.Artist{ID: 7, Name: "Jane Doe"},
		})

		resp, err := uc.Preview(context.Background(), &PreviewRequest{UserID: 1, ShowID: 1})

		require.NoError(t, err)
		require.NotNil(t, resp.ArtistName)
		assert.Equal(t, "Jane Doe", *resp.ArtistName)
	})

	t.Run("label service outage degrades gracefully", func(t *testing.T) {
		uc := newTestUseCase(newStubShowRepo(completedShow(1)), &stubLabelClient{
			err: labelservice.ErrServiceDegraded,
		})

		resp, err := uc.Preview(context.Background(), &PreviewRequest{UserID: 1, ShowID: 1})

		require.NoError(t, err)
		assert.Nil(t, resp.ArtistName)
	})

	t.Run("show not found", func(t *testing.T) {
		uc := newTestUseCase(newStubShowRepo(), &stubLabelClient{})

		_, err := uc.Preview(context.Background(), &PreviewRequest{UserID: 1, ShowID: 404})

		assert.ErrorIs(t, err, ErrShowNotFound)
	})
}

func TestFinalize(t *testing.T) {
	t.Run("persists amount and stamps time", func(t *testing.T) {
		repo := newStubShowRepo(completedShow(1))
		uc := newTestUseCase(repo, &stubLabelClient{})

		resp, err := uc.Finalize(context.Background(), &FinalizeRequest{
			UserID: 1,
			ShowID: 1,
			Notes:  ptr.Ptr("settled in cash"),
		})

		require.NoError(t, err)
		assert.True(t, resp.Finalized)
		require.NotNil(t, resp.FinalizedAt)
		assert.True(t, repo.finalized[1].Equal(decimal.NewFromInt(5000)))
	})

	t.Run("refuses double finalize", func(t *testing.T) {
		show := completedShow(1)
		now := time.Now()
		show.SettlementFinalizedAt = &now
		uc := newTestUseCase(newStubShowRepo(show), &stubLabelClient{})

		_, err := uc.Finalize(context.Background(), &FinalizeRequest{UserID: 1, ShowID: 1})

		assert.ErrorIs(t, err, ErrAlreadyFinalized)
	})

	t.Run("refuses non-confirmed show", func(t *testing.T) {
		show := completedShow(1)
		show.Status = domain.StatusHold
		uc := newTestUseCase(newStubShowRepo(show), &stubLabelClient{})

		_, err := uc.Finalize(context.Background(), &FinalizeRequest{UserID: 1, ShowID: 1})

		assert.ErrorIs(t, err, ErrNotSettleable)
	})

	t.Run("refuses oversized notes", func(t *testing.T) {
		uc := newTestUseCase(newStubShowRepo(completedShow(1)), &stubLabelClient{})

		long := make([]byte, domain.MaxSettlementNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}

		_, err := uc.Finalize(context.Background(), &FinalizeRequest{
			UserID: 1,
			ShowID: 1,
			Notes:  ptr.Ptr(string(long)),
		})

		assert.ErrorIs(t, err, ErrNotesTooLong)
	})
}
