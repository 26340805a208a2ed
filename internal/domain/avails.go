package domain

// AvailsQuery is the filter used to compute busy and available dates.
// Empty StageIDs means venue-wide: any stage blocks.
type AvailsQuery struct {
	StageIDs        []int64
	IncludeHolds    bool
	IncludeConfirms bool
	OnlyDays        []int // weekday indices 0=Sun..6=Sat; empty = all days
}

// ShowBlocksStages reports whether the show occupies any of the queried stages.
// An empty stageIDs filter is a venue-wide query and is blocked by every show.
func ShowBlocksStages(show *Show, stageIDs []int64) bool {
	if len(stageIDs) == 0 {
		return true
	}

	if show.StageID != nil && containsStage(stageIDs, *show.StageID) {
		return true
	}

	for _, linked := range show.LinkedStageIDs {
		if containsStage(stageIDs, linked) {
			return true
		}
	}

	return false
}

// CountsAsBusy reports whether the show blocks a date under the query's policy.
//
// Only plain holds (with IncludeHolds) and confirm-like shows (with
// IncludeConfirms) count. Draft, open, challenged, cancelled and the ranked
// hold_1/hold_2 variants are not busy under current policy, even though ranked
// holds represent active competition for the date - открытый продуктовый
// вопрос, не чиним молча.
func (s *Show) CountsAsBusy(q AvailsQuery) bool {
	if !ShowBlocksStages(s, q.StageIDs) {
		return false
	}

	switch {
	case s.Status == StatusHold:
		return q.IncludeHolds
	case s.IsConfirmLike():
		return q.IncludeConfirms
	default:
		return false
	}
}

// BusyDates returns the set of dates blocked by the given shows under the
// query. Multiple shows on the same date collapse to one entry.
func BusyDates(shows []*Show, q AvailsQuery) map[string]struct{} {
	busy := make(map[string]struct{})
	for _, show := range shows {
		if show.CountsAsBusy(q) {
			busy[show.Date] = struct{}{}
		}
	}
	return busy
}

func containsStage(stageIDs []int64, id int64) bool {
	for _, s := range stageIDs {
		if s == id {
			return true
		}
	}
	return false
}
