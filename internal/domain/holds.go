package domain

import "sort"

// HoldRankOrFallback returns the show's hold rank, or HoldRankFallback when unranked
func HoldRankOrFallback(s *Show) int {
	if s.HoldRank == nil {
		return HoldRankFallback
	}
	return *s.HoldRank
}

// SortHolds returns the shows with status "hold" sorted ascending by hold rank.
// A missing rank sorts last. The sort is stable, so equally-ranked holds keep
// their incoming order. This total order is the canonical "who is next in
// line" queue for a date.
func SortHolds(shows []*Show) []*Show {
	holds := make([]*Show, 0, len(shows))
	for _, s := range shows {
		if s.Status == StatusHold {
			holds = append(holds, s)
		}
	}

	sort.SliceStable(holds, func(i, j int) bool {
		return HoldRankOrFallback(holds[i]) < HoldRankOrFallback(holds[j])
	})

	return holds
}

// PromoteHolds применяет снятие холда ранга removed к списку рангов:
// сам ранг удаляется (первое вхождение), все ранги строго больше removed
// сдвигаются вниз на единицу. Если холда с таким рангом нет - no-op,
// возвращается копия входа. Чистая функция, исходный слайс не меняется.
func PromoteHolds(ranks []int, removed int) []int {
	found := false
	for _, r := range ranks {
		if r == removed {
			found = true
			break
		}
	}
	if !found {
		out := make([]int, len(ranks))
		copy(out, ranks)
		return out
	}

	out := make([]int, 0, len(ranks))
	dropped := false
	for _, r := range ranks {
		switch {
		case r == removed && !dropped:
			dropped = true
		case r > removed:
			out = append(out, r-1)
		default:
			out = append(out, r)
		}
	}
	return out
}
