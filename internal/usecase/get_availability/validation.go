package get_availability

import (
	"fmt"

	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// validateRequest проверяет входные данные use case
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return ErrInvalidVenueID
	}

	if !types.ValidDate(req.From) {
		return fmt.Errorf("%w: malformed from date %q", ErrInvalidDateRange, req.From)
	}
	if !types.ValidDate(req.To) {
		return fmt.Errorf("%w: malformed to date %q", ErrInvalidDateRange, req.To)
	}
	if req.From > req.To {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, req.From, req.To)
	}

	for _, d := range req.OnlyDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: got %d", ErrInvalidOnlyDays, d)
		}
	}

	switch req.Style {
	case "", StyleShort, StyleLong, StyleCSV:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStyle, req.Style)
	}

	return nil
}
