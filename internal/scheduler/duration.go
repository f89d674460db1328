package scheduler

// SecondsPerSet is the assumed working time of one set, excluding rest.
const SecondsPerSet = 45

// DurationBounds are the fixed parts of a session estimate.
type DurationBounds struct {
	WarmupMinutes int
	MaxMinutes    int
}

// DefaultDurationBounds is a 5 minute warm-up and a 60 minute cap.
func DefaultDurationBounds() DurationBounds {
	return DurationBounds{WarmupMinutes: 5, MaxMinutes: 60}
}

// SetBlock is one exercise's contribution to session time.
type SetBlock struct {
	Sets        int
	RestSeconds int
}

// EstimateMinutes returns warm-up plus floor(sets*(45+rest)/60) per block,
// capped at the maximum. A non-positive cap disables it.
func EstimateMinutes(blocks []SetBlock, b DurationBounds) int {
	total := b.WarmupMinutes
	for _, blk := range blocks {
		if blk.Sets <= 0 {
			continue
		}
		total += blk.Sets * (SecondsPerSet + blk.RestSeconds) / 60
	}
	if b.MaxMinutes > 0 && total > b.MaxMinutes {
		return b.MaxMinutes
	}
	return total
}
