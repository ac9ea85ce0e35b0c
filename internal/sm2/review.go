package sm2

import "math"

// Review returns the item's state after a review with quality q.
//
// A forgotten item drops back to zero repetitions. The EF is clamped to
// MinEasiness both before and after the update, so a corrupt stored value
// below the floor is corrected rather than propagated.
func (it Item) Review(q Quality) Item {
	return Item{
		n:  nextRepetitions(it.n, q),
		ef: nextEasiness(it.ef, q),
	}
}

// Interval returns the number of days until the item should be reviewed next.
// Results outside the uint32 range saturate; negative and NaN results are 0.
func (it Item) Interval() Interval {
	switch it.n {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 6
	default:
		days := math.Ceil(6.0 * math.Pow(it.ef, float64(it.n)-2))
		switch {
		case math.IsNaN(days) || days <= 0:
			return 0
		case days > math.MaxUint32:
			return math.MaxUint32
		}
		return Interval(days)
	}
}

func nextRepetitions(n Repetitions, q Quality) Repetitions {
	if q.Forgot() {
		return 0
	}
	return n + 1
}

func nextEasiness(ef Easiness, q Quality) Easiness {
	ef = clampEasiness(ef)
	x := float64(q)
	ef = ef - 0.8 + 0.28*x - 0.02*x*x
	return clampEasiness(ef)
}

func clampEasiness(ef Easiness) Easiness {
	if ef < MinEasiness || math.IsNaN(ef) {
		return MinEasiness
	}
	return ef
}
