package scoring

import "execboard/internal/domain"

// Thresholds is the green/yellow boundary pair of the three-band protocol.
// Operators can retune it through configuration; the defaults are load-bearing
// for downstream color semantics and must stay 70/50.
type Thresholds struct {
	Green  float64
	Yellow float64
}

// DefaultThresholds returns green >= 70, yellow >= 50, red below.
func DefaultThresholds() Thresholds {
	return Thresholds{Green: 70, Yellow: 50}
}

// Classify maps a percentage onto exactly one band. Total over all reals:
// anything at or above Green is green no matter how far past 100 it goes,
// anything below Yellow (including 0 and negatives) is red.
func (t Thresholds) Classify(percentage float64) domain.Status {
	switch {
	case percentage >= t.Green:
		return domain.StatusGreen
	case percentage >= t.Yellow:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

// ClassifyRatio classifies actual against target through the same bands.
// A zero target classifies as red via the zero-percentage guard.
func (t Thresholds) ClassifyRatio(actual, target float64) domain.Status {
	return t.Classify(Fraction(actual, target))
}

// NeedsAttention flags the red band for the operator review queue.
func NeedsAttention(status domain.Status) bool {
	return status == domain.StatusRed
}
