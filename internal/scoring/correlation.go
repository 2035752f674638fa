package scoring

import "execboard/internal/domain"

// Correlation heuristic constants. These are coarse product thresholds, not a
// statistical model: strength is the absolute distance between completion and
// outcome progress, impact is a quadrant over full completion and the
// on-track floor.
const (
	highStrengthDelta   = 20
	mediumStrengthDelta = 40
	fullCompletion      = 100
	onTrackFloor        = 70
)

// LinkedPair is one power move paired with the victory target it is linked
// to. Target is nil when the link is dangling; such pairs are skipped.
type LinkedPair struct {
	Move   domain.PowerMove
	Actual float64
	Target *domain.VictoryTarget
}

// Correlate computes the correlation annotation for every resolvable pair.
func Correlate(pairs []LinkedPair) []domain.CorrelationResult {
	results := make([]domain.CorrelationResult, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Target == nil {
			continue
		}
		completion := Percentage(pair.Actual, pair.Move.TargetPerCycle)
		progress := Percentage(pair.Target.Achieved, pair.Target.TargetValue)
		results = append(results, domain.CorrelationResult{
			PowerMoveID:     pair.Move.ID,
			VictoryTargetID: pair.Target.ID,
			CompletionRate:  completion,
			TargetProgress:  progress,
			Strength:        strength(completion, progress),
			Impact:          impact(completion, progress),
		})
	}
	return results
}

// SpecialAttention filters the pairs whose lead measure is behind, for the
// operator review queue.
func SpecialAttention(results []domain.CorrelationResult) []domain.CorrelationResult {
	attention := make([]domain.CorrelationResult, 0)
	for _, result := range results {
		if result.CompletionRate < onTrackFloor {
			attention = append(attention, result)
		}
	}
	return attention
}

func strength(completion, progress int) domain.CorrelationStrength {
	delta := completion - progress
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta < highStrengthDelta:
		return domain.StrengthHigh
	case delta < mediumStrengthDelta:
		return domain.StrengthMedium
	default:
		return domain.StrengthLow
	}
}

func impact(completion, progress int) domain.CorrelationImpact {
	switch {
	case completion >= fullCompletion && progress >= onTrackFloor:
		return domain.ImpactPositive
	case completion < onTrackFloor && progress < onTrackFloor:
		return domain.ImpactNegative
	default:
		return domain.ImpactNeutral
	}
}
