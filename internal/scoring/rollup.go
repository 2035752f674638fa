package scoring

import (
	"math"

	"execboard/internal/domain"
)

// MoveCompletion is one linked power move's tracked actual against its
// per-cycle target, the input row for the victory-target rollup.
type MoveCompletion struct {
	MoveID         int64
	Actual         float64
	TargetPerCycle float64
}

// DepartmentInput is one department's already-rolled-up score for the company
// rollup.
type DepartmentInput struct {
	Score        int
	TargetsCount int
}

// TargetProgress rolls linked power moves up into a victory target's
// progress. With linked moves, progress is the unweighted mean of each move's
// completion fraction and achieved is back-derived from it; with none, the
// manually-tracked achieved/target pair is used unchanged. The manual
// fallback is what keeps hand-entered targets working.
func TargetProgress(target domain.VictoryTarget, linked []MoveCompletion, th Thresholds) domain.VictoryTargetProgress {
	if len(linked) == 0 {
		pct := Percentage(target.Achieved, target.TargetValue)
		return domain.VictoryTargetProgress{
			TargetID:   target.ID,
			Achieved:   target.Achieved,
			Target:     target.TargetValue,
			Percentage: pct,
			Status:     th.Classify(float64(pct)),
			Derived:    false,
		}
	}

	var sum float64
	linkedIDs := make([]int64, 0, len(linked))
	for _, move := range linked {
		sum += Fraction(move.Actual, move.TargetPerCycle)
		linkedIDs = append(linkedIDs, move.MoveID)
	}
	avg := sum / float64(len(linked))
	pct := int(math.Round(avg))
	return domain.VictoryTargetProgress{
		TargetID:   target.ID,
		Achieved:   math.Round(target.TargetValue * avg / 100),
		Target:     target.TargetValue,
		Percentage: pct,
		Status:     th.Classify(avg),
		Derived:    true,
		LinkedIDs:  linkedIDs,
	}
}

// DepartmentScore counts the department's on-track targets and classifies the
// count against the total through the same threshold pair used for progress
// percentages. The double application is deliberate compatibility behavior.
func DepartmentScore(departmentID int64, targets []domain.VictoryTargetProgress, th Thresholds) domain.DepartmentScore {
	score := domain.DepartmentScore{
		DepartmentID: departmentID,
		TotalTargets: len(targets),
		Status:       domain.StatusRed,
		Targets:      targets,
	}
	if len(targets) == 0 {
		return score
	}
	for _, target := range targets {
		if float64(target.Percentage) >= th.Green {
			score.GreenCount++
		}
	}
	score.Percentage = Percentage(float64(score.GreenCount), float64(score.TotalTargets))
	score.Status = th.ClassifyRatio(float64(score.GreenCount), float64(score.TotalTargets))
	return score
}

// CompanyScore averages department scores and reconstructs the green-target
// total from each department's percentage rather than recounting. The
// reconstruction can drift one off a literal recount; callers depend on that
// output staying stable.
func CompanyScore(departments []DepartmentInput, th Thresholds) domain.CompanyScore {
	if len(departments) == 0 {
		return domain.CompanyScore{Status: domain.StatusRed}
	}

	var scoreSum float64
	var greenSum float64
	totalTargets := 0
	for _, dept := range departments {
		scoreSum += float64(dept.Score)
		greenSum += float64(dept.Score) / 100 * float64(dept.TargetsCount)
		totalTargets += dept.TargetsCount
	}
	totalGreen := int(math.Round(greenSum))
	return domain.CompanyScore{
		AverageScore:      int(math.Round(scoreSum / float64(len(departments)))),
		TotalGreenTargets: totalGreen,
		TotalTargets:      totalTargets,
		Status:            th.ClassifyRatio(float64(totalGreen), float64(totalTargets)),
	}
}
