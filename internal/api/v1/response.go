package v1

import (
	"time"

	"execboard/internal/domain"
)

type periodResponse struct {
	Granularity string `json:"granularity"`
	PeriodStart string `json:"period_start"`
}

type trackingRecord struct {
	PowerMoveID int64     `json:"power_move_id"`
	PeriodStart string    `json:"period_start"`
	Target      float64   `json:"target"`
	Actual      float64   `json:"actual"`
	IsCompleted bool      `json:"is_completed"`
	CompletedBy *string   `json:"completed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type trackingResponse struct {
	PeriodStart string           `json:"period_start"`
	Items       []trackingRecord `json:"items"`
}

type departmentInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type departmentsResponse struct {
	Items []departmentInfo `json:"items"`
}

type victoryTargetInfo struct {
	ID           int64   `json:"id"`
	DepartmentID int64   `json:"department_id"`
	Title        string  `json:"title"`
	TargetValue  float64 `json:"target_value"`
	Achieved     float64 `json:"achieved"`
	Unit         string  `json:"unit,omitempty"`
}

type targetProgress struct {
	TargetID   int64   `json:"target_id"`
	Achieved   float64 `json:"achieved"`
	Target     float64 `json:"target"`
	Percentage int     `json:"percentage"`
	Status     string  `json:"status"`
	Derived    bool    `json:"derived"`
	LinkedIDs  []int64 `json:"linked_move_ids,omitempty"`
}

type departmentScoreResponse struct {
	DepartmentID int64            `json:"department_id"`
	PeriodStart  string           `json:"period_start"`
	GreenCount   int              `json:"green_count"`
	TotalTargets int              `json:"total_targets"`
	Percentage   int              `json:"percentage"`
	Status       string           `json:"status"`
	Targets      []targetProgress `json:"targets"`
}

type companyScoreResponse struct {
	PeriodStart       string `json:"period_start"`
	AverageScore      int    `json:"average_score"`
	TotalGreenTargets int    `json:"total_green_targets"`
	TotalTargets      int    `json:"total_targets"`
	Status            string `json:"status"`
}

type correlationResult struct {
	PowerMoveID     int64  `json:"power_move_id"`
	VictoryTargetID int64  `json:"victory_target_id"`
	CompletionRate  int    `json:"completion_rate"`
	TargetProgress  int    `json:"target_progress"`
	Strength        string `json:"strength"`
	Impact          string `json:"impact"`
}

type correlationsResponse struct {
	PeriodStart      string              `json:"period_start"`
	Items            []correlationResult `json:"items"`
	SpecialAttention []correlationResult `json:"special_attention"`
}

func mapTrackingRecord(record domain.TrackingRecord) trackingRecord {
	return trackingRecord{
		PowerMoveID: record.PowerMoveID,
		PeriodStart: record.PeriodStart,
		Target:      record.Target,
		Actual:      record.Actual,
		IsCompleted: record.IsCompleted,
		CompletedBy: record.CompletedBy,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func mapTargetProgress(progress domain.VictoryTargetProgress) targetProgress {
	return targetProgress{
		TargetID:   progress.TargetID,
		Achieved:   progress.Achieved,
		Target:     progress.Target,
		Percentage: progress.Percentage,
		Status:     string(progress.Status),
		Derived:    progress.Derived,
		LinkedIDs:  progress.LinkedIDs,
	}
}

func mapDepartmentScore(periodStart string, score domain.DepartmentScore) departmentScoreResponse {
	targets := make([]targetProgress, 0, len(score.Targets))
	for _, target := range score.Targets {
		targets = append(targets, mapTargetProgress(target))
	}
	return departmentScoreResponse{
		DepartmentID: score.DepartmentID,
		PeriodStart:  periodStart,
		GreenCount:   score.GreenCount,
		TotalTargets: score.TotalTargets,
		Percentage:   score.Percentage,
		Status:       string(score.Status),
		Targets:      targets,
	}
}

func mapCorrelations(results []domain.CorrelationResult) []correlationResult {
	mapped := make([]correlationResult, 0, len(results))
	for _, result := range results {
		mapped = append(mapped, correlationResult{
			PowerMoveID:     result.PowerMoveID,
			VictoryTargetID: result.VictoryTargetID,
			CompletionRate:  result.CompletionRate,
			TargetProgress:  result.TargetProgress,
			Strength:        string(result.Strength),
			Impact:          string(result.Impact),
		})
	}
	return mapped
}
