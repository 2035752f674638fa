package domain

import "time"

type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

type Granularity string

const (
	GranularityToday   Granularity = "today"
	GranularityWeek    Granularity = "this-week"
	GranularityMonth   Granularity = "this-month"
	GranularityQuarter Granularity = "this-quarter"
)

type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

type CorrelationStrength string

const (
	StrengthHigh   CorrelationStrength = "high"
	StrengthMedium CorrelationStrength = "medium"
	StrengthLow    CorrelationStrength = "low"
)

type CorrelationImpact string

const (
	ImpactPositive CorrelationImpact = "positive"
	ImpactNegative CorrelationImpact = "negative"
	ImpactNeutral  CorrelationImpact = "neutral"
)

type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PowerMove is a lead measure: a recurring activity with a per-cycle target.
type PowerMove struct {
	ID              int64
	DepartmentID    int64
	Name            string
	Cadence         Cadence
	TargetPerCycle  float64
	OwnerText       string
	VictoryTargetID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VictoryTarget is a lag measure: an outcome number for the period. Achieved
// holds the manually-tracked value used when no power moves are linked.
type VictoryTarget struct {
	ID           int64
	DepartmentID int64
	Title        string
	TargetValue  float64
	Achieved     float64
	Unit         string
	OwnerText    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TrackingRecord is the per-period actual-vs-target snapshot for one power
// move. Identity is (PowerMoveID, PeriodStart); a write replaces the whole
// record, never merges.
type TrackingRecord struct {
	PowerMoveID int64
	PeriodStart string
	Target      float64
	Actual      float64
	IsCompleted bool
	CompletedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type VictoryTargetProgress struct {
	TargetID   int64
	Achieved   float64
	Target     float64
	Percentage int
	Status     Status
	Derived    bool
	LinkedIDs  []int64
}

type DepartmentScore struct {
	DepartmentID int64
	GreenCount   int
	TotalTargets int
	Percentage   int
	Status       Status
	Targets      []VictoryTargetProgress
}

type CompanyScore struct {
	AverageScore      int
	TotalGreenTargets int
	TotalTargets      int
	Status            Status
}

type CorrelationResult struct {
	PowerMoveID     int64
	VictoryTargetID int64
	CompletionRate  int
	TargetProgress  int
	Strength        CorrelationStrength
	Impact          CorrelationImpact
}
