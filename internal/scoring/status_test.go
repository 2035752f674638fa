package scoring

import (
	"testing"

	"execboard/internal/domain"
)

func TestClassifyDefaultBands(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		pct    float64
		expect domain.Status
	}{
		{-50, domain.StatusRed},
		{0, domain.StatusRed},
		{49, domain.StatusRed},
		{49.9, domain.StatusRed},
		{50, domain.StatusYellow},
		{69, domain.StatusYellow},
		{69.9, domain.StatusYellow},
		{70, domain.StatusGreen},
		{100, domain.StatusGreen},
		{250, domain.StatusGreen},
	}
	for _, tc := range cases {
		if got := th.Classify(tc.pct); got != tc.expect {
			t.Fatalf("pct=%v: expected %s got %s", tc.pct, tc.expect, got)
		}
	}
}

func TestClassifyIsExhaustive(t *testing.T) {
	th := DefaultThresholds()
	for pct := -200; pct <= 400; pct++ {
		status := th.Classify(float64(pct))
		switch status {
		case domain.StatusGreen, domain.StatusYellow, domain.StatusRed:
		default:
			t.Fatalf("pct=%d: unexpected status %q", pct, status)
		}
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{Green: 90, Yellow: 60}
	if got := th.Classify(85); got != domain.StatusYellow {
		t.Fatalf("expected yellow got %s", got)
	}
	if got := th.Classify(90); got != domain.StatusGreen {
		t.Fatalf("expected green got %s", got)
	}
}

func TestClassifyRatioZeroTarget(t *testing.T) {
	th := DefaultThresholds()
	if got := th.ClassifyRatio(42, 0); got != domain.StatusRed {
		t.Fatalf("zero target must classify red, got %s", got)
	}
}

func TestNeedsAttention(t *testing.T) {
	if !NeedsAttention(domain.StatusRed) {
		t.Fatalf("red needs attention")
	}
	if NeedsAttention(domain.StatusYellow) || NeedsAttention(domain.StatusGreen) {
		t.Fatalf("only red needs attention")
	}
}
