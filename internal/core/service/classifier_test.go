package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stoik.com/phishscan/internal/core/domain"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score   int
		verdict domain.Verdict
		level   domain.RiskLevel
	}{
		{100, domain.VerdictPhishing, domain.RiskLevelHigh},
		{70, domain.VerdictPhishing, domain.RiskLevelHigh},
		{69, domain.VerdictSuspicious, domain.RiskLevelMedium},
		{40, domain.VerdictSuspicious, domain.RiskLevelMedium},
		{39, domain.VerdictSafe, domain.RiskLevelLow},
		{0, domain.VerdictSafe, domain.RiskLevelLow},
	}

	for _, tt := range tests {
		verdict, level := Classify(tt.score)
		assert.Equal(t, tt.verdict, verdict, "score %d", tt.score)
		assert.Equal(t, tt.level, level, "score %d", tt.score)
	}
}

func TestClassify_IsMonotonic(t *testing.T) {
	rank := map[domain.Verdict]int{
		domain.VerdictSafe:       0,
		domain.VerdictSuspicious: 1,
		domain.VerdictPhishing:   2,
	}
	previous := -1
	for score := 0; score <= MaxScore; score++ {
		verdict, _ := Classify(score)
		assert.GreaterOrEqual(t, rank[verdict], previous, "score %d", score)
		previous = rank[verdict]
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 100, ClampScore(175))
	assert.Equal(t, 0, ClampScore(-12))
	assert.Equal(t, 0, ClampScore(math.NaN()))
	assert.Equal(t, 70, ClampScore(69.5))
	assert.Equal(t, 42, ClampScore(42.4))
}

func TestFinalize_MLBelowThresholdContributesNothing(t *testing.T) {
	base := domain.BaseScore{Score: 30, Triggers: []string{"suspicious domain"}}

	for _, modelScore := range []float64{0, 3, 5} {
		assessment := Finalize(base, domain.MLResult{ModelScore: modelScore}, domain.EmptyResult(domain.CategoryURL))

		assert.Equal(t, 30, assessment.Score)
		assert.Equal(t, domain.VerdictSafe, assessment.Verdict)
		assert.Equal(t, []string{"suspicious domain"}, assessment.Triggers)
	}
}

func TestFinalize_MLAboveThresholdIsBlended(t *testing.T) {
	base := domain.BaseScore{Score: 30, Triggers: []string{"suspicious domain"}}
	ml := domain.MLResult{ModelScore: 9, Label: "PHISHING", RawConfidence: 0.9}

	assessment := Finalize(base, ml, domain.EmptyResult(domain.CategoryURL))

	assert.Equal(t, 75, assessment.Score)
	assert.Equal(t, domain.VerdictPhishing, assessment.Verdict)
	assert.Equal(t, domain.RiskLevelHigh, assessment.RiskLevel)
	assert.Equal(t, []string{"suspicious domain", "ML Detected Phishing (Score: 9)"}, assessment.Triggers)
	assert.Equal(t, ml, assessment.MLAnalysis)
}

func TestFinalize_RoundsFractionalML(t *testing.T) {
	assessment := Finalize(domain.BaseScore{Triggers: []string{}}, domain.MLResult{ModelScore: 5.5}, domain.EmptyResult(domain.CategoryURL))

	assert.Equal(t, 28, assessment.Score)
	assert.Equal(t, []string{"ML Detected Phishing (Score: 5.5)"}, assessment.Triggers)
}

func TestFinalize_ClampsToMax(t *testing.T) {
	base := domain.BaseScore{Score: 90, Triggers: []string{"a", "b"}}

	assessment := Finalize(base, domain.MLResult{ModelScore: 10}, domain.EmptyResult(domain.CategoryURL))

	assert.Equal(t, 100, assessment.Score)
	assert.Equal(t, domain.VerdictPhishing, assessment.Verdict)
}

func TestFinalize_DoesNotMutateBase(t *testing.T) {
	base := domain.BaseScore{Score: 10, Triggers: make([]string, 1, 4)}
	base.Triggers[0] = "x"

	Finalize(base, domain.MLResult{ModelScore: 8}, domain.EmptyResult(domain.CategoryURL))

	assert.Equal(t, []string{"x"}, base.Triggers)
	assert.Equal(t, "x", base.Triggers[:2][0])
	assert.Equal(t, "", base.Triggers[:2][1])
}

func TestFinalize_IsMonotonicInModelScore(t *testing.T) {
	for _, baseScore := range []int{0, 15, 30, 45, 60, 95} {
		base := domain.BaseScore{Score: baseScore, Triggers: []string{}}
		previous := -1

		for step := 0; step <= 70; step++ {
			modelScore := 5 + float64(step)/10
			assessment := Finalize(base, domain.MLResult{ModelScore: modelScore}, domain.EmptyResult(domain.CategoryURL))

			assert.GreaterOrEqual(t, assessment.Score, previous, "base %d, model score %.1f", baseScore, modelScore)
			previous = assessment.Score
		}
	}
}

func TestFinalize_BandsApplyToRoundedScore(t *testing.T) {
	// 42 + 5.5*5 = 69.5
	assessment := Finalize(domain.BaseScore{Score: 42, Triggers: []string{}}, domain.MLResult{ModelScore: 5.5}, domain.EmptyResult(domain.CategoryURL))

	assert.Equal(t, 70, assessment.Score)
	assert.Equal(t, domain.VerdictPhishing, assessment.Verdict)
}
