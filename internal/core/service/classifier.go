package service

import (
	"fmt"
	"math"
	"strconv"

	"stoik.com/phishscan/internal/core/domain"
)

const (
	// MLThreshold is the model score above which the ML result contributes.
	MLThreshold = 5.0
	// MLMultiplier scales the model score (0-10) into score points.
	MLMultiplier = 5.0

	PhishingScore   = 70
	SuspiciousScore = 40
	MaxScore        = 100
)

// Finalize blends the ML score into the rule-based score, clamps it and classifies it.
// Model scores at or below MLThreshold never lower the rule-based score. Verdict bands
// apply to the rounded score, so a blended 69.5 is PHISHING.
func Finalize(base domain.BaseScore, ml domain.MLResult, urlResult domain.CategoryResult) domain.RiskAssessment {
	score := float64(base.Score)
	triggers := make([]string, len(base.Triggers), len(base.Triggers)+1)
	copy(triggers, base.Triggers)

	if ml.ModelScore > MLThreshold {
		score += ml.ModelScore * MLMultiplier
		triggers = append(triggers, MLTrigger(ml.ModelScore))
	}

	final := ClampScore(score)
	verdict, level := Classify(final)

	return domain.RiskAssessment{
		Score:       final,
		Verdict:     verdict,
		RiskLevel:   level,
		Triggers:    triggers,
		MLAnalysis:  ml,
		URLAnalysis: urlResult,
	}
}

func MLTrigger(modelScore float64) string {
	return fmt.Sprintf("ML Detected Phishing (Score: %s)", strconv.FormatFloat(modelScore, 'f', -1, 64))
}

// ClampScore rounds score and bounds it to [0, MaxScore].
func ClampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Max(0, math.Min(math.Round(score), MaxScore)))
}

func Classify(score int) (domain.Verdict, domain.RiskLevel) {
	switch {
	case score >= PhishingScore:
		return domain.VerdictPhishing, domain.RiskLevelHigh
	case score >= SuspiciousScore:
		return domain.VerdictSuspicious, domain.RiskLevelMedium
	default:
		return domain.VerdictSafe, domain.RiskLevelLow
	}
}
