package service

import (
	"fmt"
	"slices"

	"stoik.com/phishscan/internal/core/domain"
)

// Aggregate sums the weights of every finding and collects their reasons as triggers,
// walking categories in domain.CategoryOrder and findings in evaluator order.
// The score is not clamped here.
func Aggregate(findings domain.CategoryFindings) (domain.BaseScore, error) {
	var undefined []string
	for category := range findings {
		if !category.Valid() {
			undefined = append(undefined, string(category))
		}
	}
	if len(undefined) > 0 {
		slices.Sort(undefined)
		return domain.BaseScore{}, fmt.Errorf("%w: undefined categories %q", domain.ErrInvariantViolation, undefined)
	}

	base := domain.BaseScore{Triggers: []string{}}
	for _, category := range domain.CategoryOrder {
		result, ok := findings[category]
		if !ok {
			return domain.BaseScore{}, fmt.Errorf("%w: missing category %q", domain.ErrInvariantViolation, category)
		}
		if result.Category != category {
			return domain.BaseScore{}, fmt.Errorf("%w: %q findings filed under %q", domain.ErrInvariantViolation, result.Category, category)
		}
		for _, f := range result.Findings {
			base.Score += f.Weight
			base.Triggers = append(base.Triggers, f.Reason)
		}
	}

	return base, nil
}
