package service

import (
	"time"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
)

// NewEvaluators returns one evaluator per category configured with policy and brands.
func NewEvaluators(policy Policy, brands []domain.Brand, now func() time.Time) []port.Evaluator {
	return []port.Evaluator{
		NewAuthenticationEvaluator(policy),
		NewDomainEvaluator(policy, brands),
		NewURLSecurityEvaluator(policy, brands),
		NewAttachmentEvaluator(policy),
		NewInfrastructureEvaluator(policy),
		NewHeaderEvaluator(policy),
		NewTimingEvaluator(policy, now),
		NewMIMEEvaluator(policy),
	}
}

// Evaluate runs the evaluator registered for each category. Categories without an
// evaluator get an empty result.
func Evaluate(evaluators map[domain.Category]port.Evaluator, evidence domain.Evidence) domain.CategoryFindings {
	findings := domain.NewCategoryFindings()
	for _, category := range domain.CategoryOrder {
		evaluator, ok := evaluators[category]
		if !ok {
			continue
		}
		findings[category] = evaluator.Evaluate(evidence)
	}
	return findings
}
