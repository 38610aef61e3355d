package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/phishscan/internal/core/domain"
)

func withFindings(category domain.Category, findings ...domain.Finding) domain.CategoryResult {
	return domain.CategoryResult{Category: category, Findings: findings}
}

func TestAggregate_AllEmpty(t *testing.T) {
	base, err := Aggregate(domain.NewCategoryFindings())

	require.NoError(t, err)
	assert.Equal(t, 0, base.Score)
	assert.NotNil(t, base.Triggers)
	assert.Empty(t, base.Triggers)
}

func TestAggregate_FollowsCategoryOrder(t *testing.T) {
	findings := domain.NewCategoryFindings()
	findings[domain.CategoryMIME] = withFindings(domain.CategoryMIME, domain.Finding{Rule: RuleHTMLOnly, Weight: 5, Reason: "mime"})
	findings[domain.CategoryURL] = withFindings(domain.CategoryURL,
		domain.Finding{Rule: RuleIPLiteral, Weight: 30, Reason: "url one"},
		domain.Finding{Rule: RuleNonStandardPort, Weight: 10, Reason: "url two"},
	)
	findings[domain.CategoryAuthentication] = withFindings(domain.CategoryAuthentication, domain.Finding{Rule: RuleDMARCFail, Weight: 20, Reason: "auth"})

	base, err := Aggregate(findings)

	require.NoError(t, err)
	assert.Equal(t, 65, base.Score)
	assert.Equal(t, []string{"auth", "url one", "url two", "mime"}, base.Triggers)
}

func TestAggregate_IsDeterministic(t *testing.T) {
	findings := domain.NewCategoryFindings()
	for _, category := range domain.CategoryOrder {
		findings[category] = withFindings(category, domain.Finding{Rule: "r", Weight: 1, Reason: string(category)})
	}

	first, err := Aggregate(findings)
	require.NoError(t, err)
	for range 20 {
		again, err := Aggregate(findings)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 8, first.Score)
	assert.Equal(t, "authentication", first.Triggers[0])
	assert.Equal(t, "mime", first.Triggers[7])
}

func TestAggregate_DoesNotClamp(t *testing.T) {
	findings := domain.NewCategoryFindings()
	findings[domain.CategoryAttachment] = withFindings(domain.CategoryAttachment,
		domain.Finding{Weight: 40, Reason: "a"},
		domain.Finding{Weight: 40, Reason: "b"},
		domain.Finding{Weight: 40, Reason: "c"},
	)

	base, err := Aggregate(findings)

	require.NoError(t, err)
	assert.Equal(t, 120, base.Score)
}

func TestAggregate_UndefinedCategory(t *testing.T) {
	findings := domain.NewCategoryFindings()
	findings["reputation"] = withFindings("reputation", domain.Finding{Weight: 10, Reason: "x"})

	_, err := Aggregate(findings)

	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestAggregate_UndefinedCategoriesAreReportedInOrder(t *testing.T) {
	for range 20 {
		findings := domain.NewCategoryFindings()
		findings["reputation"] = withFindings("reputation", domain.Finding{Weight: 10, Reason: "x"})
		findings["dns"] = withFindings("dns", domain.Finding{Weight: 5, Reason: "y"})
		findings["blocklist"] = withFindings("blocklist")

		_, err := Aggregate(findings)

		require.ErrorIs(t, err, domain.ErrInvariantViolation)
		assert.Contains(t, err.Error(), `undefined categories ["blocklist" "dns" "reputation"]`)
	}
}

func TestAggregate_MissingCategory(t *testing.T) {
	findings := domain.NewCategoryFindings()
	delete(findings, domain.CategoryTiming)

	_, err := Aggregate(findings)

	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestAggregate_MisfiledResult(t *testing.T) {
	findings := domain.NewCategoryFindings()
	findings[domain.CategoryHeader] = withFindings(domain.CategoryURL)

	_, err := Aggregate(findings)

	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}
