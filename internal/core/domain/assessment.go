package domain

type Category string

const (
	CategoryAuthentication Category = "authentication"
	CategoryDomain         Category = "domain"
	CategoryURL            Category = "url"
	CategoryAttachment     Category = "attachment"
	CategoryInfrastructure Category = "infrastructure"
	CategoryHeader         Category = "header"
	CategoryTiming         Category = "timing"
	CategoryMIME           Category = "mime"
)

// CategoryOrder is the order in which findings are folded into the score and triggers.
var CategoryOrder = []Category{
	CategoryAuthentication,
	CategoryDomain,
	CategoryURL,
	CategoryAttachment,
	CategoryInfrastructure,
	CategoryHeader,
	CategoryTiming,
	CategoryMIME,
}

func (c Category) Valid() bool {
	for _, known := range CategoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

type Verdict string

const (
	VerdictSafe       Verdict = "SAFE"
	VerdictSuspicious Verdict = "SUSPICIOUS"
	VerdictPhishing   Verdict = "PHISHING"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Finding is one piece of weighted evidence. Reason is surfaced to the caller as a trigger.
type Finding struct {
	Rule   string `json:"rule"`
	Weight int    `json:"weight"`
	Reason string `json:"reason"`
}

type CategoryResult struct {
	Category Category  `json:"category"`
	Findings []Finding `json:"findings"`
	Details  any       `json:"details,omitempty"`
}

// EmptyResult is what an evaluator returns when its input is absent.
func EmptyResult(category Category) CategoryResult {
	return CategoryResult{
		Category: category,
		Findings: []Finding{},
	}
}

// Score sums the weights of the result's findings.
func (r CategoryResult) Score() int {
	total := 0
	for _, f := range r.Findings {
		total += f.Weight
	}
	return total
}

type CategoryFindings map[Category]CategoryResult

// NewCategoryFindings returns findings holding an empty result for every category.
func NewCategoryFindings() CategoryFindings {
	findings := make(CategoryFindings, len(CategoryOrder))
	for _, category := range CategoryOrder {
		findings[category] = EmptyResult(category)
	}
	return findings
}

type MLResult struct {
	ModelScore    float64 `json:"model_score"`
	Label         string  `json:"label"`
	RawConfidence float64 `json:"raw_confidence"`
}

// BaseScore is the rule-based aggregate before ML blending. Score is not clamped.
type BaseScore struct {
	Score    int
	Triggers []string
}

type RiskAssessment struct {
	Score       int            `json:"score"`
	Verdict     Verdict        `json:"verdict"`
	RiskLevel   RiskLevel      `json:"risk_level"`
	Triggers    []string       `json:"triggers"`
	MLAnalysis  MLResult       `json:"ml_analysis"`
	URLAnalysis CategoryResult `json:"url_analysis"`
}
