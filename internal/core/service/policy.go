package service

import (
	"time"

	"stoik.com/phishscan/internal/core/domain"
)

// Rule names. Each rule contributes at most one finding per inspected item.
const (
	RuleIPLiteral           = "ip_literal"
	RuleUserInfo            = "userinfo"
	RuleSuspiciousTLD       = "suspicious_tld"
	RuleBrandLookalike      = "brand_lookalike"
	RulePunycode            = "punycode"
	RuleExcessiveSubdomains = "excessive_subdomains"
	RuleNonStandardPort     = "non_standard_port"

	RuleSPFFail   = "spf_fail"
	RuleDKIMFail  = "dkim_fail"
	RuleDMARCFail = "dmarc_fail"

	RuleSenderLookalike    = "sender_lookalike"
	RuleReplyToMismatch    = "reply_to_mismatch"
	RuleReturnPathMismatch = "return_path_mismatch"

	RuleDangerousAttachment = "dangerous_attachment"
	RuleDoubleExtension     = "double_extension"
	RuleMacroDocument       = "macro_document"
	RuleDisguisedExecutable = "disguised_executable"

	RuleExcessiveHops = "excessive_hops"
	RuleUnnamedRelay  = "unnamed_relay"

	RuleMissingMessageID  = "missing_message_id"
	RuleMessageIDMismatch = "message_id_mismatch"
	RuleMissingFrom       = "missing_from"

	RuleMissingDate = "missing_date"
	RuleFutureDate  = "future_date"
	RuleStaleDate   = "stale_date"

	RuleMalformedMIME = "malformed_mime"
	RuleHTMLOnly      = "html_only"
)

// Policy holds the heuristic weights and thresholds of every evaluator.
type Policy struct {
	Weights             map[string]int
	SuspiciousTLDs      []string
	MaxSubdomains       int
	StandardPorts       []string
	DangerousExtensions []string
	MacroExtensions     []string
	MaxReceivedHops     int
	FutureDateSkew      time.Duration
	StaleDateAge        time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Weights: map[string]int{
			RuleIPLiteral:           30,
			RuleUserInfo:            20,
			RuleSuspiciousTLD:       15,
			RuleBrandLookalike:      15,
			RulePunycode:            15,
			RuleExcessiveSubdomains: 10,
			RuleNonStandardPort:     10,

			RuleSPFFail:   15,
			RuleDKIMFail:  10,
			RuleDMARCFail: 20,

			RuleSenderLookalike:    25,
			RuleReplyToMismatch:    15,
			RuleReturnPathMismatch: 10,

			RuleDangerousAttachment: 30,
			RuleDoubleExtension:     20,
			RuleMacroDocument:       15,
			RuleDisguisedExecutable: 40,

			RuleExcessiveHops: 10,
			RuleUnnamedRelay:  5,

			RuleMissingMessageID:  10,
			RuleMessageIDMismatch: 5,
			RuleMissingFrom:       15,

			RuleMissingDate: 5,
			RuleFutureDate:  10,
			RuleStaleDate:   5,

			RuleMalformedMIME: 10,
			RuleHTMLOnly:      5,
		},
		SuspiciousTLDs: []string{
			"ru", "tk", "ml", "ga", "cf", "gq", "xyz", "top", "zip", "mov", "click", "work", "loan", "icu", "cn",
		},
		MaxSubdomains: 3,
		StandardPorts: []string{"80", "443"},
		DangerousExtensions: []string{
			"exe", "scr", "com", "pif", "bat", "cmd", "js", "jse", "vbs", "vbe", "wsf", "hta", "jar", "msi", "iso", "img", "lnk", "ps1",
		},
		MacroExtensions: []string{"docm", "xlsm", "pptm", "dotm", "xlam"},
		MaxReceivedHops: 10,
		FutureDateSkew:  24 * time.Hour,
		StaleDateAge:    365 * 24 * time.Hour,
	}
}

// Weight returns the configured weight of a rule, zero for unknown rules.
func (p Policy) Weight(rule string) int {
	return p.Weights[rule]
}

// findingList collects findings in discovery order, skipping rules weighted zero.
type findingList struct {
	policy   Policy
	findings []domain.Finding
}

func newFindingList(policy Policy) *findingList {
	return &findingList{policy: policy, findings: []domain.Finding{}}
}

func (l *findingList) add(rule, reason string) {
	weight := l.policy.Weight(rule)
	if weight == 0 {
		return
	}
	l.findings = append(l.findings, domain.Finding{Rule: rule, Weight: weight, Reason: reason})
}

func (l *findingList) result(category domain.Category, details any) domain.CategoryResult {
	return domain.CategoryResult{
		Category: category,
		Findings: l.findings,
		Details:  details,
	}
}
