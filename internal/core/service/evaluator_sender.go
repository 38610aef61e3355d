package service

import (
	"fmt"
	"regexp"
	"strings"

	"stoik.com/phishscan/internal/core/domain"
)

var authResultPattern = regexp.MustCompile(`(?i)\b(spf|dkim|dmarc)\s*=\s*([a-z]+)`)

// AuthenticationEvaluator reads the verdicts recorded by the receiving server in
// Authentication-Results. It performs no DNS lookups of its own.
type AuthenticationEvaluator struct {
	policy Policy
}

func NewAuthenticationEvaluator(policy Policy) *AuthenticationEvaluator {
	return &AuthenticationEvaluator{policy: policy}
}

func (e *AuthenticationEvaluator) Category() domain.Category {
	return domain.CategoryAuthentication
}

func (e *AuthenticationEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	if evidence.Message == nil {
		return findings.result(domain.CategoryAuthentication, nil)
	}

	results := map[string]string{}
	for _, header := range evidence.Message.AuthenticationResults {
		for _, m := range authResultPattern.FindAllStringSubmatch(header, -1) {
			method := strings.ToLower(m[1])
			if _, seen := results[method]; !seen {
				results[method] = strings.ToLower(m[2])
			}
		}
	}

	switch results["spf"] {
	case "fail", "softfail":
		findings.add(RuleSPFFail, fmt.Sprintf("SPF check %s for sender", results["spf"]))
	}
	if results["dkim"] == "fail" {
		findings.add(RuleDKIMFail, "DKIM signature verification failed")
	}
	if results["dmarc"] == "fail" {
		findings.add(RuleDMARCFail, "DMARC policy check failed")
	}

	return findings.result(domain.CategoryAuthentication, results)
}

// DomainEvaluator compares the sender's domains with each other and with the brand catalogue.
type DomainEvaluator struct {
	policy Policy
	brands brandMatcher
}

func NewDomainEvaluator(policy Policy, brands []domain.Brand) *DomainEvaluator {
	return &DomainEvaluator{
		policy: policy,
		brands: newBrandMatcher(brands),
	}
}

func (e *DomainEvaluator) Category() domain.Category {
	return domain.CategoryDomain
}

func (e *DomainEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	msg := evidence.Message
	if msg == nil {
		return findings.result(domain.CategoryDomain, nil)
	}

	from := emailDomain(msg.From)
	if from == "" {
		return findings.result(domain.CategoryDomain, nil)
	}

	if brand, ok := e.brands.imitated(from); ok {
		findings.add(RuleSenderLookalike, fmt.Sprintf("Sender domain %s imitates brand %q", from, brand))
	}
	if replyTo := emailDomain(msg.ReplyTo); replyTo != "" && registrableDomain(replyTo) != registrableDomain(from) {
		findings.add(RuleReplyToMismatch, fmt.Sprintf("Reply-To domain %s differs from sender domain %s", replyTo, from))
	}
	if returnPath := emailDomain(msg.ReturnPath); returnPath != "" && registrableDomain(returnPath) != registrableDomain(from) {
		findings.add(RuleReturnPathMismatch, fmt.Sprintf("Return-Path domain %s differs from sender domain %s", returnPath, from))
	}

	return findings.result(domain.CategoryDomain, map[string]string{"sender_domain": from})
}
