package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"stoik.com/phishscan/internal/core/domain"
)

var unnamedRelayPattern = regexp.MustCompile(`(?i)^\s*from\s+(unknown\b[^;]*|\[[0-9a-f.:]+\])`)

type InfrastructureEvaluator struct {
	policy Policy
}

func NewInfrastructureEvaluator(policy Policy) *InfrastructureEvaluator {
	return &InfrastructureEvaluator{policy: policy}
}

func (e *InfrastructureEvaluator) Category() domain.Category {
	return domain.CategoryInfrastructure
}

func (e *InfrastructureEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	msg := evidence.Message
	if msg == nil {
		return findings.result(domain.CategoryInfrastructure, nil)
	}

	hops := len(msg.Received)
	if hops > e.policy.MaxReceivedHops {
		findings.add(RuleExcessiveHops, fmt.Sprintf("Message relayed through %d hops", hops))
	}
	for _, received := range msg.Received {
		if m := unnamedRelayPattern.FindStringSubmatch(received); m != nil {
			findings.add(RuleUnnamedRelay, fmt.Sprintf("Relay without reverse DNS: %s", strings.TrimSpace(m[1])))
			break
		}
	}

	return findings.result(domain.CategoryInfrastructure, map[string]int{"hops": hops})
}

type HeaderEvaluator struct {
	policy Policy
}

func NewHeaderEvaluator(policy Policy) *HeaderEvaluator {
	return &HeaderEvaluator{policy: policy}
}

func (e *HeaderEvaluator) Category() domain.Category {
	return domain.CategoryHeader
}

func (e *HeaderEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	msg := evidence.Message
	if msg == nil {
		return findings.result(domain.CategoryHeader, nil)
	}

	from := emailDomain(msg.From)
	if strings.TrimSpace(msg.From) == "" {
		findings.add(RuleMissingFrom, "Message has no From header")
	}

	messageID := strings.TrimSpace(msg.MessageID)
	if messageID == "" {
		findings.add(RuleMissingMessageID, "Message has no Message-ID header")
	} else if idDomain := emailDomain(strings.Trim(messageID, "<>")); idDomain != "" && from != "" &&
		registrableDomain(idDomain) != registrableDomain(from) {
		findings.add(RuleMessageIDMismatch, fmt.Sprintf("Message-ID domain %s differs from sender domain %s", idDomain, from))
	}

	return findings.result(domain.CategoryHeader, nil)
}

type TimingEvaluator struct {
	policy Policy
	now    func() time.Time
}

// NewTimingEvaluator uses now as the reference clock; time.Now when nil.
func NewTimingEvaluator(policy Policy, now func() time.Time) *TimingEvaluator {
	if now == nil {
		now = time.Now
	}
	return &TimingEvaluator{policy: policy, now: now}
}

func (e *TimingEvaluator) Category() domain.Category {
	return domain.CategoryTiming
}

func (e *TimingEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	msg := evidence.Message
	if msg == nil {
		return findings.result(domain.CategoryTiming, nil)
	}

	if !msg.HasDate {
		findings.add(RuleMissingDate, "Message has no valid Date header")
		return findings.result(domain.CategoryTiming, nil)
	}

	now := e.now()
	switch {
	case msg.Date.After(now.Add(e.policy.FutureDateSkew)):
		findings.add(RuleFutureDate, fmt.Sprintf("Message is dated in the future (%s)", msg.Date.UTC().Format(time.RFC3339)))
	case now.Sub(msg.Date) > e.policy.StaleDateAge:
		findings.add(RuleStaleDate, fmt.Sprintf("Message is dated long ago (%s)", msg.Date.UTC().Format(time.RFC3339)))
	}

	return findings.result(domain.CategoryTiming, nil)
}
