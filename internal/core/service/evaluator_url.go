package service

import (
	"fmt"
	"net"
	"slices"
	"strings"

	"golang.org/x/net/publicsuffix"

	"stoik.com/phishscan/internal/core/domain"
)

// URLCheck is the per-URL breakdown reported in the url category details.
type URLCheck struct {
	URL   domain.URLDescriptor `json:"url"`
	Flags []string             `json:"flags"`
	Score int                  `json:"score"`
}

type URLSecurityEvaluator struct {
	policy Policy
	brands brandMatcher
}

func NewURLSecurityEvaluator(policy Policy, brands []domain.Brand) *URLSecurityEvaluator {
	return &URLSecurityEvaluator{
		policy: policy,
		brands: newBrandMatcher(brands),
	}
}

func (e *URLSecurityEvaluator) Category() domain.Category {
	return domain.CategoryURL
}

func (e *URLSecurityEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	all := newFindingList(e.policy)
	checks := make([]URLCheck, 0, len(evidence.URLs))

	for _, u := range evidence.URLs {
		findings := e.inspect(u)
		check := URLCheck{URL: u, Flags: []string{}}
		for _, f := range findings.findings {
			check.Flags = append(check.Flags, f.Rule)
			check.Score += f.Weight
		}
		all.findings = append(all.findings, findings.findings...)
		checks = append(checks, check)
	}

	return all.result(domain.CategoryURL, checks)
}

func (e *URLSecurityEvaluator) inspect(u domain.URLDescriptor) *findingList {
	findings := newFindingList(e.policy)
	hasUserInfo, host, port := splitAuthority(u.Domain)

	if net.ParseIP(host) != nil {
		findings.add(RuleIPLiteral, fmt.Sprintf("URL uses a raw IP address (%s)", host))
	}
	if hasUserInfo {
		findings.add(RuleUserInfo, fmt.Sprintf("URL hides its destination behind user-info (%s)", u.Domain))
	}

	if net.ParseIP(host) == nil && host != "" {
		if tld, _ := publicsuffix.PublicSuffix(host); slices.Contains(e.policy.SuspiciousTLDs, tld) {
			findings.add(RuleSuspiciousTLD, fmt.Sprintf("Suspicious top-level domain (.%s) in %s", tld, host))
		}
		if brand, ok := e.brands.imitated(host); ok {
			findings.add(RuleBrandLookalike, fmt.Sprintf("Domain %s imitates brand %q", host, brand))
		}
		if hasPunycodeLabel(host) {
			findings.add(RulePunycode, fmt.Sprintf("Internationalised (punycode) domain %s", host))
		}
		if depth := subdomainDepth(host); depth > e.policy.MaxSubdomains {
			findings.add(RuleExcessiveSubdomains, fmt.Sprintf("Excessive subdomain depth (%d) in %s", depth, host))
		}
	}

	if port != "" && !slices.Contains(e.policy.StandardPorts, port) {
		findings.add(RuleNonStandardPort, fmt.Sprintf("Non-standard port %s in %s", port, host))
	}

	return findings
}

// splitAuthority separates user-info, host and port of a URL authority.
func splitAuthority(authority string) (hasUserInfo bool, host, port string) {
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		hasUserInfo = true
		authority = authority[at+1:]
	}
	host = authority
	if h, p, err := net.SplitHostPort(authority); err == nil {
		host, port = h, p
	}
	host = strings.Trim(host, "[]")
	return hasUserInfo, normalizeHost(host), port
}

func hasPunycodeLabel(host string) bool {
	for _, label := range strings.Split(host, ".") {
		if strings.HasPrefix(label, "xn--") {
			return true
		}
	}
	return false
}

func subdomainDepth(host string) int {
	registrable := registrableDomain(host)
	if registrable == host {
		return 0
	}
	prefix := strings.TrimSuffix(host, "."+registrable)
	depth := strings.Count(prefix, ".") + 1
	if strings.HasPrefix(prefix, "www.") || prefix == "www" {
		depth--
	}
	return depth
}
