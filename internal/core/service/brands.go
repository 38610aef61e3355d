package service

import (
	"math"
	"net"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"stoik.com/phishscan/internal/core/domain"
)

// DefaultBrands is the catalogue used when no brand storage is configured.
func DefaultBrands() []domain.Brand {
	return []domain.Brand{
		{Name: "paypal", Domains: []string{"paypal.com", "paypal.me"}},
		{Name: "apple", Domains: []string{"apple.com", "icloud.com"}},
		{Name: "icloud", Domains: []string{"icloud.com", "apple.com"}},
		{Name: "microsoft", Domains: []string{"microsoft.com", "live.com", "office.com", "microsoftonline.com"}},
		{Name: "outlook", Domains: []string{"outlook.com", "live.com", "office.com"}},
		{Name: "office365", Domains: []string{"office.com", "microsoft.com"}},
		{Name: "amazon", Domains: []string{"amazon.com", "amazon.co.uk", "amazon.de", "amazon.fr"}},
		{Name: "google", Domains: []string{"google.com", "gmail.com", "youtube.com"}},
		{Name: "netflix", Domains: []string{"netflix.com"}},
		{Name: "facebook", Domains: []string{"facebook.com", "fb.com", "meta.com"}},
		{Name: "instagram", Domains: []string{"instagram.com"}},
		{Name: "linkedin", Domains: []string{"linkedin.com"}},
		{Name: "dropbox", Domains: []string{"dropbox.com"}},
		{Name: "docusign", Domains: []string{"docusign.com", "docusign.net"}},
		{Name: "adobe", Domains: []string{"adobe.com"}},
		{Name: "wellsfargo", Domains: []string{"wellsfargo.com"}},
		{Name: "chase", Domains: []string{"chase.com"}},
		{Name: "coinbase", Domains: []string{"coinbase.com"}},
		{Name: "binance", Domains: []string{"binance.com"}},
		{Name: "dhl", Domains: []string{"dhl.com", "dhl.de"}},
		{Name: "fedex", Domains: []string{"fedex.com"}},
	}
}

var homoglyphs = strings.NewReplacer("0", "o", "1", "l", "3", "e", "5", "s", "vv", "w", "rn", "m")

type brandMatcher struct {
	brands []domain.Brand
}

func newBrandMatcher(brands []domain.Brand) brandMatcher {
	normalized := make([]domain.Brand, 0, len(brands))
	for _, b := range brands {
		name := strings.ToLower(strings.TrimSpace(b.Name))
		if name == "" {
			continue
		}
		domains := make([]string, 0, len(b.Domains))
		for _, d := range b.Domains {
			domains = append(domains, strings.ToLower(strings.TrimSpace(d)))
		}
		normalized = append(normalized, domain.Brand{Name: name, Domains: domains})
	}
	return brandMatcher{brands: normalized}
}

// imitated returns the brand a host pretends to be, if any. Only the registrable
// label is compared with brand names, except for a brand domain embedded in the
// subdomains (paypal.com.verify.net). Hosts that belong to a brand imitate nothing.
func (m brandMatcher) imitated(host string) (string, bool) {
	host = normalizeHost(host)
	if host == "" || net.ParseIP(host) != nil || m.owns(host) {
		return "", false
	}

	registrable := registrableDomain(host)
	tokens := strings.FieldsFunc(registrableLabel(registrable), func(r rune) bool {
		return r == '-' || r == '_'
	})
	subdomains := homoglyphs.Replace(strings.TrimSuffix(strings.TrimSuffix(host, registrable), "."))

	for _, brand := range m.brands {
		for _, token := range tokens {
			if resembles(token, brand.Name) {
				return brand.Name, true
			}
		}
		if embedsDomain(subdomains, brand.Domains) {
			return brand.Name, true
		}
	}
	return "", false
}

// owns reports whether host is under a catalogued brand domain, or whether its
// registrable label is a brand name under any public suffix (google.co.uk, amazon.ca).
func (m brandMatcher) owns(host string) bool {
	label := registrableLabel(registrableDomain(host))
	for _, brand := range m.brands {
		if label == brand.Name || ownedBy(host, brand.Domains) {
			return true
		}
	}
	return false
}

func ownedBy(host string, domains []string) bool {
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func embedsDomain(subdomains string, domains []string) bool {
	if subdomains == "" {
		return false
	}
	for _, d := range domains {
		if strings.Contains("."+subdomains+".", "."+d+".") {
			return true
		}
	}
	return false
}

// registrableLabel strips the public suffix from a registrable domain: paypal.co.uk -> paypal.
func registrableLabel(registrable string) string {
	suffix, _ := publicsuffix.PublicSuffix(registrable)
	if suffix == registrable {
		return ""
	}
	return strings.TrimSuffix(registrable, "."+suffix)
}

// resembles matches the brand itself and its homoglyph spellings. Plain typos only
// count for names of at least minFuzzyBrandLength letters; shorter names sit one edit
// away from ordinary words (apple/apply, chase/phase).
func resembles(token, brand string) bool {
	folded := homoglyphs.Replace(token)
	if token == brand || folded == brand {
		return true
	}
	if len(brand) < minFuzzyBrandLength || len(folded) < 4 {
		return false
	}
	return fuzzy.LevenshteinDistance(folded, brand) <= lookalikeThreshold(brand)
}

const minFuzzyBrandLength = 8

// lookalikeThreshold allows one edit up to eleven letters and roughly 15% beyond.
func lookalikeThreshold(name string) int {
	switch l := len(name); {
	case l <= 11:
		return 1
	case l <= 15:
		return 2
	default:
		return int(math.Ceil(float64(l) * 0.15))
	}
}

// normalizeHost lower-cases a host, drops a trailing dot and converts IDNs to ASCII.
func normalizeHost(host string) string {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		return ascii
	}
	return host
}

// registrableDomain returns eTLD+1 of host, or host itself when it has none.
func registrableDomain(host string) string {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}

// emailDomain extracts the lower-cased domain of an address such as "Name <a@b.com>".
func emailDomain(address string) string {
	address = strings.TrimSpace(address)
	if i := strings.LastIndex(address, "<"); i >= 0 {
		address = address[i+1:]
		address = strings.TrimSuffix(strings.TrimSpace(address), ">")
	}
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return ""
	}
	return normalizeHost(strings.Trim(address[at+1:], "> "))
}
