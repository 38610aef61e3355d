package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"stoik.com/phishscan/internal/core/domain"
)

var urlPattern = regexp.MustCompile(`(https?://[^\s<>"'()]+|www\.[^\s<>"'()]+)`)

var errMissingHost = errors.New("missing host")

// ExtractURLs finds http://, https:// and www. substrings in text and decomposes each
// match. Matches that cannot be parsed are logged and skipped.
func ExtractURLs(text string) []domain.URLDescriptor {
	urls, errs := extractURLs(text)
	for _, err := range errs {
		log.WithError(err).Warn("Skipping unparseable URL")
	}
	return urls
}

func extractURLs(text string) ([]domain.URLDescriptor, []error) {
	urls := []domain.URLDescriptor{}
	if text == "" {
		return urls, nil
	}

	var errs []error
	for _, match := range urlPattern.FindAllString(text, -1) {
		descriptor, err := NormalizeURL(match)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		urls = append(urls, descriptor)
	}
	return urls, errs
}

// NormalizeURL turns a raw URL-like string into a descriptor. Strings without a scheme
// get http:// prepended so they can be parsed; it says nothing about the real scheme.
func NormalizeURL(raw string) (domain.URLDescriptor, error) {
	full := raw
	if !strings.HasPrefix(full, "http") {
		full = "http://" + full
	}

	u, err := url.Parse(full)
	if err != nil {
		return domain.URLDescriptor{}, &domain.URLParseError{Raw: raw, Err: err}
	}
	if u.Host == "" {
		return domain.URLDescriptor{}, &domain.URLParseError{Raw: raw, Err: errMissingHost}
	}

	authority := u.Host
	if u.User != nil {
		authority = u.User.String() + "@" + u.Host
	}

	return domain.URLDescriptor{
		FullURL: full,
		Domain:  authority,
		Path:    u.EscapedPath(),
		Scheme:  u.Scheme,
	}, nil
}

// ExtractHTMLLinks returns the http(s) targets of anchor and area elements in an HTML body.
func ExtractHTMLLinks(body string) []domain.URLDescriptor {
	urls := []domain.URLDescriptor{}
	if body == "" {
		return urls
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("Failed to parse HTML body for links")
		return urls
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "a" || n.Data == "area") {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := strings.TrimSpace(attr.Val)
				if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") && !strings.HasPrefix(href, "www.") {
					continue
				}
				descriptor, err := NormalizeURL(href)
				if err != nil {
					log.WithError(err).Warn("Skipping unparseable link")
					continue
				}
				urls = append(urls, descriptor)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return urls
}
