package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/phishscan/internal/core/domain"
)

func TestExtractURLs_EmptyText(t *testing.T) {
	urls := ExtractURLs("")

	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}

func TestExtractURLs_NoURLs(t *testing.T) {
	urls := ExtractURLs("Hi team, lunch is at noon. See you there!")

	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}

func TestExtractURLs_PreservesOrderAndDuplicates(t *testing.T) {
	text := "first https://example.com/a then www.example.org/b and again https://example.com/a"

	urls := ExtractURLs(text)

	require.Len(t, urls, 3)
	assert.Equal(t, "https://example.com/a", urls[0].FullURL)
	assert.Equal(t, "http://www.example.org/b", urls[1].FullURL)
	assert.Equal(t, "https://example.com/a", urls[2].FullURL)
}

func TestExtractURLs_WWWGetsHTTPScheme(t *testing.T) {
	urls := ExtractURLs("go to www.example.com/login now")

	require.Len(t, urls, 1)
	assert.Equal(t, domain.URLDescriptor{
		FullURL: "http://www.example.com/login",
		Domain:  "www.example.com",
		Path:    "/login",
		Scheme:  "http",
	}, urls[0])
}

func TestExtractURLs_StopsAtTerminators(t *testing.T) {
	text := `<a href="https://example.com/x">link</a> (http://example.net/y) 'http://example.org/z'`

	urls := ExtractURLs(text)

	require.Len(t, urls, 3)
	assert.Equal(t, "https://example.com/x", urls[0].FullURL)
	assert.Equal(t, "http://example.net/y", urls[1].FullURL)
	assert.Equal(t, "http://example.org/z", urls[2].FullURL)
}

func TestExtractURLs_DecomposesAuthority(t *testing.T) {
	urls := ExtractURLs("https://user:pw@example.com:8443/a/b?q=1")

	require.Len(t, urls, 1)
	assert.Equal(t, "https://user:pw@example.com:8443/a/b?q=1", urls[0].FullURL)
	assert.Equal(t, "user:pw@example.com:8443", urls[0].Domain)
	assert.Equal(t, "/a/b", urls[0].Path)
	assert.Equal(t, "https", urls[0].Scheme)
}

func TestExtractURLs_SkipsUnparseable(t *testing.T) {
	urls, errs := extractURLs("broken http:///nohost then fine https://example.com")

	require.Len(t, urls, 1)
	assert.Equal(t, "https://example.com", urls[0].FullURL)
	assert.Equal(t, "", urls[0].Path)

	require.Len(t, errs, 1)
	var parseErr *domain.URLParseError
	require.True(t, errors.As(errs[0], &parseErr))
	assert.Equal(t, "http:///nohost", parseErr.Raw)
	assert.ErrorIs(t, errs[0], errMissingHost)
}

func TestExtractURLs_RebuiltURLRoundTrips(t *testing.T) {
	text := "http://example.com/login https://sub.example.co.uk/a/b " +
		"http://192.168.0.1:8080/admin https://user:pw@example.com:8443/a/b?q=1 " +
		"www.example.org/reset https://admin@paypa1-secure.ru/%7Euser/login"

	urls := ExtractURLs(text)
	require.Len(t, urls, 6)

	for _, d := range urls {
		rebuilt := d.Scheme + "://" + d.Domain + d.Path

		again := ExtractURLs(rebuilt)

		require.Len(t, again, 1, rebuilt)
		assert.Equal(t, d.Scheme, again[0].Scheme, rebuilt)
		assert.Equal(t, d.Domain, again[0].Domain, rebuilt)
		assert.Equal(t, d.Path, again[0].Path, rebuilt)
	}
}

func TestExtractHTMLLinks(t *testing.T) {
	body := `<html><body>
		<a href="https://example.com/a">a</a>
		<a href="mailto:someone@example.com">mail</a>
		<a href="/relative">rel</a>
		<map><area href="www.example.org/b"></map>
	</body></html>`

	urls := ExtractHTMLLinks(body)

	require.Len(t, urls, 2)
	assert.Equal(t, "https://example.com/a", urls[0].FullURL)
	assert.Equal(t, "http://www.example.org/b", urls[1].FullURL)
}

func TestExtractHTMLLinks_Empty(t *testing.T) {
	assert.Empty(t, ExtractHTMLLinks(""))
}
