package urlFetcherExtractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"subdomainCrawler/domain/models"
)

// MaxBodyBytes caps how much of a response body is read.
const MaxBodyBytes = 10 << 20

type HTTPFetcherExtractor struct {
	client    *http.Client
	userAgent string
}

// SameHostRedirects is an http.Client CheckRedirect that refuses to follow a redirect to another host.
// The redirect response itself is returned instead.
func SameHostRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return errors.New("stopped after 10 redirects")
	}
	if !strings.EqualFold(req.URL.Host, via[0].URL.Host) {
		return http.ErrUseLastResponse
	}
	return nil
}

// NewHTTPFetcherExtractor uses client for every request. The client is owned by the caller.
func NewHTTPFetcherExtractor(client *http.Client, userAgent string) HTTPFetcherExtractor {
	return HTTPFetcherExtractor{
		client:    client,
		userAgent: userAgent,
	}
}

// Fetch issues a GET for url. The deadline is taken from ctx.
// The body is decoded to UTF-8 using the charset announced by the server.
func (fe HTTPFetcherExtractor) Fetch(ctx context.Context, url *url.URL) (models.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), http.NoBody)
	if err != nil {
		return models.Response{}, err
	}
	if fe.userAgent != "" {
		req.Header.Set("User-Agent", fe.userAgent)
	}

	resp, err := fe.client.Do(req)
	if err != nil {
		return models.Response{}, err
	}
	defer resp.Body.Close()

	response := models.Response{
		URL:         resp.Request.URL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodyBytes), response.ContentType)
	if err != nil {
		return response, fmt.Errorf("decoding body of %s: %w", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return response, fmt.Errorf("reading body of %s: %w", url, err)
	}
	response.Body = string(body)

	return response, nil
}

// Extract returns the raw href of every anchor in contents, in document order.
// It never fails; unparsable html just yields fewer links.
func (fe HTTPFetcherExtractor) Extract(contents string) []string {
	return getLinks(strings.NewReader(contents))
}

// Collect all hrefs from the body. <noscript> content is tokenized as raw text so it is scanned again.
func getLinks(body io.Reader) []string {
	links := []string{}
	inNoscript := false

	z := html.NewTokenizer(body)
	for {
		tt := z.Next()

		switch tt {
		case html.ErrorToken:
			return links
		case html.TextToken:
			if inNoscript {
				links = append(links, getLinks(strings.NewReader(string(z.Text())))...)
			}
		case html.EndTagToken:
			if token := z.Token(); token.Data == "noscript" {
				inNoscript = false
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			switch token.Data {
			case "noscript":
				inNoscript = tt == html.StartTagToken
			case "a":
				for _, attr := range token.Attr {
					if attr.Key == "href" {
						links = append(links, attr.Val)
					}
				}
			}
		}
	}
}
