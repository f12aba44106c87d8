package urlFetcherExtractor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subdomainCrawler/domain/adapters/urlFetcherExtractor"
)

func TestHTTPFetcherExtractor_Fetch(t *testing.T) {
	t.Run("returns status, content type and body", func(t *testing.T) {
		userAgents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgents <- r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=UTF-8")
			_, _ = w.Write([]byte(`<a href="/a">Monzo</a>`))
		}))
		defer server.Close()

		fe := urlFetcherExtractor.NewHTTPFetcherExtractor(server.Client(), "subdomainCrawler/test")
		target, err := url.Parse(server.URL)
		require.NoError(t, err)

		resp, err := fe.Fetch(context.Background(), target)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/html; charset=UTF-8", resp.ContentType)
		assert.Equal(t, `<a href="/a">Monzo</a>`, resp.Body)
		assert.Equal(t, "subdomainCrawler/test", <-userAgents)
	})
	t.Run("non 2xx is reported, not judged", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		fe := urlFetcherExtractor.NewHTTPFetcherExtractor(server.Client(), "")
		target, _ := url.Parse(server.URL)

		resp, err := fe.Fetch(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
	t.Run("decodes the announced charset to utf-8", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=ISO-8859-1")
			_, _ = w.Write([]byte{'c', 'a', 'f', 0xe9})
		}))
		defer server.Close()

		fe := urlFetcherExtractor.NewHTTPFetcherExtractor(server.Client(), "")
		target, _ := url.Parse(server.URL)

		resp, err := fe.Fetch(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, "café", resp.Body)
	})
	t.Run("reports the url a redirect ended on", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.Handle("/old", http.RedirectHandler("/new", http.StatusMovedPermanently))
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fe := urlFetcherExtractor.NewHTTPFetcherExtractor(server.Client(), "")
		target, _ := url.Parse(server.URL + "/old")

		resp, err := fe.Fetch(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/new", resp.URL.String())
		assert.Equal(t, "moved", resp.Body)
	})
	t.Run("does not follow a redirect to another host", func(t *testing.T) {
		otherHits := make(chan struct{}, 1)
		other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			otherHits <- struct{}{}
		}))
		defer other.Close()
		server := httptest.NewServer(http.RedirectHandler(other.URL+"/landing", http.StatusFound))
		defer server.Close()

		client := server.Client()
		client.CheckRedirect = urlFetcherExtractor.SameHostRedirects
		fe := urlFetcherExtractor.NewHTTPFetcherExtractor(client, "")
		target, _ := url.Parse(server.URL + "/out")

		resp, err := fe.Fetch(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, server.URL+"/out", resp.URL.String())
		assert.Empty(t, otherHits)
	})
	t.Run("deadline exceeded is an error", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		fe := urlFetcherExtractor.NewHTTPFetcherExtractor(server.Client(), "")
		target, _ := url.Parse(server.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := fe.Fetch(ctx, target)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestHTTPFetcherExtractor_Extract(t *testing.T) {
	fe := urlFetcherExtractor.NewHTTPFetcherExtractor(http.DefaultClient, "")

	t.Run("returns hrefs in document order", func(t *testing.T) {
		body := `<html><body>
			<a href="/a">A</a>
			<a href="/a">A again</a>
			<a name="no-href">none</a>
			<a href="https://other.com/b"/>
			<link href="/style.css">
			<a href='mailto:help@monzo.com'></a>
		</body></html>`

		assert.Equal(t, []string{"/a", "/a", "https://other.com/b", "mailto:help@monzo.com"}, fe.Extract(body))
	})
	t.Run("scans anchors inside noscript", func(t *testing.T) {
		body := `<html><body><a href="/outside"></a><noscript><a href="/inside"></a></noscript><a href="/after"></a></body></html>`

		assert.Equal(t, []string{"/outside", "/inside", "/after"}, fe.Extract(body))
	})
	t.Run("garbage yields no links", func(t *testing.T) {
		assert.Empty(t, fe.Extract("<<<>>> not html at all"))
		assert.Empty(t, fe.Extract(""))
	})
}
