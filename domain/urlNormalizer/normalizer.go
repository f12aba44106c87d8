// Package urlNormalizer turns raw hrefs into canonical absolute urls.
//
// Canonical form:
//   - scheme and host are lower case
//   - the default port of the scheme (:80 for http, :443 for https) is dropped
//   - the fragment is removed
//   - an empty path becomes "/"
//   - the query is kept as is
//
// Only http and https urls are accepted.
package urlNormalizer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrMalformed         = errors.New("malformed url")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)

var defaultPorts = map[string]string{
	"http":  ":80",
	"https": ":443",
}

// Resolve resolves ref against the url of the page it was found on and
// returns it in canonical form.
func Resolve(base *url.URL, ref string) (*url.URL, error) {
	ref = strings.TrimSpace(ref)

	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, ref, err)
	}

	return Normalize(base.ResolveReference(parsed))
}

// Normalize returns a canonical copy of u.
func Normalize(u *url.URL) (*url.URL, error) {
	n := *u
	n.Scheme = strings.ToLower(n.Scheme)

	defaultPort, ok := defaultPorts[n.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.String())
	}

	n.Host = strings.TrimSuffix(strings.ToLower(n.Host), defaultPort)
	if n.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrMalformed, u.String())
	}

	n.Fragment = ""
	n.RawFragment = ""
	if n.Path == "" {
		n.Path = "/"
		n.RawPath = ""
	}

	return &n, nil
}

// Key is the visited set entry for an already normalized url.
// "/blog" and "/blog/" share an entry; the root path is always "/".
func Key(u *url.URL) string {
	k := *u
	if k.Path != "/" {
		k.Path = strings.TrimRight(k.Path, "/")
		k.RawPath = strings.TrimRight(k.RawPath, "/")
		if k.Path == "" {
			k.Path = "/"
			k.RawPath = ""
		}
	}
	return k.String()
}
