package sameDomainFilter

import (
	"net/url"
	"path"
	"strings"
)

// Filter accepts urls whose host is exactly the seed's host.
// "monzo.com" and "community.monzo.com" are different hosts, www included.
type Filter struct {
	host string
}

func New(host string) *Filter {
	return &Filter{host: strings.ToLower(host)}
}

func (f *Filter) ShouldCrawl(u *url.URL) bool {
	return strings.ToLower(u.Host) == f.host
}

// DefaultSkippedExtensions are assets that are linked like pages but are never html.
var DefaultSkippedExtensions = []string{".pdf", ".mp3"}

// ExtensionFilter rejects urls whose path ends in one of the given extensions.
type ExtensionFilter struct {
	extensions map[string]struct{}
}

func NewExtensionFilter(extensions ...string) *ExtensionFilter {
	f := &ExtensionFilter{extensions: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions[strings.ToLower(ext)] = struct{}{}
	}
	return f
}

func (f *ExtensionFilter) ShouldCrawl(u *url.URL) bool {
	_, skip := f.extensions[strings.ToLower(path.Ext(u.Path))]
	return !skip
}
