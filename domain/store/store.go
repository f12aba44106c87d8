package store

import "sync"

// UrlStore is a set of urls safe for concurrent use.
// Visit is the only way to both check and record a url in one step.
type UrlStore struct {
	seenUrls map[string]struct{}
	rwMutex  sync.RWMutex
}

func NewUrlStore() *UrlStore {
	return &UrlStore{
		seenUrls: make(map[string]struct{}),
		rwMutex:  sync.RWMutex{},
	}
}

// Visit records url and reports whether it was new.
// Two concurrent callers with the same url never both get true.
func (s *UrlStore) Visit(url string) bool {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()
	if _, ok := s.seenUrls[url]; ok {
		return false
	}
	s.seenUrls[url] = struct{}{}
	return true
}

func (s *UrlStore) Add(url string) error {
	s.Visit(url)
	return nil
}

func (s *UrlStore) Len() int {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return len(s.seenUrls)
}
