package memstore

import (
	"fmt"
	"sort"
	"sync"
)

// MemorySource is an in-memory TextSource for callers that already hold
// the document text (browser builds, tests).
type MemorySource struct {
	mu   sync.RWMutex
	docs map[string]string
	revs map[string]int64
	rev  int64
}

func NewMemorySource() *MemorySource {
	return &MemorySource{
		docs: make(map[string]string),
		revs: make(map[string]int64),
	}
}

// Put stores text under name and gives it a fresh revision.
func (s *MemorySource) Put(name, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev++
	s.docs[name] = text
	s.revs[name] = s.rev
}

func (s *MemorySource) ReadText(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[name]
	if !ok {
		return "", fmt.Errorf("document not found: %s", name)
	}
	return text, nil
}

// Version returns the revision assigned by the last Put of name.
// Revisions are never reused, even after Delete or Clear.
func (s *MemorySource) Version(name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rev, ok := s.revs[name]
	if !ok {
		return 0, fmt.Errorf("document not found: %s", name)
	}
	return rev, nil
}

// Delete removes name and reports whether it was present.
func (s *MemorySource) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[name]
	delete(s.docs, name)
	delete(s.revs, name)
	return ok
}

// Names returns the stored document names, sorted.
func (s *MemorySource) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *MemorySource) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[string]string)
	s.revs = make(map[string]int64)
}
