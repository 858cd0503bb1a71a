package lsp

import "sync"

// document is an open file and its latest analysis.
type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open document contents and their analysis results,
// keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

// Update replaces the content of uri and drops its stale analysis.
func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Analyze returns the analysis of uri, computing it on first use after the
// latest Open or Update. It returns nil for unknown documents.
func (s *DocumentStore) Analyze(uri string) *AnalysisResult {
	s.mu.RLock()
	doc, ok := s.docs[uri]
	var cached *AnalysisResult
	if ok {
		cached = doc.result
	}
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if cached != nil {
		return cached
	}

	result := Analyze(uri, doc.content)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Keep the result only if the document was not replaced meanwhile.
	if cur, ok := s.docs[uri]; ok && cur == doc {
		doc.result = result
	}
	return result
}
