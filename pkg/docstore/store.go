// Package docstore tracks the text of every document the client currently
// has open. It holds no parsed state — lexing and signature parsing are
// cheap enough to redo per request, per the synchronous core design.
package docstore

// Document is one open buffer: its current full text and the LSP version
// number the client last sent for it.
type Document struct {
	URI     string
	Text    string
	Version int
}

// Store is a simple URI-keyed map of open documents.
type Store struct {
	docs map[string]*Document
}

// New returns an empty Store.
func New() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Open registers uri as open with the given initial text and version.
func (s *Store) Open(uri, text string, version int) {
	s.docs[uri] = &Document{URI: uri, Text: text, Version: version}
}

// ChangeFull replaces the full text of an already-open document. If the
// document isn't open it is opened with the given text and version (a
// client should never send didChange before didOpen, but we never panic on
// a misbehaving client either).
func (s *Store) ChangeFull(uri, text string, version int) {
	doc, ok := s.docs[uri]
	if !ok {
		s.Open(uri, text, version)
		return
	}
	doc.Text = text
	doc.Version = version
}

// Close forgets uri.
func (s *Store) Close(uri string) {
	delete(s.docs, uri)
}

// Get returns the document at uri, if open.
func (s *Store) Get(uri string) (*Document, bool) {
	doc, ok := s.docs[uri]
	return doc, ok
}

// OpenURIs returns every currently open document's URI.
func (s *Store) OpenURIs() []string {
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	return uris
}

// All returns every open document.
func (s *Store) All() []*Document {
	docs := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs
}
