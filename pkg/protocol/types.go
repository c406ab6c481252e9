// Package protocol declares the minimal set of LSP 3.17 JSON wire types
// ferrolsp actually speaks — just enough for initialize, hover, inlay
// hints, document sync, and publishDiagnostics. It intentionally doesn't
// pull in a full generated LSP binding: the server's surface is narrow
// enough that hand-written structs are clearer than a generator's output.
package protocol

// Position is a zero-based (line, UTF-16 character) pair.
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// Range is a start/end Position pair.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// TextDocumentIdentifier names an open document by URI.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// VersionedTextDocumentIdentifier adds the LSP document version.
type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

// TextDocumentItem is the full payload of a didOpen notification.
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

// TextDocumentPositionParams is the common shape shared by hover and
// other position-addressed requests.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// WorkspaceFolder is one entry of an initialize request's workspaceFolders.
type WorkspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// InitializeParams is the subset of the real initialize request payload
// ferrolsp reads: just enough to locate the workspace root.
type InitializeParams struct {
	RootURI          *string           `json:"rootUri"`
	RootPath         *string           `json:"rootPath"`
	WorkspaceFolders []WorkspaceFolder `json:"workspaceFolders"`
}

// ServerCapabilities is the subset of capabilities ferrolsp advertises.
type ServerCapabilities struct {
	TextDocumentSync int                `json:"textDocumentSync"`
	HoverProvider    bool               `json:"hoverProvider"`
	InlayHintProvider bool              `json:"inlayHintProvider"`
	Workspace        *WorkspaceCapability `json:"workspace,omitempty"`
}

// WorkspaceCapability advertises workspace-folder change notifications.
type WorkspaceCapability struct {
	WorkspaceFolders WorkspaceFoldersCapability `json:"workspaceFolders"`
}

// WorkspaceFoldersCapability is the inner object of WorkspaceCapability.
type WorkspaceFoldersCapability struct {
	Supported           bool `json:"supported"`
	ChangeNotifications bool `json:"changeNotifications"`
}

// InitializeResult is ferrolsp's response to initialize.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
}

// TextSyncKind matches LSP's TextDocumentSyncKind.Full value.
const TextSyncKindFull = 1

// DidOpenTextDocumentParams is the payload of a didOpen notification.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent is one entry of didChange's contentChanges;
// ferrolsp only honors full-document sync, so Range/RangeLength are unused.
type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

// DidChangeTextDocumentParams is the payload of a didChange notification.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier   `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// DidCloseTextDocumentParams is the payload of a didClose notification.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DidSaveTextDocumentParams is the payload of a didSave notification.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DidChangeConfigurationParams is the payload of a
// workspace/didChangeConfiguration notification.
type DidChangeConfigurationParams struct {
	Settings map[string]any `json:"settings"`
}

// Hover is ferrolsp's textDocument/hover response.
type Hover struct {
	Contents MarkupContent `json:"contents"`
}

// MarkupContent is Markdown-formatted hover/completion content.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// InlayHintParams is the payload of a textDocument/inlayHint request.
type InlayHintParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// InlayHint is one entry of ferrolsp's textDocument/inlayHint response.
type InlayHint struct {
	Position Position `json:"position"`
	Label    string   `json:"label"`
	Kind     int      `json:"kind,omitempty"`
}

// InlayHint kind values, matching LSP's InlayHintKind enum (Type = 1,
// Parameter = 2); ferrolsp renders argument-name and const-generic-name
// hints as Parameter hints, and local-variable and chained-expression
// hints as Type hints.
const (
	InlayHintKindType      = 1
	InlayHintKindParameter = 2
)

// Diagnostic is one entry of a publishDiagnostics notification.
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity,omitempty"`
	Source   string `json:"source,omitempty"`
	Message  string `json:"message"`
}

// PublishDiagnosticsParams is the payload of a
// textDocument/publishDiagnostics notification.
type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}
