package lsp

import "github.com/tidwall/gjson"

// NotebookDocument is a notebook document.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#notebookDocument_synchronization
type NotebookDocument struct {
	// The notebook document's URI.
	URI URI `json:"uri"`
	// The type of the notebook.
	NotebookType string `json:"notebookType"`
	// The version number of this document. It increases after each change,
	// including undo/redo.
	Version int32 `json:"version"`
	// Additional metadata stored with the notebook document.
	Metadata LSPObject `json:"metadata,omitzero"`
	// The cells of a notebook.
	Cells []NotebookCell `json:"cells"`
}

// NotebookCell is a cell of a notebook. Its text content is stored in a
// separate text document identified by Document.
type NotebookCell struct {
	Kind NotebookCellKind `json:"kind"`
	// The URI of the cell's text document content.
	Document URI `json:"document"`
	// Additional metadata stored with the cell.
	Metadata LSPObject `json:"metadata,omitzero"`
	// Additional execution summary information if supported by the client.
	ExecutionSummary *ExecutionSummary `json:"executionSummary,omitempty"`
}

type ExecutionSummary struct {
	// A strictly monotonically increasing value indicating the execution
	// order of a cell inside a notebook.
	ExecutionOrder uint32 `json:"executionOrder"`
	// Whether the execution was successful or not if known by the client.
	Success *bool `json:"success,omitempty"`
}

// NotebookCellKind is the kind of a notebook cell.
type NotebookCellKind int32

const (
	// A markup cell is formatted source that is used for display.
	NotebookCellKindMarkup NotebookCellKind = 1
	// A code cell is source code.
	NotebookCellKindCode NotebookCellKind = 2
)

var notebookCellKindTable = newEnumTable("NotebookCellKind", map[NotebookCellKind]string{
	NotebookCellKindMarkup: "MARKUP",
	NotebookCellKindCode:   "CODE",
})

func (k NotebookCellKind) String() string { return notebookCellKindTable.format(k) }

func ParseNotebookCellKind(s string) (NotebookCellKind, error) {
	return notebookCellKindTable.parse(s)
}

type NotebookDocumentClientCapabilities struct {
	// Capabilities specific to notebook document synchronization.
	Synchronization NotebookDocumentSyncClientCapabilities `json:"synchronization"`
}

type NotebookDocumentSyncClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// The client supports sending execution summary data per cell.
	ExecutionSummarySupport *bool `json:"executionSummarySupport,omitempty"`
}

// NotebookDocumentSyncOptions are the options specific to a notebook plus
// its cells to be synced to the server.
type NotebookDocumentSyncOptions struct {
	// The notebooks to be synced.
	NotebookSelector []NotebookSelector `json:"notebookSelector"`
	// Whether save notifications should be forwarded to the server. Will
	// only be honored if mode === `notebook`.
	Save *bool `json:"save,omitempty"`
}

type NotebookDocumentSyncRegistrationOptions struct {
	NotebookDocumentSyncOptions
	StaticRegistrationOptions
}

// NotebookDocumentSyncCapability is either sync options or sync
// registration options.
type NotebookDocumentSyncCapability struct {
	Options             *NotebookDocumentSyncOptions
	RegistrationOptions *NotebookDocumentSyncRegistrationOptions
}

func NewNotebookDocumentSyncOptions(o NotebookDocumentSyncOptions) NotebookDocumentSyncCapability {
	return NotebookDocumentSyncCapability{Options: &o}
}

func NewNotebookDocumentSyncRegistrationOptions(o NotebookDocumentSyncRegistrationOptions) NotebookDocumentSyncCapability {
	return NotebookDocumentSyncCapability{RegistrationOptions: &o}
}

func (c NotebookDocumentSyncCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("NotebookDocumentSyncCapability", c.Options, c.RegistrationOptions)
}

func (c *NotebookDocumentSyncCapability) UnmarshalJSON(data []byte) error {
	*c = NotebookDocumentSyncCapability{}
	return decodeProviderUnion("NotebookDocumentSyncCapability", data, nil, &c.Options, &c.RegistrationOptions)
}

// NotebookSelector selects notebooks either by notebook, optionally
// narrowed to cells, or by cells only.
type NotebookSelector struct {
	ByNotebook *NotebookSelectorByNotebook
	ByCells    *NotebookSelectorByCells
}

type NotebookSelectorByNotebook struct {
	// The notebook to be synced. If a string value is provided it matches
	// against the notebook type.
	Notebook Notebook `json:"notebook"`
	// The cells of the matching notebook to be synced.
	Cells []NotebookCellSelector `json:"cells,omitzero"`
}

type NotebookSelectorByCells struct {
	Notebook *Notebook              `json:"notebook,omitempty"`
	Cells    []NotebookCellSelector `json:"cells"`
}

func (s NotebookSelector) MarshalJSON() ([]byte, error) {
	return marshalUnion("NotebookSelector", s.ByNotebook, s.ByCells)
}

func (s *NotebookSelector) UnmarshalJSON(data []byte) error {
	*s = NotebookSelector{}
	return decodeUnion("NotebookSelector", data, arm(&s.ByNotebook), arm(&s.ByCells))
}

type NotebookCellSelector struct {
	Language string `json:"language"`
}

// Notebook is a notebook type string or a notebook document filter.
type Notebook struct {
	String *string
	Filter *NotebookDocumentFilter
}

func NewNotebookString(s string) Notebook {
	return Notebook{String: &s}
}

func NewNotebookFilter(f NotebookDocumentFilter) Notebook {
	return Notebook{Filter: &f}
}

func (n Notebook) MarshalJSON() ([]byte, error) {
	return marshalUnion("Notebook", n.String, n.Filter)
}

func (n *Notebook) UnmarshalJSON(data []byte) error {
	*n = Notebook{}
	return decodeUnion("Notebook", data, arm(&n.String), arm(&n.Filter))
}

// NotebookDocumentFilter denotes a notebook document by different
// properties. At least one of NotebookType, Scheme and Pattern is set.
type NotebookDocumentFilter struct {
	// The type of the enclosing notebook.
	NotebookType *string `json:"notebookType,omitempty"`
	// A URI scheme, like `file` or `untitled`.
	Scheme *string `json:"scheme,omitempty"`
	// A glob pattern.
	Pattern *string `json:"pattern,omitempty"`
}

var notebookFilterKeys = []string{"notebookType", "scheme", "pattern"}

func (f *NotebookDocumentFilter) UnmarshalJSON(data []byte) error {
	if r := gjson.ParseBytes(data); !r.IsObject() {
		return decodeErrorf(ErrStructural, "", "NotebookDocumentFilter: expected object, got %s", describe(r))
	}
	if !hasMember(data, notebookFilterKeys...) {
		return decodeErrorf(ErrMissingField, "", "NotebookDocumentFilter: one of notebookType, scheme or pattern is required")
	}
	type plain NotebookDocumentFilter
	var v plain
	if err := Unmarshal(data, &v); err != nil {
		return err
	}
	*f = NotebookDocumentFilter(v)
	return nil
}

type DidOpenNotebookDocumentParams struct {
	// The notebook document that got opened.
	NotebookDocument NotebookDocument `json:"notebookDocument"`
	// The text documents that represent the content of a notebook cell.
	CellTextDocuments []TextDocumentItem `json:"cellTextDocuments"`
}

type DidChangeNotebookDocumentParams struct {
	// The notebook document that did change. The version number points to
	// the version after all provided changes have been applied.
	NotebookDocument VersionedNotebookDocumentIdentifier `json:"notebookDocument"`
	// The actual changes to the notebook document.
	Change NotebookDocumentChangeEvent `json:"change"`
}

type VersionedNotebookDocumentIdentifier struct {
	Version int32 `json:"version"`
	URI     URI   `json:"uri"`
}

type NotebookDocumentChangeEvent struct {
	// The changed meta data if any.
	Metadata LSPObject `json:"metadata,omitzero"`
	// Changes to cells.
	Cells *NotebookDocumentCellChange `json:"cells,omitempty"`
}

type NotebookDocumentCellChange struct {
	// Changes to the cell structure to add or remove cells.
	Structure *NotebookDocumentCellChangeStructure `json:"structure,omitempty"`
	// Changes to notebook cells properties like its kind, execution summary
	// or metadata.
	Data []NotebookCell `json:"data,omitzero"`
	// Changes to the text content of notebook cells.
	TextContent []NotebookDocumentChangeTextContent `json:"textContent,omitzero"`
}

type NotebookDocumentChangeTextContent struct {
	Document VersionedTextDocumentIdentifier  `json:"document"`
	Changes  []TextDocumentContentChangeEvent `json:"changes"`
}

type NotebookDocumentCellChangeStructure struct {
	// The change to the cell array.
	Array NotebookCellArrayChange `json:"array"`
	// Additional opened cell text documents.
	DidOpen []TextDocumentItem `json:"didOpen,omitzero"`
	// Additional closed cell text documents.
	DidClose []TextDocumentIdentifier `json:"didClose,omitzero"`
}

// NotebookCellArrayChange describes a change to the notebook cell array:
// DeleteCount cells are removed at Start and Cells are inserted there.
type NotebookCellArrayChange struct {
	Start       uint32         `json:"start"`
	DeleteCount uint32         `json:"deleteCount"`
	Cells       []NotebookCell `json:"cells,omitzero"`
}

type DidSaveNotebookDocumentParams struct {
	// The notebook document that got saved.
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`
}

type NotebookDocumentIdentifier struct {
	// The notebook document's URI.
	URI URI `json:"uri"`
}

type DidCloseNotebookDocumentParams struct {
	// The notebook document that got closed.
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`
	// The text documents that represent the content of a notebook cell that
	// got closed.
	CellTextDocuments []TextDocumentIdentifier `json:"cellTextDocuments"`
}
