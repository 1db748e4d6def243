package lsp

type WorkspaceFileOperationsClientCapabilities struct {
	// Whether the client supports dynamic registration for file
	// requests and notifications.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	DidCreate           *bool `json:"didCreate,omitempty"`
	WillCreate          *bool `json:"willCreate,omitempty"`
	DidRename           *bool `json:"didRename,omitempty"`
	WillRename          *bool `json:"willRename,omitempty"`
	DidDelete           *bool `json:"didDelete,omitempty"`
	WillDelete          *bool `json:"willDelete,omitempty"`
}

// WorkspaceFileOperationsServerCapabilities says which file operation
// requests and notifications the server is interested in.
type WorkspaceFileOperationsServerCapabilities struct {
	DidCreate  *FileOperationRegistrationOptions `json:"didCreate,omitempty"`
	WillCreate *FileOperationRegistrationOptions `json:"willCreate,omitempty"`
	DidRename  *FileOperationRegistrationOptions `json:"didRename,omitempty"`
	WillRename *FileOperationRegistrationOptions `json:"willRename,omitempty"`
	DidDelete  *FileOperationRegistrationOptions `json:"didDelete,omitempty"`
	WillDelete *FileOperationRegistrationOptions `json:"willDelete,omitempty"`
}

type FileOperationRegistrationOptions struct {
	// The actual filters.
	Filters []FileOperationFilter `json:"filters"`
}

// FileOperationFilter describes in which file operation requests or
// notifications the server is interested in.
type FileOperationFilter struct {
	// A URI scheme, like file or untitled.
	Scheme  *string              `json:"scheme,omitempty"`
	Pattern FileOperationPattern `json:"pattern"`
}

// FileOperationPatternKind says whether a pattern matches files or
// folders.
type FileOperationPatternKind string

const (
	FileOperationPatternKindFile   FileOperationPatternKind = "file"
	FileOperationPatternKindFolder FileOperationPatternKind = "folder"
)

func (k *FileOperationPatternKind) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "FileOperationPatternKind",
		FileOperationPatternKindFile, FileOperationPatternKindFolder)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type FileOperationPatternOptions struct {
	// The pattern should be matched ignoring casing.
	IgnoreCase *bool `json:"ignoreCase,omitempty"`
}

// FileOperationPattern is a pattern to describe in which file operation
// requests or notifications the server is interested in.
type FileOperationPattern struct {
	// The glob pattern to match.
	Glob string `json:"glob"`
	// Whether to match files or folders with this pattern. Matches both if
	// undefined.
	Matches *FileOperationPatternKind    `json:"matches,omitempty"`
	Options *FileOperationPatternOptions `json:"options,omitempty"`
}

// CreateFilesParams are sent in workspace/willCreateFiles and
// workspace/didCreateFiles.
type CreateFilesParams struct {
	// An array of all files/folders created in this operation.
	Files []FileCreate `json:"files"`
}

type FileCreate struct {
	// A file:// URI for the location of the file/folder being created.
	URI string `json:"uri"`
}

// RenameFilesParams are sent in workspace/willRenameFiles and
// workspace/didRenameFiles.
type RenameFilesParams struct {
	// An array of all files/folders renamed in this operation. When a
	// folder is renamed, only the folder will be included, and not its
	// children.
	Files []FileRename `json:"files"`
}

type FileRename struct {
	OldURI string `json:"oldUri"`
	NewURI string `json:"newUri"`
}

// DeleteFilesParams are sent in workspace/willDeleteFiles and
// workspace/didDeleteFiles.
type DeleteFilesParams struct {
	Files []FileDelete `json:"files"`
}

type FileDelete struct {
	URI string `json:"uri"`
}
