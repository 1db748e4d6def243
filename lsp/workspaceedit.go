package lsp

// WorkspaceEdit represents changes to many resources managed in the
// workspace. Either Changes or DocumentChanges should be set; when the
// client can handle versioned document edits, DocumentChanges is preferred.
type WorkspaceEdit struct {
	// Changes to existing resources.
	Changes map[DocumentURI][]TextEdit `json:"changes,omitzero"`
	// Either a list of text document edits or, when the client supports
	// resource operations, edits mixed with create, rename and delete
	// operations.
	DocumentChanges *DocumentChanges `json:"documentChanges,omitempty"`
	// Change annotations referenced from annotated text edits and resource
	// operations.
	ChangeAnnotations map[ChangeAnnotationIdentifier]ChangeAnnotation `json:"changeAnnotations,omitzero"`
}

func NewWorkspaceEdit(changes map[DocumentURI][]TextEdit) WorkspaceEdit {
	return WorkspaceEdit{Changes: changes}
}

// ChangeAnnotation describes document changes.
type ChangeAnnotation struct {
	// A human-readable string describing the change, rendered prominently in
	// the user interface.
	Label string `json:"label"`
	// Whether user confirmation is needed before applying the change.
	NeedsConfirmation *bool   `json:"needsConfirmation,omitempty"`
	Description       *string `json:"description,omitempty"`
}

// DocumentChanges is either a list of text document edits or a list of
// operations that may also create, rename and delete files.
type DocumentChanges struct {
	Edits      []TextDocumentEdit
	Operations []DocumentChangeOperation
}

func (d DocumentChanges) MarshalJSON() ([]byte, error) {
	switch {
	case d.Edits != nil:
		return Marshal(d.Edits)
	case d.Operations != nil:
		return Marshal(d.Operations)
	}
	return nil, noAlternative("DocumentChanges")
}

func (d *DocumentChanges) UnmarshalJSON(data []byte) error {
	*d = DocumentChanges{}
	var edits []TextDocumentEdit
	if err := Unmarshal(data, &edits); err == nil {
		d.Edits = edits
		return nil
	}
	var ops []DocumentChangeOperation
	if err := Unmarshal(data, &ops); err == nil {
		d.Operations = ops
		return nil
	}
	return noVariant("DocumentChanges")
}

// DocumentChangeOperation is a resource operation or a text document edit.
type DocumentChangeOperation struct {
	Op   *ResourceOp
	Edit *TextDocumentEdit
}

func (o DocumentChangeOperation) MarshalJSON() ([]byte, error) {
	return marshalUnion("DocumentChangeOperation", o.Op, o.Edit)
}

func (o *DocumentChangeOperation) UnmarshalJSON(data []byte) error {
	*o = DocumentChangeOperation{}
	return decodeUnion("DocumentChangeOperation", data, arm(&o.Op), arm(&o.Edit))
}

// ResourceOp is a file operation, tagged on the wire by its "kind".
type ResourceOp struct {
	Create *CreateFile
	Rename *RenameFile
	Delete *DeleteFile
}

func (r ResourceOp) MarshalJSON() ([]byte, error) {
	var kind ResourceOperationKind
	var payload any
	switch {
	case r.Create != nil:
		kind, payload = ResourceOperationKindCreate, r.Create
	case r.Rename != nil:
		kind, payload = ResourceOperationKindRename, r.Rename
	case r.Delete != nil:
		kind, payload = ResourceOperationKindDelete, r.Delete
	default:
		return nil, noAlternative("ResourceOp")
	}
	return marshalTagged("kind", string(kind), payload)
}

func (r *ResourceOp) UnmarshalJSON(data []byte) error {
	*r = ResourceOp{}
	kind, err := discriminator(data, "kind")
	if err != nil {
		return err
	}
	switch ResourceOperationKind(kind) {
	case ResourceOperationKindCreate:
		return arm(&r.Create)(data)
	case ResourceOperationKindRename:
		return arm(&r.Rename)(data)
	case ResourceOperationKindDelete:
		return arm(&r.Delete)(data)
	}
	return decodeErrorf(ErrUnknownDiscriminator, "kind", "unknown resource operation %q", kind)
}

type CreateFileOptions struct {
	// Overwrite an existing file. Overwrite wins over IgnoreIfExists.
	Overwrite      *bool `json:"overwrite,omitempty"`
	IgnoreIfExists *bool `json:"ignoreIfExists,omitempty"`
}

type CreateFile struct {
	URI          DocumentURI                 `json:"uri"`
	Options      *CreateFileOptions          `json:"options,omitempty"`
	AnnotationID *ChangeAnnotationIdentifier `json:"annotationId,omitempty"`
}

type RenameFileOptions struct {
	// Overwrite the target if it exists. Overwrite wins over
	// IgnoreIfExists.
	Overwrite      *bool `json:"overwrite,omitempty"`
	IgnoreIfExists *bool `json:"ignoreIfExists,omitempty"`
}

type RenameFile struct {
	OldURI       DocumentURI                 `json:"oldUri"`
	NewURI       DocumentURI                 `json:"newUri"`
	Options      *RenameFileOptions          `json:"options,omitempty"`
	AnnotationID *ChangeAnnotationIdentifier `json:"annotationId,omitempty"`
}

type DeleteFileOptions struct {
	// Delete the content recursively if a folder is denoted.
	Recursive         *bool                       `json:"recursive,omitempty"`
	IgnoreIfNotExists *bool                       `json:"ignoreIfNotExists,omitempty"`
	AnnotationID      *ChangeAnnotationIdentifier `json:"annotationId,omitempty"`
}

type DeleteFile struct {
	URI     DocumentURI        `json:"uri"`
	Options *DeleteFileOptions `json:"options,omitempty"`
}

type ResourceOperationKind string

const (
	ResourceOperationKindCreate ResourceOperationKind = "create"
	ResourceOperationKindRename ResourceOperationKind = "rename"
	ResourceOperationKindDelete ResourceOperationKind = "delete"
)

func (k *ResourceOperationKind) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "ResourceOperationKind",
		ResourceOperationKindCreate, ResourceOperationKindRename, ResourceOperationKindDelete)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type FailureHandlingKind string

const (
	// Applying the workspace change is simply aborted if one of the changes
	// fails. All operations executed before the failing one stay executed.
	FailureHandlingKindAbort FailureHandlingKind = "abort"
	// All operations are executed transactionally.
	FailureHandlingKindTransactional FailureHandlingKind = "transactional"
	// Textual edits are executed transactionally, resource changes are
	// not.
	FailureHandlingKindTextOnlyTransactional FailureHandlingKind = "textOnlyTransactional"
	// The client tries to undo the operations already executed.
	FailureHandlingKindUndo FailureHandlingKind = "undo"
)

func (k *FailureHandlingKind) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "FailureHandlingKind",
		FailureHandlingKindAbort, FailureHandlingKindTransactional,
		FailureHandlingKindTextOnlyTransactional, FailureHandlingKindUndo)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type WorkspaceEditClientCapabilities struct {
	// The client supports versioned document changes.
	DocumentChanges *bool `json:"documentChanges,omitempty"`
	// The resource operations the client supports.
	ResourceOperations []ResourceOperationKind `json:"resourceOperations,omitzero"`
	FailureHandling    *FailureHandlingKind    `json:"failureHandling,omitempty"`
	// Whether the client normalizes line endings to the client specific
	// setting.
	NormalizesLineEndings   *bool                                            `json:"normalizesLineEndings,omitempty"`
	ChangeAnnotationSupport *ChangeAnnotationWorkspaceEditClientCapabilities `json:"changeAnnotationSupport,omitempty"`
}

type ChangeAnnotationWorkspaceEditClientCapabilities struct {
	// Whether the client groups edits with equal labels into tree nodes.
	GroupsOnLabel *bool `json:"groupsOnLabel,omitempty"`
}

type ApplyWorkspaceEditParams struct {
	// An optional label of the workspace edit, e.g. shown in an undo stack.
	Label *string       `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

type ApplyWorkspaceEditResponse struct {
	// Indicates whether the edit was applied or not.
	Applied bool `json:"applied"`
	// A textual description of why the edit was not applied.
	FailureReason *string `json:"failureReason,omitempty"`
	// Index of the change that failed, when the client signals a failed
	// transactional change.
	FailedChange *uint32 `json:"failedChange,omitempty"`
}
