package lsp

type RenameClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// Client supports testing for validity of rename operations before
	// execution.
	PrepareSupport *bool `json:"prepareSupport,omitempty"`
	// The default behavior used by the client when the prepareRename
	// request returns a default behavior.
	PrepareSupportDefaultBehavior *PrepareSupportDefaultBehavior `json:"prepareSupportDefaultBehavior,omitempty"`
	// Whether the client honors the change annotations in text edits and
	// resource operations returned via the rename request's workspace edit.
	HonorsChangeAnnotations *bool `json:"honorsChangeAnnotations,omitempty"`
}

type PrepareSupportDefaultBehavior int32

// The client's default behavior is to select the identifier according to
// the language's syntax rule.
const PrepareSupportDefaultBehaviorIdentifier PrepareSupportDefaultBehavior = 1

var prepareSupportDefaultBehaviorTable = newEnumTable("PrepareSupportDefaultBehavior", map[PrepareSupportDefaultBehavior]string{
	PrepareSupportDefaultBehaviorIdentifier: "IDENTIFIER",
})

func (b PrepareSupportDefaultBehavior) String() string {
	return prepareSupportDefaultBehaviorTable.format(b)
}

func ParsePrepareSupportDefaultBehavior(s string) (PrepareSupportDefaultBehavior, error) {
	return prepareSupportDefaultBehaviorTable.parse(s)
}

type RenameOptions struct {
	// Renames should be checked and tested before being executed.
	PrepareProvider *bool `json:"prepareProvider,omitempty"`
	WorkDoneProgressOptions
}

type RenameRegistrationOptions struct {
	TextDocumentRegistrationOptions
	RenameOptions
}

type RenameParams struct {
	TextDocumentPositionParams
	// The new name of the symbol. If the given name is not valid the
	// request must return a ResponseError with an appropriate message.
	NewName string `json:"newName"`
	WorkDoneProgressParams
}

type PrepareRenameParams = TextDocumentPositionParams

// PrepareRenameResponse is a range, a range with a placeholder, or a
// request to apply the client's default behavior.
type PrepareRenameResponse struct {
	Range                *Range
	RangeWithPlaceholder *RangeWithPlaceholder
	DefaultBehavior      *PrepareRenameDefaultBehavior
}

type RangeWithPlaceholder struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

type PrepareRenameDefaultBehavior struct {
	DefaultBehavior bool `json:"defaultBehavior"`
}

func (r PrepareRenameResponse) MarshalJSON() ([]byte, error) {
	return marshalUnion("PrepareRenameResponse", r.Range, r.RangeWithPlaceholder, r.DefaultBehavior)
}

func (r *PrepareRenameResponse) UnmarshalJSON(data []byte) error {
	*r = PrepareRenameResponse{}
	return decodeUnion("PrepareRenameResponse", data,
		arm(&r.Range), arm(&r.RangeWithPlaceholder), arm(&r.DefaultBehavior))
}
