package lsp

type CodeActionParams struct {
	WorkDoneProgressParams
	PartialResultParams
	// The document in which the command was invoked.
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The range for which the command was invoked.
	Range   Range             `json:"range"`
	Context CodeActionContext `json:"context"`
}

// CodeActionKind is an open set of code action kinds. Kinds are
// hierarchical, dot separated identifiers such as "refactor.extract".
type CodeActionKind string

const (
	CodeActionKindEmpty           CodeActionKind = ""
	CodeActionKindQuickFix        CodeActionKind = "quickfix"
	CodeActionKindRefactor        CodeActionKind = "refactor"
	CodeActionKindRefactorExtract CodeActionKind = "refactor.extract"
	CodeActionKindRefactorInline  CodeActionKind = "refactor.inline"
	CodeActionKindRefactorMove    CodeActionKind = "refactor.move"
	CodeActionKindRefactorRewrite CodeActionKind = "refactor.rewrite"
	// Source code actions apply to the entire file.
	CodeActionKindSource                CodeActionKind = "source"
	CodeActionKindSourceOrganizeImports CodeActionKind = "source.organizeImports"
	// 'Fix all' actions automatically fix errors that have a clear fix that
	// do not require user input.
	CodeActionKindSourceFixAll CodeActionKind = "source.fixAll"
)

// CodeActionTriggerKind is the reason why code actions were requested.
type CodeActionTriggerKind int32

const (
	// Code actions were explicitly requested by the user or by an extension.
	CodeActionTriggerKindInvoked CodeActionTriggerKind = 1
	// Code actions were requested automatically, typically when the
	// selection or the file content changes.
	CodeActionTriggerKindAutomatic CodeActionTriggerKind = 2
)

var codeActionTriggerKindTable = newEnumTable("CodeActionTriggerKind", map[CodeActionTriggerKind]string{
	CodeActionTriggerKindInvoked:   "INVOKED",
	CodeActionTriggerKindAutomatic: "AUTOMATIC",
})

func (k CodeActionTriggerKind) String() string { return codeActionTriggerKindTable.format(k) }

func ParseCodeActionTriggerKind(s string) (CodeActionTriggerKind, error) {
	return codeActionTriggerKindTable.parse(s)
}

// CodeActionContext carries additional diagnostic information about the
// context in which a code action is run.
type CodeActionContext struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	// Requested kinds of actions. Actions not of these kinds are filtered out
	// by the client.
	Only        []CodeActionKind       `json:"only,omitzero"`
	TriggerKind *CodeActionTriggerKind `json:"triggerKind,omitempty"`
}

type CodeAction struct {
	// A short, human-readable, title for this code action.
	Title string `json:"title"`
	// The kind of the code action. Used to filter code actions.
	Kind *CodeActionKind `json:"kind,omitempty"`
	// The diagnostics that this code action resolves.
	Diagnostics []Diagnostic `json:"diagnostics,omitzero"`
	// The workspace edit this code action performs.
	Edit *WorkspaceEdit `json:"edit,omitempty"`
	// If a code action provides an edit and a command, first the edit is
	// executed and then the command.
	Command *Command `json:"command,omitempty"`
	// Preferred actions are used by the auto fix command and can be targeted
	// by keybindings.
	IsPreferred *bool               `json:"isPreferred,omitempty"`
	Disabled    *CodeActionDisabled `json:"disabled,omitempty"`
	// Preserved between a textDocument/codeAction and a codeAction/resolve
	// request.
	Data LSPAny `json:"data,omitempty"`
}

type CodeActionDisabled struct {
	// Why the code action is currently disabled. Displayed in the code
	// actions UI.
	Reason string `json:"reason"`
}

// CodeActionOrCommand is an element of a textDocument/codeAction response.
type CodeActionOrCommand struct {
	Command    *Command
	CodeAction *CodeAction
}

func NewCodeActionOrCommandFromCommand(c Command) CodeActionOrCommand {
	return CodeActionOrCommand{Command: &c}
}

func NewCodeActionOrCommandFromCodeAction(a CodeAction) CodeActionOrCommand {
	return CodeActionOrCommand{CodeAction: &a}
}

func (c CodeActionOrCommand) MarshalJSON() ([]byte, error) {
	return marshalUnion("CodeActionOrCommand", c.Command, c.CodeAction)
}

func (c *CodeActionOrCommand) UnmarshalJSON(data []byte) error {
	*c = CodeActionOrCommand{}
	return decodeUnion("CodeActionOrCommand", data, arm(&c.Command), arm(&c.CodeAction))
}

// CodeActionResponse is the result of textDocument/codeAction.
type CodeActionResponse = []CodeActionOrCommand

type CodeActionOptions struct {
	WorkDoneProgressOptions
	// The kinds this server may return. The list may be generic, such as
	// refactor, or list every specific kind.
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitzero"`
	// The server provides support to resolve additional information for a
	// code action.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type CodeActionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CodeActionOptions
}

type CodeActionProviderCapability struct {
	Simple  *bool
	Options *CodeActionOptions
}

func NewCodeActionProviderSimple(b bool) CodeActionProviderCapability {
	return CodeActionProviderCapability{Simple: &b}
}

func NewCodeActionProviderOptions(o CodeActionOptions) CodeActionProviderCapability {
	return CodeActionProviderCapability{Options: &o}
}

func (c CodeActionProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("CodeActionProviderCapability", c.Simple, c.Options)
}

func (c *CodeActionProviderCapability) UnmarshalJSON(data []byte) error {
	*c = CodeActionProviderCapability{}
	return decodeUnion("CodeActionProviderCapability", data, arm(&c.Simple), arm(&c.Options))
}

type CodeActionClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// The client supports code action literals as a valid response of the
	// textDocument/codeAction request.
	CodeActionLiteralSupport *CodeActionLiteralSupport `json:"codeActionLiteralSupport,omitempty"`
	IsPreferredSupport       *bool                     `json:"isPreferredSupport,omitempty"`
	DisabledSupport          *bool                     `json:"disabledSupport,omitempty"`
	DataSupport              *bool                     `json:"dataSupport,omitempty"`
	// Whether the client supports resolving additional code action
	// properties via a separate codeAction/resolve request.
	ResolveSupport *CodeActionCapabilityResolveSupport `json:"resolveSupport,omitempty"`
	// Whether the client honors the change annotations in text edits and
	// resource operations returned via the code action's edit.
	HonorsChangeAnnotations *bool `json:"honorsChangeAnnotations,omitempty"`
}

type CodeActionCapabilityResolveSupport struct {
	// The properties that a client can resolve lazily.
	Properties []string `json:"properties"`
}

type CodeActionLiteralSupport struct {
	CodeActionKind CodeActionKindLiteralSupport `json:"codeActionKind"`
}

type CodeActionKindLiteralSupport struct {
	// The client guarantees that it handles values outside its set
	// gracefully.
	ValueSet []string `json:"valueSet"`
}
