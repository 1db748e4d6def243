package lsp

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

type DidChangeConfigurationClientCapabilities = DynamicRegistrationClientCapabilities

// ConfigurationParams are the params of workspace/configuration.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#workspace_configuration
type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

type ConfigurationItem struct {
	// The scope to get the configuration section for.
	ScopeURI *URI `json:"scopeUri,omitempty"`
	// The configuration section asked for.
	Section *string `json:"section,omitempty"`
}

type DidChangeConfigurationParams struct {
	// The actual changed settings.
	Settings LSPAny `json:"settings" lsp:"nullable"`
}

type DidChangeWatchedFilesClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// Whether the client has support for relative patterns.
	RelativePatternSupport *bool `json:"relativePatternSupport,omitempty"`
}

type DidChangeWatchedFilesParams struct {
	// The actual file events.
	Changes []FileEvent `json:"changes"`
}

// FileChangeType is the kind of a file event.
type FileChangeType int32

const (
	FileChangeTypeCreated FileChangeType = 1
	FileChangeTypeChanged FileChangeType = 2
	FileChangeTypeDeleted FileChangeType = 3
)

var fileChangeTypeTable = newEnumTable("FileChangeType", map[FileChangeType]string{
	FileChangeTypeCreated: "CREATED",
	FileChangeTypeChanged: "CHANGED",
	FileChangeTypeDeleted: "DELETED",
})

func (t FileChangeType) String() string { return fileChangeTypeTable.format(t) }

func ParseFileChangeType(s string) (FileChangeType, error) { return fileChangeTypeTable.parse(s) }

// FileEvent describes a file change event.
type FileEvent struct {
	URI  URI            `json:"uri"`
	Type FileChangeType `json:"type"`
}

func NewFileEvent(uri URI, typ FileChangeType) FileEvent {
	return FileEvent{URI: uri, Type: typ}
}

type DidChangeWatchedFilesRegistrationOptions struct {
	// The watchers to register.
	Watchers []FileSystemWatcher `json:"watchers"`
}

type FileSystemWatcher struct {
	// The glob pattern to watch.
	GlobPattern GlobPattern `json:"globPattern"`
	// The kind of events of interest. If omitted it defaults to
	// WatchKindCreate | WatchKindChange | WatchKindDelete.
	Kind *WatchKind `json:"kind,omitempty"`
}

// Pattern is a glob pattern, e.g. `**/*.{ts,js}`.
type Pattern = string

// GlobPattern is either a plain pattern or a pattern relative to a base
// URI or workspace folder.
type GlobPattern struct {
	String   *Pattern
	Relative *RelativePattern
}

func NewGlobPatternString(p Pattern) GlobPattern {
	return GlobPattern{String: &p}
}

func NewGlobPatternRelative(p RelativePattern) GlobPattern {
	return GlobPattern{Relative: &p}
}

func (g GlobPattern) MarshalJSON() ([]byte, error) {
	return marshalUnion("GlobPattern", g.String, g.Relative)
}

func (g *GlobPattern) UnmarshalJSON(data []byte) error {
	*g = GlobPattern{}
	return decodeUnion("GlobPattern", data, arm(&g.String), arm(&g.Relative))
}

// RelativePattern is used to construct a glob pattern matched relatively
// to a base URI.
type RelativePattern struct {
	// A workspace folder or a base URI to which this pattern is matched
	// relatively.
	BaseURI OneOf[WorkspaceFolder, URI] `json:"baseUri"`
	// The actual glob pattern.
	Pattern Pattern `json:"pattern"`
}

// WatchKind is a set of file system events. It is encoded as an integer
// bit mask.
type WatchKind uint8

const (
	WatchKindCreate WatchKind = 1
	WatchKindChange WatchKind = 2
	WatchKindDelete WatchKind = 4

	watchKindAll = WatchKindCreate | WatchKindChange | WatchKindDelete
)

// Has reports whether every bit of flag is set in k.
func (k WatchKind) Has(flag WatchKind) bool {
	return k&flag == flag
}

func (k WatchKind) String() string {
	if k == 0 {
		return "WatchKind(0)"
	}
	var names []string
	for _, f := range []struct {
		flag WatchKind
		name string
	}{{WatchKindCreate, "Create"}, {WatchKindChange, "Change"}, {WatchKindDelete, "Delete"}} {
		if k.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	if rest := k &^ watchKindAll; rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint8(rest)))
	}
	return strings.Join(names, " | ")
}

// UnmarshalJSON rejects values with bits outside Create, Change and
// Delete.
func (k *WatchKind) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type != gjson.Number {
		return decodeErrorf(ErrStructural, "", "WatchKind: expected number, got %s", describe(r))
	}
	var v uint8
	if err := Unmarshal(data, &v); err != nil {
		return err
	}
	if WatchKind(v)&^watchKindAll != 0 {
		return decodeErrorf(ErrInvalidValue, "", "WatchKind: unknown flag bits in %d", v)
	}
	*k = WatchKind(v)
	return nil
}

type ExecuteCommandClientCapabilities = DynamicRegistrationClientCapabilities

type ExecuteCommandOptions struct {
	// The commands to be executed on the server.
	Commands []string `json:"commands"`
	WorkDoneProgressOptions
}

type ExecuteCommandRegistrationOptions struct {
	ExecuteCommandOptions
}

type ExecuteCommandParams struct {
	// The identifier of the actual command handler.
	Command string `json:"command"`
	// Arguments that the command should be invoked with.
	Arguments []LSPAny `json:"arguments,omitzero"`
	WorkDoneProgressParams
}

type WorkspaceFoldersServerCapabilities struct {
	// The server has support for workspace folders.
	Supported *bool `json:"supported,omitempty"`
	// Whether the server wants to receive workspace folder change
	// notifications. A string is an ID under which the notification is
	// registered on the client side, which can be used to unregister it.
	ChangeNotifications *OneOf[bool, string] `json:"changeNotifications,omitempty"`
}

// WorkspaceFolder is a workspace folder known to the client.
type WorkspaceFolder struct {
	// The associated URI for this workspace folder.
	URI URI `json:"uri"`
	// The name of the workspace folder. Used to refer to this workspace
	// folder in the user interface.
	Name string `json:"name"`
}

type DidChangeWorkspaceFoldersParams struct {
	// The actual workspace folder change event.
	Event WorkspaceFoldersChangeEvent `json:"event"`
}

type WorkspaceFoldersChangeEvent struct {
	// The array of added workspace folders.
	Added []WorkspaceFolder `json:"added"`
	// The array of the removed workspace folders.
	Removed []WorkspaceFolder `json:"removed"`
}

type WorkspaceServerCapabilities struct {
	// The server supports workspace folder.
	WorkspaceFolders *WorkspaceFoldersServerCapabilities        `json:"workspaceFolders,omitempty"`
	FileOperations   *WorkspaceFileOperationsServerCapabilities `json:"fileOperations,omitempty"`
}
