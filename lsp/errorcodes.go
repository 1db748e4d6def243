package lsp

// ErrorCode is a JSON-RPC error code defined by the protocol.
type ErrorCode int32

const (
	// ErrorCodeServerNotInitialized is returned for requests sent before
	// the server received initialize.
	ErrorCodeServerNotInitialized ErrorCode = -32002
	ErrorCodeUnknownErrorCode     ErrorCode = -32001

	// ErrorCodeLspReservedErrorRangeStart is the start of the range of error
	// codes reserved for the protocol.
	ErrorCodeLspReservedErrorRangeStart ErrorCode = -32899

	// ErrorCodeRequestFailed means the request was syntactically correct and
	// the server understood it, but could not complete it.
	ErrorCodeRequestFailed ErrorCode = -32803
	// ErrorCodeServerCancelled means the server cancelled the request. Only
	// valid for requests that explicitly support it.
	ErrorCodeServerCancelled ErrorCode = -32802
	// ErrorCodeContentModified means the document changed while the request
	// was running and the result is no longer valid.
	ErrorCodeContentModified ErrorCode = -32801
	// ErrorCodeRequestCancelled means the client cancelled the request.
	ErrorCodeRequestCancelled ErrorCode = -32800
)

// LspReservedErrorRangeEnd is the end of the range of error codes reserved
// for the protocol.
const LspReservedErrorRangeEnd ErrorCode = -32800

var errorCodeTable = newEnumTable("ErrorCode", map[ErrorCode]string{
	ErrorCodeServerNotInitialized:       "SERVER_NOT_INITIALIZED",
	ErrorCodeUnknownErrorCode:           "UNKNOWN_ERROR_CODE",
	ErrorCodeLspReservedErrorRangeStart: "LSP_RESERVED_ERROR_RANGE_START",
	ErrorCodeRequestFailed:              "REQUEST_FAILED",
	ErrorCodeServerCancelled:            "SERVER_CANCELLED",
	ErrorCodeContentModified:            "CONTENT_MODIFIED",
	ErrorCodeRequestCancelled:           "REQUEST_CANCELLED",
})

func (c ErrorCode) String() string { return errorCodeTable.format(c) }

func ParseErrorCode(s string) (ErrorCode, error) { return errorCodeTable.parse(s) }
