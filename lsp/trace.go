package lsp

// TraceValue is the level of verbosity with which the server
// systematically reports its execution trace using $/logTrace.
type TraceValue string

const (
	TraceValueOff      TraceValue = "off"
	TraceValueMessages TraceValue = "messages"
	TraceValueVerbose  TraceValue = "verbose"
)

func (v *TraceValue) UnmarshalJSON(data []byte) error {
	t, err := decodeClosedString(data, "TraceValue", TraceValueOff, TraceValueMessages, TraceValueVerbose)
	if err != nil {
		return err
	}
	*v = t
	return nil
}

type SetTraceParams struct {
	// The new value that should be assigned to the trace setting.
	Value TraceValue `json:"value"`
}

type LogTraceParams struct {
	// The message to be logged.
	Message string `json:"message"`
	// Additional information that can be computed if the trace
	// configuration is set to verbose.
	Verbose *string `json:"verbose,omitempty"`
}
