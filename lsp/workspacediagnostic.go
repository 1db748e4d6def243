package lsp

type DiagnosticWorkspaceClientCapabilities struct {
	// Whether the client implementation supports a refresh request sent
	// from the server to the client.
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

// PreviousResultID is a previous result id in a workspace pull request.
type PreviousResultID struct {
	// The URI for which the client knows a result id.
	URI DocumentURI `json:"uri"`
	// The value of the previous result ID.
	Value string `json:"value"`
}

type WorkspaceDiagnosticParams struct {
	// The additional identifier provided during registration.
	Identifier *string `json:"identifier,omitempty"`
	// The currently known diagnostic reports with their previous result
	// ids.
	PreviousResultIDs []PreviousResultID `json:"previousResultIds"`
	WorkDoneProgressParams
	PartialResultParams
}

// WorkspaceFullDocumentDiagnosticReport is a full document diagnostic
// report for a workspace diagnostic result.
type WorkspaceFullDocumentDiagnosticReport struct {
	URI DocumentURI `json:"uri"`
	// The version number for which the diagnostics are reported. Null if
	// the document is not marked as open.
	Version *int64 `json:"version"`
	FullDocumentDiagnosticReport
}

// WorkspaceUnchangedDocumentDiagnosticReport is an unchanged document
// diagnostic report for a workspace diagnostic result.
type WorkspaceUnchangedDocumentDiagnosticReport struct {
	URI     DocumentURI `json:"uri"`
	Version *int64      `json:"version"`
	UnchangedDocumentDiagnosticReport
}

// WorkspaceDocumentDiagnosticReport is a workspace diagnostic document
// report, tagged on the wire by its "kind".
type WorkspaceDocumentDiagnosticReport struct {
	Full      *WorkspaceFullDocumentDiagnosticReport
	Unchanged *WorkspaceUnchangedDocumentDiagnosticReport
}

func NewWorkspaceDocumentDiagnosticReportFull(r WorkspaceFullDocumentDiagnosticReport) WorkspaceDocumentDiagnosticReport {
	return WorkspaceDocumentDiagnosticReport{Full: &r}
}

func NewWorkspaceDocumentDiagnosticReportUnchanged(r WorkspaceUnchangedDocumentDiagnosticReport) WorkspaceDocumentDiagnosticReport {
	return WorkspaceDocumentDiagnosticReport{Unchanged: &r}
}

func (r WorkspaceDocumentDiagnosticReport) MarshalJSON() ([]byte, error) {
	return marshalReportKind("WorkspaceDocumentDiagnosticReport", r.Full, r.Unchanged)
}

func (r *WorkspaceDocumentDiagnosticReport) UnmarshalJSON(data []byte) error {
	*r = WorkspaceDocumentDiagnosticReport{}
	return decodeReportKind(data, &r.Full, &r.Unchanged)
}

// WorkspaceDiagnosticReport is the result of a workspace/diagnostic
// request.
type WorkspaceDiagnosticReport struct {
	Items []WorkspaceDocumentDiagnosticReport `json:"items"`
}

type WorkspaceDiagnosticReportPartialResult struct {
	Items []WorkspaceDocumentDiagnosticReport `json:"items"`
}

// WorkspaceDiagnosticReportResult is a report or a partial result. Both
// share the same shape, so an object decodes as Report.
type WorkspaceDiagnosticReportResult struct {
	Report  *WorkspaceDiagnosticReport
	Partial *WorkspaceDiagnosticReportPartialResult
}

func (r WorkspaceDiagnosticReportResult) MarshalJSON() ([]byte, error) {
	return marshalUnion("WorkspaceDiagnosticReportResult", r.Report, r.Partial)
}

func (r *WorkspaceDiagnosticReportResult) UnmarshalJSON(data []byte) error {
	*r = WorkspaceDiagnosticReportResult{}
	return decodeUnion("WorkspaceDiagnosticReportResult", data, arm(&r.Report), arm(&r.Partial))
}
