package lsp

type DiagnosticClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// Whether the clients supports related documents for document
	// diagnostic pulls.
	RelatedDocumentSupport *bool `json:"relatedDocumentSupport,omitempty"`
}

type DiagnosticOptions struct {
	// An optional identifier under which the diagnostics are managed by the
	// client.
	Identifier *string `json:"identifier,omitempty"`
	// Whether the language has inter file dependencies, meaning that
	// editing code in one file can result in different diagnostics in
	// another file.
	InterFileDependencies bool `json:"interFileDependencies"`
	// The server provides support for workspace diagnostics as well.
	WorkspaceDiagnostics bool `json:"workspaceDiagnostics"`
	WorkDoneProgressOptions
}

type DiagnosticRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DiagnosticOptions
	StaticRegistrationOptions
}

// DiagnosticServerCapabilities is the diagnosticProvider server
// capability.
type DiagnosticServerCapabilities struct {
	Options             *DiagnosticOptions
	RegistrationOptions *DiagnosticRegistrationOptions
}

func NewDiagnosticServerOptions(o DiagnosticOptions) DiagnosticServerCapabilities {
	return DiagnosticServerCapabilities{Options: &o}
}

func NewDiagnosticServerRegistrationOptions(o DiagnosticRegistrationOptions) DiagnosticServerCapabilities {
	return DiagnosticServerCapabilities{RegistrationOptions: &o}
}

func (c DiagnosticServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalUnion("DiagnosticServerCapabilities", c.Options, c.RegistrationOptions)
}

func (c *DiagnosticServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = DiagnosticServerCapabilities{}
	return decodeProviderUnion("DiagnosticServerCapabilities", data, nil, &c.Options, &c.RegistrationOptions)
}

type DocumentDiagnosticParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The additional identifier provided during registration.
	Identifier *string `json:"identifier,omitempty"`
	// The result id of a previous response if provided.
	PreviousResultID *string `json:"previousResultId,omitempty"`
	WorkDoneProgressParams
	PartialResultParams
}

// DocumentDiagnosticReportKind is the discriminator of a diagnostic
// report.
type DocumentDiagnosticReportKind string

const (
	// A diagnostic report with a full set of problems.
	DocumentDiagnosticReportKindFull DocumentDiagnosticReportKind = "full"
	// A report indicating that the last returned report is still accurate.
	DocumentDiagnosticReportKindUnchanged DocumentDiagnosticReportKind = "unchanged"
)

// FullDocumentDiagnosticReport is a diagnostic report with a full set of
// problems.
type FullDocumentDiagnosticReport struct {
	// An optional result ID. If provided it will be sent on the next
	// diagnostic request for the same document.
	ResultID *string      `json:"resultId,omitempty"`
	Items    []Diagnostic `json:"items"`
}

// UnchangedDocumentDiagnosticReport indicates that nothing has changed
// compared to a previous pull request.
type UnchangedDocumentDiagnosticReport struct {
	// A result ID which will be sent on the next diagnostic request for the
	// same document.
	ResultID string `json:"resultId"`
}

// FullOrUnchangedDocumentDiagnosticReport is a full or an unchanged report
// for a related document, tagged on the wire by its "kind".
type FullOrUnchangedDocumentDiagnosticReport struct {
	Full      *FullDocumentDiagnosticReport
	Unchanged *UnchangedDocumentDiagnosticReport
}

func (r FullOrUnchangedDocumentDiagnosticReport) MarshalJSON() ([]byte, error) {
	return marshalReportKind("FullOrUnchangedDocumentDiagnosticReport", r.Full, r.Unchanged)
}

func (r *FullOrUnchangedDocumentDiagnosticReport) UnmarshalJSON(data []byte) error {
	*r = FullOrUnchangedDocumentDiagnosticReport{}
	return decodeReportKind(data, &r.Full, &r.Unchanged)
}

// RelatedFullDocumentDiagnosticReport is a full diagnostic report with a
// set of related documents.
type RelatedFullDocumentDiagnosticReport struct {
	// Diagnostics of related documents. This information is useful in
	// programming languages where code in a file A can generate diagnostics
	// in a file B which A depends on.
	RelatedDocuments map[DocumentURI]FullOrUnchangedDocumentDiagnosticReport `json:"relatedDocuments,omitzero"`
	FullDocumentDiagnosticReport
}

// RelatedUnchangedDocumentDiagnosticReport is an unchanged diagnostic
// report with a set of related documents.
type RelatedUnchangedDocumentDiagnosticReport struct {
	RelatedDocuments map[DocumentURI]FullOrUnchangedDocumentDiagnosticReport `json:"relatedDocuments,omitzero"`
	UnchangedDocumentDiagnosticReport
}

// DocumentDiagnosticReport is the result of a textDocument/diagnostic
// request, tagged on the wire by its "kind".
type DocumentDiagnosticReport struct {
	Full      *RelatedFullDocumentDiagnosticReport
	Unchanged *RelatedUnchangedDocumentDiagnosticReport
}

func NewDocumentDiagnosticReportFull(r RelatedFullDocumentDiagnosticReport) DocumentDiagnosticReport {
	return DocumentDiagnosticReport{Full: &r}
}

func NewDocumentDiagnosticReportUnchanged(r RelatedUnchangedDocumentDiagnosticReport) DocumentDiagnosticReport {
	return DocumentDiagnosticReport{Unchanged: &r}
}

func (r DocumentDiagnosticReport) MarshalJSON() ([]byte, error) {
	return marshalReportKind("DocumentDiagnosticReport", r.Full, r.Unchanged)
}

func (r *DocumentDiagnosticReport) UnmarshalJSON(data []byte) error {
	*r = DocumentDiagnosticReport{}
	return decodeReportKind(data, &r.Full, &r.Unchanged)
}

// DocumentDiagnosticReportPartialResult is a partial result for a document
// diagnostic report.
type DocumentDiagnosticReportPartialResult struct {
	RelatedDocuments map[DocumentURI]FullOrUnchangedDocumentDiagnosticReport `json:"relatedDocuments,omitzero"`
}

// DocumentDiagnosticReportResult is a report or a partial result. An
// object without a kind decodes as Partial.
type DocumentDiagnosticReportResult struct {
	Report  *DocumentDiagnosticReport
	Partial *DocumentDiagnosticReportPartialResult
}

func (r DocumentDiagnosticReportResult) MarshalJSON() ([]byte, error) {
	return marshalUnion("DocumentDiagnosticReportResult", r.Report, r.Partial)
}

func (r *DocumentDiagnosticReportResult) UnmarshalJSON(data []byte) error {
	*r = DocumentDiagnosticReportResult{}
	return decodeUnion("DocumentDiagnosticReportResult", data, arm(&r.Report), arm(&r.Partial))
}

// DiagnosticServerCancellationData is the data of the error returned when
// a diagnostic request is cancelled by the server.
type DiagnosticServerCancellationData struct {
	RetriggerRequest bool `json:"retriggerRequest"`
}

func marshalReportKind(typeName string, full, unchanged any) ([]byte, error) {
	switch {
	case !isNilPointer(full):
		return marshalTagged("kind", string(DocumentDiagnosticReportKindFull), full)
	case !isNilPointer(unchanged):
		return marshalTagged("kind", string(DocumentDiagnosticReportKindUnchanged), unchanged)
	}
	return nil, noAlternative(typeName)
}

func decodeReportKind[F, U any](data []byte, full **F, unchanged **U) error {
	kind, err := discriminator(data, "kind")
	if err != nil {
		return err
	}
	switch DocumentDiagnosticReportKind(kind) {
	case DocumentDiagnosticReportKindFull:
		return arm(full)(data)
	case DocumentDiagnosticReportKindUnchanged:
		return arm(unchanged)(data)
	}
	return decodeErrorf(ErrUnknownDiscriminator, "kind", "unknown diagnostic report kind %q", kind)
}
