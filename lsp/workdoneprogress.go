package lsp

// WorkDoneProgressKind is the discriminator of a work done progress value.
type WorkDoneProgressKind string

const (
	WorkDoneProgressKindBegin  WorkDoneProgressKind = "begin"
	WorkDoneProgressKindReport WorkDoneProgressKind = "report"
	WorkDoneProgressKindEnd    WorkDoneProgressKind = "end"
)

type WorkDoneProgressCreateParams struct {
	// The token to be used to report progress.
	Token ProgressToken `json:"token"`
}

type WorkDoneProgressCancelParams struct {
	// The token to be used to report progress.
	Token ProgressToken `json:"token"`
}

// ProgressParams is the payload of $/progress.
type ProgressParams struct {
	// The progress token provided by the client or server.
	Token ProgressToken `json:"token"`
	// The progress data.
	Value ProgressParamsValue `json:"value"`
}

type ProgressParamsValue = WorkDoneProgress

// WorkDoneProgress is one of begin, report and end, tagged on the wire by
// its "kind".
type WorkDoneProgress struct {
	Begin  *WorkDoneProgressBegin
	Report *WorkDoneProgressReport
	End    *WorkDoneProgressEnd
}

func NewWorkDoneProgressBegin(b WorkDoneProgressBegin) WorkDoneProgress {
	return WorkDoneProgress{Begin: &b}
}

func NewWorkDoneProgressReport(r WorkDoneProgressReport) WorkDoneProgress {
	return WorkDoneProgress{Report: &r}
}

func NewWorkDoneProgressEnd(e WorkDoneProgressEnd) WorkDoneProgress {
	return WorkDoneProgress{End: &e}
}

func (p WorkDoneProgress) MarshalJSON() ([]byte, error) {
	switch {
	case p.Begin != nil:
		return marshalTagged("kind", string(WorkDoneProgressKindBegin), p.Begin)
	case p.Report != nil:
		return marshalTagged("kind", string(WorkDoneProgressKindReport), p.Report)
	case p.End != nil:
		return marshalTagged("kind", string(WorkDoneProgressKindEnd), p.End)
	}
	return nil, noAlternative("WorkDoneProgress")
}

// UnmarshalJSON rejects percentages above 100.
func (p *WorkDoneProgress) UnmarshalJSON(data []byte) error {
	*p = WorkDoneProgress{}
	kind, err := discriminator(data, "kind")
	if err != nil {
		return err
	}
	var v WorkDoneProgress
	switch WorkDoneProgressKind(kind) {
	case WorkDoneProgressKindBegin:
		if err := arm(&v.Begin)(data); err != nil {
			return err
		}
		if err := checkPercentage(v.Begin.Percentage); err != nil {
			return err
		}
	case WorkDoneProgressKindReport:
		if err := arm(&v.Report)(data); err != nil {
			return err
		}
		if err := checkPercentage(v.Report.Percentage); err != nil {
			return err
		}
	case WorkDoneProgressKindEnd:
		if err := arm(&v.End)(data); err != nil {
			return err
		}
	default:
		return decodeErrorf(ErrUnknownDiscriminator, "kind", "unknown work done progress kind %q", kind)
	}
	*p = v
	return nil
}

func checkPercentage(p *uint32) error {
	if p != nil && *p > 100 {
		return decodeErrorf(ErrInvalidValue, "percentage", "%d is not in [0, 100]", *p)
	}
	return nil
}

type WorkDoneProgressBegin struct {
	// Mandatory title of the progress operation, e.g. "Indexing".
	Title string `json:"title"`
	// Controls whether a cancel button should show to allow the user to
	// cancel the long running operation.
	Cancellable *bool `json:"cancellable,omitempty"`
	// Optional, more detailed associated progress message, e.g.
	// "3/25 files".
	Message *string `json:"message,omitempty"`
	// Optional progress percentage to display, in the range [0, 100].
	Percentage *uint32 `json:"percentage,omitempty"`
}

type WorkDoneProgressReport struct {
	// Controls enablement state of a cancel button.
	Cancellable *bool   `json:"cancellable,omitempty"`
	Message     *string `json:"message,omitempty"`
	// Optional progress percentage to display, in the range [0, 100].
	Percentage *uint32 `json:"percentage,omitempty"`
}

type WorkDoneProgressEnd struct {
	// Optional, a final message indicating the outcome of the operation.
	Message *string `json:"message,omitempty"`
}
