package lsp

import "github.com/tidwall/gjson"

// MessageType is the type of a message shown or logged to the user.
type MessageType int32

const (
	MessageTypeError   MessageType = 1
	MessageTypeWarning MessageType = 2
	MessageTypeInfo    MessageType = 3
	MessageTypeLog     MessageType = 4
)

var messageTypeTable = newEnumTable("MessageType", map[MessageType]string{
	MessageTypeError:   "ERROR",
	MessageTypeWarning: "WARNING",
	MessageTypeInfo:    "INFO",
	MessageTypeLog:     "LOG",
})

func (t MessageType) String() string { return messageTypeTable.format(t) }

func ParseMessageType(s string) (MessageType, error) { return messageTypeTable.parse(s) }

type WindowClientCapabilities struct {
	// Whether the client supports server initiated progress using the
	// window/workDoneProgress/create request.
	WorkDoneProgress *bool                                 `json:"workDoneProgress,omitempty"`
	ShowMessage      *ShowMessageRequestClientCapabilities `json:"showMessage,omitempty"`
	ShowDocument     *ShowDocumentClientCapabilities       `json:"showDocument,omitempty"`
}

type ShowMessageRequestClientCapabilities struct {
	// Capabilities specific to the MessageActionItem type.
	MessageActionItem *MessageActionItemCapabilities `json:"messageActionItem,omitempty"`
}

type MessageActionItemCapabilities struct {
	// Whether the client supports additional attributes which are preserved
	// and sent back to the server in the request's response.
	AdditionalPropertiesSupport *bool `json:"additionalPropertiesSupport,omitempty"`
}

// MessageActionItem is an action offered by a window/showMessageRequest.
// Members other than title are kept in Properties.
type MessageActionItem struct {
	// A short title like 'Retry', 'Open Log' etc.
	Title string
	// Additional attributes that the client preserves and sends back to
	// the server.
	Properties map[string]MessageActionItemProperty
}

func (m MessageActionItem) MarshalJSON() ([]byte, error) {
	head, err := Marshal(struct {
		Title string `json:"title"`
	}{m.Title})
	if err != nil {
		return nil, err
	}
	extra := make(map[string]MessageActionItemProperty, len(m.Properties))
	for k, v := range m.Properties {
		if k != "title" {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return head, nil
	}
	rest, err := Marshal(extra)
	if err != nil {
		return nil, err
	}
	return mergeObjects(head, rest), nil
}

func (m *MessageActionItem) UnmarshalJSON(data []byte) error {
	*m = MessageActionItem{}
	var head struct {
		Title string `json:"title"`
	}
	if err := Unmarshal(data, &head); err != nil {
		return err
	}
	var props map[string]MessageActionItemProperty
	var err error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if k == "title" {
			return true
		}
		var p MessageActionItemProperty
		if err = Unmarshal([]byte(value.Raw), &p); err != nil {
			err = withPath(err, k)
			return false
		}
		if props == nil {
			props = make(map[string]MessageActionItemProperty)
		}
		props[k] = p
		return true
	})
	if err != nil {
		return err
	}
	*m = MessageActionItem{Title: head.Title, Properties: props}
	return nil
}

// MessageActionItemProperty is a string, boolean, integer or arbitrary
// object attribute of a MessageActionItem.
type MessageActionItemProperty struct {
	String  *string
	Boolean *bool
	Integer *int64
	Object  LSPAny
}

func (p MessageActionItemProperty) MarshalJSON() ([]byte, error) {
	switch {
	case p.String != nil:
		return Marshal(p.String)
	case p.Boolean != nil:
		return Marshal(p.Boolean)
	case p.Integer != nil:
		return Marshal(p.Integer)
	case p.Object != nil:
		return p.Object, nil
	}
	return nil, noAlternative("MessageActionItemProperty")
}

func (p *MessageActionItemProperty) UnmarshalJSON(data []byte) error {
	*p = MessageActionItemProperty{}
	return decodeUnion("MessageActionItemProperty", data,
		arm(&p.String), arm(&p.Boolean), arm(&p.Integer),
		func(b []byte) error {
			p.Object = append(LSPAny(nil), b...)
			return nil
		},
	)
}

type ShowMessageParams struct {
	// The message type.
	Type MessageType `json:"type"`
	// The actual message.
	Message string `json:"message"`
}

type ShowMessageRequestParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
	// The message action items to present.
	Actions []MessageActionItem `json:"actions,omitzero"`
}

type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// TelemetryEventParams is the payload of telemetry/event, an object or an
// array.
type TelemetryEventParams = LSPAny

type ShowDocumentClientCapabilities struct {
	// The client has support for the show document request.
	Support bool `json:"support"`
}

type ShowDocumentParams struct {
	// The document uri to show.
	URI URI `json:"uri"`
	// Indicates to show the resource in an external program. To show, for
	// example, https://code.visualstudio.com/ in the default web browser
	// set External to true.
	External *bool `json:"external,omitempty"`
	// An optional property to indicate whether the editor showing the
	// document should take focus or not. Clients might ignore this.
	TakeFocus *bool `json:"takeFocus,omitempty"`
	// An optional selection range if the document is a text document.
	Selection *Range `json:"selection,omitempty"`
}

type ShowDocumentResult struct {
	// A boolean indicating if the show was successful.
	Success bool `json:"success"`
}
