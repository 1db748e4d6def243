package lsp

import (
	"maps"
	"reflect"
	"slices"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/tidwall/gjson"
)

// RequestType describes an LSP request method: its name and the payload
// types of its params, result and registration options.
type RequestType interface {
	Method() string
	// NewParams returns a pointer to a zero params value.
	NewParams() any
	// NewResult returns a pointer to a zero result value.
	NewResult() any
	// NewRegistrationOptions returns a pointer to zero registration options,
	// or nil if the method cannot be registered dynamically.
	NewRegistrationOptions() any
}

// NotificationType describes an LSP notification method.
type NotificationType interface {
	Method() string
	NewParams() any
	NewRegistrationOptions() any
}

// Request is the descriptor of a request method with params P and
// result R.
type Request[P, R any] struct {
	method     string
	newOptions func() any
}

func (r *Request[P, R]) Method() string { return r.method }

func (r *Request[P, R]) NewParams() any { return new(P) }

func (r *Request[P, R]) NewResult() any { return new(R) }

func (r *Request[P, R]) NewRegistrationOptions() any {
	if r.newOptions == nil {
		return nil
	}
	return r.newOptions()
}

// DecodeParams decodes the params of a request. Absent params decode
// like null.
func (r *Request[P, R]) DecodeParams(data []byte) (P, error) {
	return decodePayload[P](data)
}

func (r *Request[P, R]) EncodeParams(params P) ([]byte, error) {
	return Marshal(params)
}

// DecodeResult decodes the result of a request. A null result decodes to
// the zero value when R is a pointer, slice or map.
func (r *Request[P, R]) DecodeResult(data []byte) (R, error) {
	return decodePayload[R](data)
}

func (r *Request[P, R]) EncodeResult(result R) ([]byte, error) {
	return Marshal(result)
}

// Notification is the descriptor of a notification method with params P.
type Notification[P any] struct {
	method     string
	newOptions func() any
}

func (n *Notification[P]) Method() string { return n.method }

func (n *Notification[P]) NewParams() any { return new(P) }

func (n *Notification[P]) NewRegistrationOptions() any {
	if n.newOptions == nil {
		return nil
	}
	return n.newOptions()
}

// DecodeParams decodes the params of a notification. Absent params decode
// like null.
func (n *Notification[P]) DecodeParams(data []byte) (P, error) {
	return decodePayload[P](data)
}

func (n *Notification[P]) EncodeParams(params P) ([]byte, error) {
	return Marshal(params)
}

func decodePayload[T any](data []byte) (T, error) {
	var v T
	if len(data) == 0 {
		data = []byte("null")
	}
	if gjson.ParseBytes(data).Type == gjson.Null {
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Slice, reflect.Map:
			return v, nil
		}
	}
	err := Unmarshal(data, &v)
	return v, err
}

var (
	requests      = map[string]RequestType{}
	notifications = map[string]NotificationType{}
)

func newRequest[P, R any](method string) *Request[P, R] {
	r := &Request[P, R]{method: method}
	registerRequest(r)
	return r
}

// newRegistrableRequest declares a request whose capability can be
// registered dynamically with options O.
func newRegistrableRequest[P, R, O any](method string) *Request[P, R] {
	r := &Request[P, R]{method: method, newOptions: func() any { return new(O) }}
	registerRequest(r)
	return r
}

func registerRequest(r RequestType) {
	_, dup := requests[r.Method()]
	contract.Assertf(!dup, "request %q is declared twice", r.Method())
	requests[r.Method()] = r
}

func newNotification[P any](method string) *Notification[P] {
	n := &Notification[P]{method: method}
	registerNotification(n)
	return n
}

func newRegistrableNotification[P, O any](method string) *Notification[P] {
	n := &Notification[P]{method: method, newOptions: func() any { return new(O) }}
	registerNotification(n)
	return n
}

func registerNotification(n NotificationType) {
	_, dup := notifications[n.Method()]
	contract.Assertf(!dup, "notification %q is declared twice", n.Method())
	notifications[n.Method()] = n
}

// LookupRequest returns the descriptor of the request method.
func LookupRequest(method string) (RequestType, bool) {
	r, ok := requests[method]
	return r, ok
}

// LookupNotification returns the descriptor of the notification method.
func LookupNotification(method string) (NotificationType, bool) {
	n, ok := notifications[method]
	return n, ok
}

// Requests lists every request method sorted by name.
func Requests() []RequestType {
	out := make([]RequestType, 0, len(requests))
	for _, m := range slices.Sorted(maps.Keys(requests)) {
		out = append(out, requests[m])
	}
	return out
}

// Notifications lists every notification method sorted by name.
func Notifications() []NotificationType {
	out := make([]NotificationType, 0, len(notifications))
	for _, m := range slices.Sorted(maps.Keys(notifications)) {
		out = append(out, notifications[m])
	}
	return out
}
