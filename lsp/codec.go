package lsp

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrStructural is used when the JSON shape does not match the declared
	// record, e.g. an array where an object was expected, or null in a
	// position that is not nullable.
	ErrStructural = errors.New("structural mismatch")
	// ErrMissingField is used when a required field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidValue is used for primitives that are well formed JSON but
	// not acceptable values: numbers out of range, unparsable URIs, flag
	// bits outside the defined mask.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownDiscriminator is used when the tag of a tagged union does
	// not name any known variant.
	ErrUnknownDiscriminator = errors.New("unknown discriminator")
)

// DecodeError is returned by Unmarshal and by the UnmarshalJSON methods of
// this package. Path is the JSON path of the offending value, relative to
// the document being decoded.
type DecodeError struct {
	Path string
	Err  error
	Msg  string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErrorf(kind error, path string, format string, args ...any) *DecodeError {
	return &DecodeError{Path: path, Err: kind, Msg: fmt.Sprintf(format, args...)}
}

// Marshal encodes v as the wire representation. Optional fields that are
// absent are not emitted. A nil list or map in a required field is encoded
// as an empty one, since null is not a valid value there.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return json.Marshal(v)
	}
	return json.Marshal(fillRequired(rv).Interface())
}

var jsonMarshalerType = reflect.TypeFor[json.Marshaler]()

// encodesItself reports whether values of t are encoded by their own
// MarshalJSON/MarshalText. Those call Marshal for their parts.
func encodesItself(t reflect.Type) bool {
	if t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) {
		return true
	}
	if t.Kind() == reflect.Pointer {
		return false
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonMarshalerType) || pt.Implements(textMarshalerType)
}

// fillRequired returns a copy of v in which every nil list or map held by
// a required field is replaced by an empty one.
func fillRequired(v reflect.Value) reflect.Value {
	t := v.Type()
	if encodesItself(t) {
		return v
	}
	switch t.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(fillRequired(v.Elem()))
		return p
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(t).Elem()
		out.Set(fillRequired(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(t).Elem()
		out.Set(v)
		for _, f := range structFields(t) {
			fv := out.FieldByIndex(f.index)
			if !fv.CanSet() {
				continue
			}
			switch {
			case (fv.Kind() == reflect.Slice || fv.Kind() == reflect.Map) && fv.IsNil():
				if f.optional || f.nullable || encodesItself(fv.Type()) {
					continue
				}
				if fv.Kind() == reflect.Slice {
					fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
				} else {
					fv.Set(reflect.MakeMap(fv.Type()))
				}
			default:
				fv.Set(fillRequired(fv))
			}
		}
		return out
	case reflect.Slice:
		if v.IsNil() || isScalar(t.Elem().Kind()) {
			return v
		}
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(fillRequired(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() || isScalar(t.Elem().Kind()) {
			return v
		}
		out := reflect.MakeMapWithSize(t, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), fillRequired(iter.Value()))
		}
		return out
	}
	return v
}

func isScalar(k reflect.Kind) bool {
	return k == reflect.Bool || k == reflect.String || isNumeric(k)
}

// Unmarshal decodes data into the value pointed to by v.
//
// It enforces the protocol's presence rules: a field without
// omitempty/omitzero must be present unless its Go type is a pointer or it
// is tagged `lsp:"nullable"`, and null is only accepted for optional
// fields, pointers, interfaces, nullable fields and types that decode
// themselves. Object keys are matched exactly; unknown keys are ignored and
// fields whose key is absent are left zero. Errors carry the path of the
// offending value, including errors raised by nested UnmarshalJSON methods.
//
// Types with their own UnmarshalJSON must never be embedded in another
// record, since the method would be promoted and take over decoding of the
// outer record.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return decodeErrorf(ErrStructural, "", "cannot decode into %T", v)
	}
	if !gjson.ValidBytes(data) {
		return decodeErrorf(ErrStructural, "", "invalid JSON")
	}
	return decodeElem(gjson.ParseBytes(data), rv.Elem(), "")
}

// nestedError turns an error returned while decoding the value at path into
// a *DecodeError whose path is relative to the whole document.
func nestedError(err error, path string) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return withPath(de, path)
	}
	var te *json.UnmarshalTypeError
	var se *json.SyntaxError
	if errors.As(err, &te) || errors.As(err, &se) {
		return withPath(wrapJSONError(err), path)
	}
	return &DecodeError{Path: path, Err: fmt.Errorf("%w: %w", ErrStructural, err)}
}

func wrapJSONError(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		kind := ErrStructural
		if strings.HasPrefix(te.Value, "number") && isNumeric(te.Type.Kind()) {
			kind = ErrInvalidValue
		}
		return decodeErrorf(kind, te.Field, "cannot decode %s into %s", te.Value, te.Type)
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return decodeErrorf(ErrStructural, "", "invalid JSON at offset %d: %v", se.Offset, se)
	}
	return &DecodeError{Err: ErrStructural, Msg: err.Error()}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

var (
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
)

// decodesItself reports whether values of t are decoded by their own
// UnmarshalJSON/UnmarshalText, which then own presence and null handling.
func decodesItself(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshalerType) || pt.Implements(textUnmarshalerType)
}

// decodeElem decodes raw into v, which must be settable, rejecting null
// where the type of v does not admit it.
func decodeElem(raw gjson.Result, v reflect.Value, path string) error {
	if raw.Type == gjson.Null {
		switch {
		case v.Kind() == reflect.Pointer, v.Kind() == reflect.Interface:
			v.SetZero()
			return nil
		case decodesItself(v.Type()):
			return decodeSelf(raw, v, path)
		}
		return decodeErrorf(ErrStructural, path, "null is not allowed here")
	}
	return decode(raw, v, path)
}

func decode(raw gjson.Result, v reflect.Value, path string) error {
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(t.Elem()))
		}
		return decode(raw, v.Elem(), path)
	}
	if decodesItself(t) {
		return decodeSelf(raw, v, path)
	}
	switch t.Kind() {
	case reflect.Struct:
		if !raw.IsObject() {
			return decodeErrorf(ErrStructural, path, "expected object, got %s", describe(raw))
		}
		return decodeStruct(raw, v, path)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return decodeScalar(raw, v, path)
		}
		if !raw.IsArray() {
			return decodeErrorf(ErrStructural, path, "expected array, got %s", describe(raw))
		}
		elems := raw.Array()
		out := reflect.MakeSlice(t, len(elems), len(elems))
		for i, elem := range elems {
			if err := decodeElem(elem, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		v.Set(out)
	case reflect.Map:
		if !raw.IsObject() {
			return decodeErrorf(ErrStructural, path, "expected object, got %s", describe(raw))
		}
		return decodeMap(raw, v, path)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return decodeErrorf(ErrStructural, path, "cannot decode into %s", t)
		}
		var x any
		if err := json.Unmarshal([]byte(raw.Raw), &x); err != nil {
			return nestedError(err, path)
		}
		v.Set(reflect.ValueOf(x))
	default:
		return decodeScalar(raw, v, path)
	}
	return nil
}

func decodeScalar(raw gjson.Result, v reflect.Value, path string) error {
	if err := json.Unmarshal([]byte(raw.Raw), v.Addr().Interface()); err != nil {
		return nestedError(err, path)
	}
	return nil
}

func decodeSelf(raw gjson.Result, v reflect.Value, path string) error {
	p := v.Addr().Interface()
	if u, ok := p.(json.Unmarshaler); ok {
		if err := u.UnmarshalJSON([]byte(raw.Raw)); err != nil {
			return nestedError(err, path)
		}
		return nil
	}
	if raw.Type != gjson.String {
		return decodeErrorf(ErrStructural, path, "expected string, got %s", describe(raw))
	}
	if err := p.(encoding.TextUnmarshaler).UnmarshalText([]byte(raw.String())); err != nil {
		return nestedError(err, path)
	}
	return nil
}

func decodeMap(raw gjson.Result, v reflect.Value, path string) error {
	t := v.Type()
	kt := t.Key()
	out := reflect.MakeMap(t)
	var err error
	raw.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		kpath := joinPath(path, name)
		k := reflect.New(kt).Elem()
		switch {
		case reflect.PointerTo(kt).Implements(textUnmarshalerType):
			if e := k.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(name)); e != nil {
				err = nestedError(e, kpath)
				return false
			}
		case kt.Kind() == reflect.String:
			k.SetString(name)
		default:
			err = decodeErrorf(ErrStructural, kpath, "cannot use %q as a key of %s", name, t)
			return false
		}
		elem := reflect.New(t.Elem()).Elem()
		if err = decodeElem(value, elem, kpath); err != nil {
			return false
		}
		out.SetMapIndex(k, elem)
		return true
	})
	if err != nil {
		return err
	}
	v.Set(out)
	return nil
}

func decodeStruct(raw gjson.Result, v reflect.Value, path string) error {
	present := make(map[string]gjson.Result)
	raw.ForEach(func(key, value gjson.Result) bool {
		present[key.String()] = value
		return true
	})
	for _, f := range structFields(v.Type()) {
		fv := v.FieldByIndex(f.index)
		fpath := joinPath(path, f.name)
		r, ok := present[f.name]
		switch {
		case !ok:
			if f.optional || f.nullable || fv.Kind() == reflect.Pointer {
				fv.SetZero()
				continue
			}
			return &DecodeError{Path: fpath, Err: ErrMissingField}
		case r.Type == gjson.Null && (f.optional || f.nullable) && !decodesItself(fv.Type()):
			fv.SetZero()
			continue
		}
		if err := decodeElem(r, fv, fpath); err != nil {
			return err
		}
	}
	return nil
}

type structField struct {
	name     string
	index    []int
	optional bool
	nullable bool
}

// structFields lists the JSON fields of t the way encoding/json sees them,
// with embedded structs flattened into the outer object. A field declared
// at a shallower depth hides embedded fields of the same name.
func structFields(t reflect.Type) []structField {
	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			for _, f := range structFields(sf.Type) {
				f.index = append([]int{i}, f.index...)
				fields = append(fields, f)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		optList := strings.Split(opts, ",")
		fields = append(fields, structField{
			name:     name,
			index:    []int{i},
			optional: slices.Contains(optList, "omitempty") || slices.Contains(optList, "omitzero"),
			nullable: sf.Tag.Get("lsp") == "nullable",
		})
	}
	slices.SortStableFunc(fields, func(a, b structField) int {
		return len(a.index) - len(b.index)
	})
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if seen[f.name] {
			continue
		}
		seen[f.name] = true
		out = append(out, f)
	}
	return out
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func describe(raw gjson.Result) string {
	switch {
	case raw.IsObject():
		return "object"
	case raw.IsArray():
		return "array"
	case raw.Type == gjson.Null:
		return "null"
	case raw.Type == gjson.String:
		return "string"
	case raw.Type == gjson.Number:
		return "number"
	case raw.IsBool():
		return "boolean"
	}
	return "nothing"
}

// discriminator returns the string value of the tag member key of a
// tagged union object.
func discriminator(data []byte, key string) (string, error) {
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return "", decodeErrorf(ErrStructural, "", "expected object, got %s", describe(r))
	}
	tag := r.Get(key)
	switch {
	case !tag.Exists():
		return "", &DecodeError{Path: key, Err: ErrMissingField}
	case tag.Type != gjson.String:
		return "", decodeErrorf(ErrStructural, key, "expected string, got %s", describe(tag))
	}
	return tag.String(), nil
}

// decodeClosedString decodes a string enumeration that only admits the
// given values.
func decodeClosedString[T ~string](data []byte, typeName string, allowed ...T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", decodeErrorf(ErrStructural, "", "%s: expected string, got %s", typeName, describe(gjson.ParseBytes(data)))
	}
	if !slices.Contains(allowed, T(s)) {
		return "", decodeErrorf(ErrUnknownDiscriminator, "", "%q is not a valid %s", s, typeName)
	}
	return T(s), nil
}

// mergeObjects splices the members of the JSON objects into a single object.
// Every argument must be an encoded object.
func mergeObjects(objects ...[]byte) []byte {
	out := []byte{'{'}
	for _, o := range objects {
		body := strings.TrimSpace(string(o))
		body = strings.TrimSpace(body[1 : len(body)-1])
		if body == "" {
			continue
		}
		if len(out) > 1 {
			out = append(out, ',')
		}
		out = append(out, body...)
	}
	return append(out, '}')
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// withPath prefixes the path of a *DecodeError with prefix.
func withPath(err error, prefix string) error {
	var de *DecodeError
	if !errors.As(err, &de) || prefix == "" {
		return err
	}
	path := prefix
	if de.Path != "" {
		if strings.HasPrefix(de.Path, "[") {
			path += de.Path
		} else {
			path += "." + de.Path
		}
	}
	return &DecodeError{Path: path, Err: de.Err, Msg: de.Msg}
}
