package lsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// OneOf is an untagged union of two alternatives, told apart on the wire by
// their JSON shape. Exactly one of Left and Right is set.
//
// Decoding tries Left first and takes the first alternative that decodes
// with Unmarshal, so when one alternative is a superset of the other the
// more specific one belongs on the left.
type OneOf[L, R any] struct {
	Left  *L
	Right *R
}

func OneOfLeft[L, R any](v L) OneOf[L, R] {
	return OneOf[L, R]{Left: &v}
}

func OneOfRight[L, R any](v R) OneOf[L, R] {
	return OneOf[L, R]{Right: &v}
}

func (o OneOf[L, R]) MarshalJSON() ([]byte, error) {
	switch {
	case o.Left != nil:
		return Marshal(o.Left)
	case o.Right != nil:
		return Marshal(o.Right)
	}
	return nil, noAlternative("OneOf")
}

func (o *OneOf[L, R]) UnmarshalJSON(data []byte) error {
	*o = OneOf[L, R]{}
	var l L
	var r R
	return decodeUnion(fmt.Sprintf("OneOf[%T, %T]", l, r), data, arm(&o.Left), arm(&o.Right))
}

func noVariant(typeName string) error {
	return decodeErrorf(ErrStructural, "", "data did not match any variant of %s", typeName)
}

// decodeUnion tries each decoder in order and stops at the first one that
// succeeds. When all of them fail, the error of the alternative that got
// deepest into the value is returned, so that a mistake inside a
// recognizable variant keeps its path. If no alternative got past the top
// level, or two failed equally deep at different places, the error names
// the union instead.
func decodeUnion(typeName string, data []byte, arms ...func([]byte) error) error {
	var best *DecodeError
	tied := false
	for _, arm := range arms {
		err := arm(data)
		if err == nil {
			return nil
		}
		var de *DecodeError
		if !errors.As(err, &de) || de.Path == "" {
			continue
		}
		switch d := pathDepth(de.Path); {
		case best == nil || d > pathDepth(best.Path):
			best, tied = de, false
		case d == pathDepth(best.Path) && de.Path != best.Path:
			tied = true
		}
	}
	if best == nil || tied {
		return noVariant(typeName)
	}
	return best
}

// pathDepth counts the segments of a DecodeError path.
func pathDepth(path string) int {
	return 1 + strings.Count(path, ".") + strings.Count(path, "[")
}

// arm returns a decoder for one alternative of a union that stores the
// decoded value in *dst.
func arm[T any](dst **T) func([]byte) error {
	return func(data []byte) error {
		var v T
		if err := Unmarshal(data, &v); err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

// marshalUnion encodes the first non-nil alternative.
func marshalUnion(typeName string, alternatives ...any) ([]byte, error) {
	for _, a := range alternatives {
		if a == nil {
			continue
		}
		if isNilPointer(a) {
			continue
		}
		return Marshal(a)
	}
	return nil, noAlternative(typeName)
}

func noAlternative(typeName string) error {
	return fmt.Errorf("%s: no alternative is set", typeName)
}

// marshalTagged encodes payload with the tag member key set to tag.
func marshalTagged(key, tag string, payload any) ([]byte, error) {
	head, err := json.Marshal(map[string]string{key: tag})
	if err != nil {
		return nil, err
	}
	body, err := Marshal(payload)
	if err != nil {
		return nil, err
	}
	return mergeObjects(head, body), nil
}

// hasMember reports whether data is an object with at least one of keys.
func hasMember(data []byte, keys ...string) bool {
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return false
	}
	found := false
	r.ForEach(func(key, _ gjson.Result) bool {
		found = slices.Contains(keys, key.String())
		return !found
	})
	return found
}

// registrationKeys are the members that only registration options carry.
var registrationKeys = []string{"documentSelector", "id"}

// decodeProviderUnion decodes a server capability that is a boolean,
// options, or registration options. Options and registration options are
// both all-optional records, so an object carrying documentSelector or id
// decodes as registration options and any other object as options. simple
// is nil for capabilities without a boolean form.
func decodeProviderUnion[O, R any](typeName string, data []byte, simple **bool, opts **O, reg **R) error {
	if hasMember(data, registrationKeys...) {
		return decodeUnion(typeName, data, arm(reg))
	}
	if simple == nil {
		return decodeUnion(typeName, data, arm(opts))
	}
	return decodeUnion(typeName, data, arm(simple), arm(opts))
}
