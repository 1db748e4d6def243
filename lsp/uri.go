package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/tidwall/gjson"
	"go.lsp.dev/uri"
)

// URI is a URI reference as defined by RFC 3986. It keeps the exact string
// it was parsed from: no normalization of scheme case, percent-encoding or
// trailing slashes happens, and equality, ordering and map keys are on that
// string. The zero value is the empty reference.
type URI struct {
	raw string
}

// DocumentURI is the name the protocol uses for URIs that identify a text
// document.
type DocumentURI = URI

// uriComponents is the component regular expression from RFC 3986
// appendix B.
var uriComponents = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?$`)

// ParseURI parses s as a URI reference.
func ParseURI(s string) (URI, error) {
	if err := validateURI(s); err != nil {
		return URI{}, &DecodeError{Err: ErrInvalidValue, Msg: fmt.Sprintf("invalid URI %q: %v", s, err)}
	}
	return URI{raw: s}, nil
}

// MustParseURI is like ParseURI but panics when s is not a valid URI.
func MustParseURI(s string) URI {
	u, err := ParseURI(s)
	contract.AssertNoErrorf(err, "parsing URI %q", s)
	return u
}

func validateURI(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return fmt.Errorf("invalid percent-encoding at offset %d", i)
			}
			i += 2
		case !isURIChar(c):
			return fmt.Errorf("invalid character %q at offset %d", c, i)
		}
	}
	if _, frag, ok := strings.Cut(s, "#"); ok && strings.Contains(frag, "#") {
		return fmt.Errorf("more than one fragment delimiter")
	}
	if _, err := url.Parse(s); err != nil {
		return err
	}
	return nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isURIChar reports whether c is an unreserved or reserved character.
func isURIChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=", c) >= 0
}

// FromPath returns the file URI for a file system path. Relative paths
// are made absolute first; Windows drive paths such as C:\src\a.go become
// file:///C:/src/a.go.
func FromPath(path string) URI {
	if path == "" {
		return URI{}
	}
	return URI{raw: string(uri.File(path))}
}

// FilePath returns the file system path of a file URI, with Windows drive
// letters restored.
func (u URI) FilePath() string {
	contract.Assertf(u.Scheme() == uri.FileScheme, "URI %q does not use the file scheme", u.raw)
	return uri.URI(u.raw).Filename()
}

func (u URI) String() string {
	return u.raw
}

// Equal reports whether both URIs have the same string form.
func (u URI) Equal(other URI) bool {
	return u.raw == other.raw
}

// Compare orders URIs lexicographically by their string form.
func (u URI) Compare(other URI) int {
	return strings.Compare(u.raw, other.raw)
}

func (u URI) component(group int) (string, bool) {
	m := uriComponents.FindStringSubmatchIndex(u.raw)
	if m == nil || m[2*group] < 0 {
		return "", false
	}
	return u.raw[m[2*group]:m[2*group+1]], true
}

// Scheme returns the scheme as written, without the trailing colon.
func (u URI) Scheme() string {
	s, _ := u.component(2)
	return s
}

// Authority returns the authority component, if any.
func (u URI) Authority() (string, bool) {
	return u.component(4)
}

// Path returns the path component as written, still percent-encoded.
func (u URI) Path() string {
	s, _ := u.component(5)
	return s
}

func (u URI) Query() (string, bool) {
	return u.component(7)
}

func (u URI) Fragment() (string, bool) {
	return u.component(9)
}

// WithFragment returns u with its fragment replaced by f. The fragment is
// percent-encoded where needed.
func (u URI) WithFragment(f string) URI {
	base := u.WithoutFragment()
	return URI{raw: base.raw + "#" + (&url.URL{Fragment: f}).EscapedFragment()}
}

func (u URI) WithoutFragment() URI {
	base, _, _ := strings.Cut(u.raw, "#")
	return URI{raw: base}
}

func (u URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.raw)
}

func (u *URI) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type != gjson.String {
		return decodeErrorf(ErrStructural, "", "URI must be a string, got %s", describe(r))
	}
	parsed, err := ParseURI(r.String())
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}

func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := ParseURI(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
