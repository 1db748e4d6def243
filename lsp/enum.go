package lsp

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/exp/constraints"
)

// enumTable holds the well-known names of a closed integer enumeration.
// Names are declared in UPPER_SNAKE form and rendered in PascalCase.
type enumTable[T constraints.Signed] struct {
	typeName string
	names    map[T]string
	values   map[string]T
}

func newEnumTable[T constraints.Signed](typeName string, upper map[T]string) *enumTable[T] {
	t := &enumTable[T]{
		typeName: typeName,
		names:    make(map[T]string, len(upper)),
		values:   make(map[string]T, len(upper)),
	}
	for v, name := range upper {
		pascal := strcase.ToCamel(strings.ToLower(name))
		t.names[v] = pascal
		t.values[pascal] = v
	}
	return t
}

func (t *enumTable[T]) format(v T) string {
	if name, ok := t.names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", t.typeName, v)
}

func (t *enumTable[T]) parse(s string) (T, error) {
	if v, ok := t.values[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: unknown %s variant %q", ErrInvalidValue, t.typeName, s)
}
