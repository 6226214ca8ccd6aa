// Package propsfile loads connection properties from YAML files.
//
// A properties file is a flat mapping of property key to scalar:
//
//	database: analytics
//	ssl: true
//	connection_timeout: 30
//
// Values are taken as written in the file, so `password: 0123` yields "0123"
// and `connection_timeout: 0x10` yields "0x10". Converting them is left to the
// connection property registry, the same as for connection strings and flags.
package propsfile

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/spf13/afero"
)

var (
	ErrNotMapping     = errors.New("properties file must be a mapping of key to value")
	ErrMultipleDocs   = errors.New("properties file must contain a single document")
	ErrUnsupportedKey = errors.New("property keys must be plain scalars")
)

// NonScalarError is returned when a property value is a list, mapping or alias.
type NonScalarError struct {
	Key string
}

func (e *NonScalarError) Error() string {
	return fmt.Sprintf("property %s: value must be a scalar", e.Key)
}

// Load reads path from fs and returns its properties as raw strings.
func Load(fs afero.Fs, path string) (map[string]string, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %w", err)
	}

	props, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// Parse reads a YAML properties document.
// An empty document yields an empty map.
func Parse(b []byte) (map[string]string, error) {
	// the parser rejects duplicate keys
	file, err := parser.ParseBytes(b, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid properties file: %w", err)
	}

	var body ast.Node
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if body != nil {
			return nil, ErrMultipleDocs
		}
		body = doc.Body
	}

	var pairs []*ast.MappingValueNode
	switch n := body.(type) {
	case nil, *ast.CommentGroupNode:
	case *ast.MappingNode:
		pairs = n.Values
	case *ast.MappingValueNode:
		pairs = []*ast.MappingValueNode{n}
	default:
		return nil, ErrNotMapping
	}

	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, err := keyText(pair.Key)
		if err != nil {
			return nil, err
		}
		value, ok := scalarText(pair.Value)
		if !ok {
			return nil, &NonScalarError{Key: key}
		}
		props[key] = value
	}
	return props, nil
}

func keyText(n ast.MapKeyNode) (string, error) {
	switch k := n.(type) {
	case *ast.StringNode:
		return k.Value, nil
	case ast.ScalarNode:
		if tk := k.GetToken(); tk != nil {
			return tk.Value, nil
		}
	}
	return "", ErrUnsupportedKey
}

// scalarText returns the source text of a scalar value. Quoted and block
// scalars yield their decoded string; plain scalars are never reinterpreted
// as numbers or booleans.
func scalarText(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case nil, *ast.NullNode:
		return "", true
	case *ast.StringNode:
		return v.Value, true
	case *ast.LiteralNode:
		return v.Value.Value, true
	case *ast.TagNode:
		return scalarText(v.Value)
	case *ast.AnchorNode:
		return scalarText(v.Value)
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return v.GetToken().Value, true
	default:
		return "", false
	}
}
