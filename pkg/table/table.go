// Package table compiles YAML rule documents into dispatch tables.
// A document is a single mapping; each entry becomes a value-literal
// arm in document order, and the key "_" becomes a catch-all:
//
//	18: hi
//	25: oh well hello
//	_: who are you?
//
// Lookup returns the first matching entry, so an early "_" shadows
// everything after it.
package table

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/prelude/pkg/match"
	"github.com/funvibe/prelude/pkg/option"
)

// WildcardKey matches any scrutinee.
const WildcardKey = "_"

// Table is an ordered list of rules compiled from a YAML mapping.
type Table struct {
	arms []match.Arm[string, string]
	size int
}

// Parse compiles a YAML mapping document into a Table. Keys and
// values are taken as scalars; anything else is an error.
func Parse(src []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty rule document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rule document must be a mapping, got %s", nodeKindName(root.Kind))
	}

	t := &Table{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: rule key must be a scalar", key.Line)
		}
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: rule value must be a scalar", val.Line)
		}
		if key.Value == WildcardKey {
			t.arms = append(t.arms, match.Otherwise[string](val.Value))
		} else {
			t.arms = append(t.arms, match.Case(key.Value, val.Value))
		}
		t.size++
	}
	return t, nil
}

// Lookup evaluates scrutinee against the rules in document order and
// returns the first match, or None when no rule (and no wildcard)
// applies.
func (t *Table) Lookup(scrutinee string) option.Option[string] {
	return match.Eval(scrutinee, t.arms...)
}

// Len returns the number of rules, the wildcard included.
func (t *Table) Len() int { return t.size }

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
