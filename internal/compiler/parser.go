// Package compiler turns frontmatter YAML into the values the validators work on.
package compiler

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the decoded YAML header of a notation.
type Frontmatter struct {
	Values map[string]any
	// Lines maps each top-level key to its 1-based line in the original document.
	Lines map[string]int
}

// Line returns the document line of key, or 0 if unknown.
func (f *Frontmatter) Line(key string) int {
	return f.Lines[key]
}

// ParseError reports a YAML problem. Line is absolute within the document, 0 if unknown.
type ParseError struct {
	Err    error
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser is responsible for converting frontmatter text into a Frontmatter.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// Parse decodes text, which starts at document line startLine. Empty text yields
// an empty mapping. A top level that is not a mapping fails with domain.ErrNotAnObject.
func (p *Parser) Parse(text string, startLine int) (*Frontmatter, error) {
	fm := &Frontmatter{Values: map[string]any{}, Lines: map[string]int{}}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, syntaxError(err, startLine)
	}
	if len(root.Content) == 0 {
		return fm, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, &ParseError{
			Err:    domain.ErrNotAnObject,
			Line:   top.Line + startLine - 1,
			Detail: "got " + nodeKind(top),
		}
	}

	var values map[string]any
	if err := top.Decode(&values); err != nil {
		return nil, syntaxError(err, startLine)
	}
	for k, v := range values {
		fm.Values[k] = normalize(v)
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i]
		if _, seen := fm.Lines[key.Value]; !seen {
			fm.Lines[key.Value] = key.Line + startLine - 1
		}
	}
	return fm, nil
}

func syntaxError(err error, startLine int) *ParseError {
	pe := &ParseError{Err: domain.ErrYAMLSyntax, Detail: err.Error()}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil {
			pe.Line = n + startLine - 1
		}
	}
	return pe
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unsupported node"
	}
}

// normalize rewrites map[any]any produced for non-string keys into map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

// BuildStateMachine converts a flow or alignment value into a StateMachine.
// A state with no transitions may be written as null. Any other shape fails
// with domain.ErrInvalidStateMachine naming the first offending state.
func BuildStateMachine(value any) (domain.StateMachine, error) {
	states, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping of states, got %s", domain.ErrInvalidStateMachine, describe(value))
	}

	m := make(domain.StateMachine, len(states))
	for _, name := range sortedKeys(states) {
		switch raw := states[name].(type) {
		case nil:
			m[name] = domain.Transitions{}
		case map[string]any:
			tr := make(domain.Transitions, len(raw))
			for _, cond := range sortedKeys(raw) {
				target, ok := raw[cond].(string)
				if !ok {
					return nil, fmt.Errorf("%w: state %q condition %q: target must be a string, got %s",
						domain.ErrInvalidStateMachine, name, cond, describe(raw[cond]))
				}
				tr[cond] = target
			}
			m[name] = tr
		default:
			return nil, fmt.Errorf("%w: state %q: expected a mapping of transitions, got %s",
				domain.ErrInvalidStateMachine, name, describe(raw))
		}
	}
	return m, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
