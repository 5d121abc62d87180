package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// entry accepts either a bare code or a mapping with a code key.
type entry struct {
	Code string `yaml:"code"`
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Code = node.Value
		return nil
	}
	type plain entry
	return node.Decode((*plain)(e))
}

// LoadCodes reads a YAML or JSON list of codes. Items may be strings or
// mappings carrying a "code" key; other keys are ignored.
func LoadCodes(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	codes := make([]string, 0, len(entries))
	for i, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("seed file %s: entry %d has no code", path, i)
		}
		codes = append(codes, e.Code)
	}
	return codes, nil
}

// LoadQuestionRegistry builds a QuestionRegistry from a seed file.
func LoadQuestionRegistry(path string) (*QuestionRegistry, error) {
	codes, err := LoadCodes(path)
	if err != nil {
		return nil, err
	}
	return NewQuestionRegistry(codes...), nil
}

// LoadNotationRegistry builds a NotationRegistry from a seed file. A code listed
// twice counts as two stored notations.
func LoadNotationRegistry(path string) (*NotationRegistry, error) {
	codes, err := LoadCodes(path)
	if err != nil {
		return nil, err
	}
	return NewNotationRegistry(codes...), nil
}
