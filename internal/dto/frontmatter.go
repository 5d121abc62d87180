package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/neon-law-foundation/notation/pkg/domain"
)

// Frontmatter represents the header of a notation.
// It uses "mapstructure" tags to match the frontmatter YAML keys.
type Frontmatter struct {
	Code           string `json:"code" mapstructure:"code"`
	Title          string `json:"title" mapstructure:"title"`
	Description    string `json:"description" mapstructure:"description"`
	RespondentType string `json:"respondent_type,omitempty" mapstructure:"respondent_type"`

	// Flow and Alignment keep the raw YAML values; nil means absent.
	Flow      any `json:"flow,omitempty" mapstructure:"flow"`
	Alignment any `json:"alignment,omitempty" mapstructure:"alignment"`

	// Extra collects keys the engine does not interpret.
	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// Machine returns the raw value of the named state machine.
func (f Frontmatter) Machine(name domain.Machine) any {
	switch name {
	case domain.MachineFlow:
		return f.Flow
	case domain.MachineAlignment:
		return f.Alignment
	default:
		return nil
	}
}

// Decode maps frontmatter values onto a Frontmatter.
func Decode(values map[string]any) (Frontmatter, error) {
	var fm Frontmatter
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &fm,
		TagName: "mapstructure",
	})
	if err != nil {
		return Frontmatter{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Frontmatter{}, fmt.Errorf("failed to decode frontmatter: %w", err)
	}
	return fm, nil
}
