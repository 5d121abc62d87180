package jsonfield

import (
	"bytes"
	"encoding/json"

	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/schema"
)

// Action is a changelog action.
type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionReviewed Action = "reviewed"
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
	ActionDeleted  Action = "deleted"
)

// Actions lists every accepted changelog action.
var Actions = []Action{ActionCreated, ActionUpdated, ActionReviewed, ActionApproved, ActionRejected, ActionDeleted}

// Change is one audit entry. Timestamp and UserID keep their JSON scalar text.
type Change struct {
	Action    Action `json:"action"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"user_id"`
}

// UnmarshalJSON accepts string or numeric timestamps and user ids.
func (c *Change) UnmarshalJSON(data []byte) error {
	var raw struct {
		Action    Action          `json:"action"`
		Timestamp json.RawMessage `json:"timestamp"`
		UserID    json.RawMessage `json:"user_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Action = raw.Action
	c.Timestamp = scalarText(raw.Timestamp)
	c.UserID = scalarText(raw.UserID)
	return nil
}

func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// Changelog is the audit trail stored with a record.
type Changelog struct {
	Changes []Change `json:"changes"`
}

func actionNames() []string {
	names := make([]string, len(Actions))
	for i, a := range Actions {
		names[i] = string(a)
	}
	return names
}

var changelogSchema = schema.Object(schema.Schema{
	"changes": schema.Slice(schema.Object(schema.Schema{
		"action":    schema.Enum(actionNames()...),
		"timestamp": schema.Any(),
		"user_id":   schema.Any(),
	}, schema.RequireAll())),
}, schema.Required("changes"))

// ValidateChangelog validates a changelog field: an object with a "changes" array whose
// entries carry an action, a timestamp and a user id.
func ValidateChangelog(text string) domain.SchemaValidationResult {
	return validateAgainst(changelogSchema, text)
}

// DecodeChangelog validates text and returns the typed changelog.
func DecodeChangelog(text string) (Changelog, error) {
	var c Changelog
	if err := decodeValid(ValidateChangelog, text, &c); err != nil {
		return Changelog{}, err
	}
	return c, nil
}
