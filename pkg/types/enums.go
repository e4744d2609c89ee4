package types

import (
	"fmt"
	"strings"
)

// TriggerType is the document lifecycle moment a trigger is tied to.
type TriggerType int

const (
	TriggerConsumption     TriggerType = 1
	TriggerDocumentAdded   TriggerType = 2
	TriggerDocumentUpdated TriggerType = 3
)

// TriggerTypes lists every member of the closed set, in declaration order.
var TriggerTypes = []TriggerType{TriggerConsumption, TriggerDocumentAdded, TriggerDocumentUpdated}

// Valid reports whether t is a member of the closed set.
func (t TriggerType) Valid() bool {
	switch t {
	case TriggerConsumption, TriggerDocumentAdded, TriggerDocumentUpdated:
		return true
	}
	return false
}

func (t TriggerType) String() string {
	switch t {
	case TriggerConsumption:
		return "CONSUMPTION"
	case TriggerDocumentAdded:
		return "DOCUMENT_ADDED"
	case TriggerDocumentUpdated:
		return "DOCUMENT_UPDATED"
	}
	return fmt.Sprintf("TriggerType(%d)", int(t))
}

// MarshalText encodes the trigger type as its lower-case name.
func (t TriggerType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid trigger type %d", int(t))
	}
	return []byte(strings.ToLower(t.String())), nil
}

// UnmarshalText accepts the lower- or upper-case name.
func (t *TriggerType) UnmarshalText(b []byte) error {
	parsed, err := ParseTriggerType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTriggerType parses a trigger type name.
func ParseTriggerType(s string) (TriggerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "consumption", "consumption_started":
		return TriggerConsumption, nil
	case "document_added", "added":
		return TriggerDocumentAdded, nil
	case "document_updated", "updated":
		return TriggerDocumentUpdated, nil
	}
	return 0, fmt.Errorf("unknown trigger type %q", s)
}

// DocumentSource is how a pending file entered the system.
type DocumentSource int

const (
	SourceConsumeFolder DocumentSource = 1
	SourceAPIUpload     DocumentSource = 2
	SourceMailFetch     DocumentSource = 3
)

func (s DocumentSource) Valid() bool {
	switch s {
	case SourceConsumeFolder, SourceAPIUpload, SourceMailFetch:
		return true
	}
	return false
}

func (s DocumentSource) String() string {
	switch s {
	case SourceConsumeFolder:
		return "ConsumeFolder"
	case SourceAPIUpload:
		return "ApiUpload"
	case SourceMailFetch:
		return "MailFetch"
	}
	return fmt.Sprintf("DocumentSource(%d)", int(s))
}

func (s DocumentSource) MarshalText() ([]byte, error) {
	switch s {
	case SourceConsumeFolder:
		return []byte("consume_folder"), nil
	case SourceAPIUpload:
		return []byte("api_upload"), nil
	case SourceMailFetch:
		return []byte("mail_fetch"), nil
	}
	return nil, fmt.Errorf("invalid document source %d", int(s))
}

func (s *DocumentSource) UnmarshalText(b []byte) error {
	parsed, err := ParseDocumentSource(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseDocumentSource parses a source name such as "consume_folder" or "ConsumeFolder".
func ParseDocumentSource(s string) (DocumentSource, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	switch key {
	case "consumefolder", "folder":
		return SourceConsumeFolder, nil
	case "apiupload", "api":
		return SourceAPIUpload, nil
	case "mailfetch", "mail":
		return SourceMailFetch, nil
	}
	return 0, fmt.Errorf("unknown document source %q", s)
}

// MatchingAlgorithm selects how a trigger's content pattern is applied to
// document text.
type MatchingAlgorithm int

const (
	MatchNone     MatchingAlgorithm = 0
	MatchAnyWord  MatchingAlgorithm = 1
	MatchAllWords MatchingAlgorithm = 2
	MatchLiteral  MatchingAlgorithm = 3
	MatchRegex    MatchingAlgorithm = 4
	MatchFuzzy    MatchingAlgorithm = 5
)

func (a MatchingAlgorithm) Valid() bool {
	return a >= MatchNone && a <= MatchFuzzy
}

func (a MatchingAlgorithm) String() string {
	switch a {
	case MatchNone:
		return "NONE"
	case MatchAnyWord:
		return "ANY_WORD"
	case MatchAllWords:
		return "ALL_WORDS"
	case MatchLiteral:
		return "LITERAL"
	case MatchRegex:
		return "REGEX"
	case MatchFuzzy:
		return "FUZZY"
	}
	return fmt.Sprintf("MatchingAlgorithm(%d)", int(a))
}

func (a MatchingAlgorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid matching algorithm %d", int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

func (a *MatchingAlgorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseMatchingAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseMatchingAlgorithm parses an algorithm name; the empty string is NONE.
func ParseMatchingAlgorithm(s string) (MatchingAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MatchNone, nil
	case "any_word", "any":
		return MatchAnyWord, nil
	case "all_words", "all":
		return MatchAllWords, nil
	case "literal":
		return MatchLiteral, nil
	case "regex":
		return MatchRegex, nil
	case "fuzzy":
		return MatchFuzzy, nil
	}
	return 0, fmt.Errorf("unknown matching algorithm %q", s)
}

// ActionType distinguishes assignment actions from removal actions. The
// zero value is ActionAssignment.
type ActionType int

const (
	ActionAssignment ActionType = 0
	ActionRemoval    ActionType = 1
)

func (a ActionType) Valid() bool {
	return a == ActionAssignment || a == ActionRemoval
}

func (a ActionType) String() string {
	switch a {
	case ActionAssignment:
		return "ASSIGNMENT"
	case ActionRemoval:
		return "REMOVAL"
	}
	return fmt.Sprintf("ActionType(%d)", int(a))
}

func (a ActionType) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid action type %d", int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

func (a *ActionType) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "assignment", "assign":
		*a = ActionAssignment
	case "removal", "remove":
		*a = ActionRemoval
	default:
		return fmt.Errorf("unknown action type %q", string(b))
	}
	return nil
}
