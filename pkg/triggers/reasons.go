package triggers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/docflow/pkg/types"
)

func matchedReason(t types.WorkflowTrigger) string {
	prefix := fmt.Sprintf("%s matched on document", t)
	switch t.MatchingAlgorithm {
	case types.MatchLiteral:
		return fmt.Sprintf("%s because it contains this string: %q", prefix, t.Match)
	case types.MatchAnyWord:
		return fmt.Sprintf("%s because it contains any of these words: %q", prefix, t.Match)
	case types.MatchAllWords:
		return fmt.Sprintf("%s because it contains all of these words: %q", prefix, t.Match)
	case types.MatchRegex:
		return fmt.Sprintf("%s because it matches the regular expression: %q", prefix, t.Match)
	case types.MatchFuzzy:
		return fmt.Sprintf("%s because it matches the fuzzy pattern: %q", prefix, t.Match)
	}
	return prefix
}

func sourceList(sources []types.DocumentSource) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (e *Evaluator) name(kind types.EntityKind, id types.ID) string {
	return types.DisplayName(e.names, kind, id)
}

func (e *Evaluator) nameList(kind types.EntityKind, ids types.IDSet) string {
	items := ids.Items()
	parts := make([]string, len(items))
	for i, id := range items {
		parts[i] = e.name(kind, id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
