package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/matching"
	"github.com/arthur-debert/docflow/pkg/titles"
	"github.com/arthur-debert/docflow/pkg/types"
)

// Validate checks structural problems that would make the workflow set
// ambiguous. All problems are reported together in a CONFIG_INVALID error.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Settings.FuzzyThreshold < 0 || c.Settings.FuzzyThreshold > 100 {
		add("settings.fuzzy_threshold must be between 0 and 100, got %d", c.Settings.FuzzyThreshold)
	}
	if _, err := c.Settings.Location(); err != nil {
		add("settings.local_timezone: %v", err)
	}

	workflowIDs := make(map[types.ID]bool)
	for i, wf := range c.Workflows {
		where := fmt.Sprintf("workflows[%d]", i)
		if wf.ID == types.NoID {
			add("%s: id is required", where)
		} else if workflowIDs[wf.ID] {
			add("%s: duplicate workflow id %d", where, wf.ID)
		}
		workflowIDs[wf.ID] = true

		if strings.TrimSpace(wf.Name) == "" {
			add("%s: name is required", where)
		}

		triggerIDs := make(map[types.ID]bool)
		for j, t := range wf.Triggers {
			tw := fmt.Sprintf("%s.triggers[%d]", where, j)
			if t.ID == types.NoID {
				add("%s: id is required", tw)
			} else if triggerIDs[t.ID] {
				add("%s: duplicate trigger id %d", tw, t.ID)
			}
			triggerIDs[t.ID] = true

			if !t.Type.Valid() {
				add("%s: type must be one of consumption, document_added, document_updated", tw)
			}
			for _, src := range t.Sources {
				if !src.Valid() {
					add("%s: invalid source %d", tw, int(src))
				}
			}
			if !t.MatchingAlgorithm.Valid() {
				add("%s: invalid matching algorithm %d", tw, int(t.MatchingAlgorithm))
			}
		}

		actionIDs := make(map[types.ID]bool)
		for j, a := range wf.Actions {
			aw := fmt.Sprintf("%s.actions[%d]", where, j)
			if a.ID == types.NoID {
				add("%s: id is required", aw)
			} else if actionIDs[a.ID] {
				add("%s: duplicate action id %d", aw, a.ID)
			}
			actionIDs[a.ID] = true

			if !a.Type.Valid() {
				add("%s: type must be assignment or removal", aw)
			}
			for key := range a.AssignCustomFieldValues {
				if _, err := strconv.ParseInt(key, 10, 64); err != nil {
					add("%s: custom field value key %q is not a field id", aw, key)
				}
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrConfigValid, "invalid workflow configuration: %d problems", len(problems)).
		WithDetail("problems", problems)
}

// Lint reports patterns and templates that will fail at run time. These do
// not make a configuration invalid; the engine treats them as non-matching
// triggers or skipped titles.
func (c *Config) Lint() []string {
	var warnings []string
	for _, wf := range c.Workflows {
		for _, t := range wf.Triggers {
			for _, glob := range []string{t.FilterFilename, t.FilterPath} {
				if glob == "" {
					continue
				}
				if _, err := matching.CompileGlob(glob); err != nil {
					warnings = append(warnings, fmt.Sprintf("workflow %d trigger %d: %v", wf.ID, t.ID, err))
				}
			}
			if t.MatchingAlgorithm == types.MatchRegex {
				if _, _, err := matching.MatchesContent(types.MatchRegex, t.Match, "", t.IsInsensitive); err != nil {
					warnings = append(warnings, fmt.Sprintf("workflow %d trigger %d: %v", wf.ID, t.ID, err))
				}
			}
			if t.MatchingAlgorithm != types.MatchNone && strings.TrimSpace(t.Match) == "" {
				warnings = append(warnings, fmt.Sprintf("workflow %d trigger %d: %s matching with an empty pattern never matches",
					wf.ID, t.ID, t.MatchingAlgorithm))
			}
		}
		for _, a := range wf.Actions {
			if a.AssignTitle == "" {
				continue
			}
			if err := titles.Validate(a.AssignTitle); err != nil {
				warnings = append(warnings, fmt.Sprintf("workflow %d action %d: %v", wf.ID, a.ID, err))
			}
		}
	}
	return warnings
}
