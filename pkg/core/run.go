package core

import (
	"fmt"
	"time"

	"github.com/arthur-debert/docflow/pkg/actions"
	"github.com/arthur-debert/docflow/pkg/logging"
	"github.com/arthur-debert/docflow/pkg/selection"
	"github.com/arthur-debert/docflow/pkg/triggers"
	"github.com/arthur-debert/docflow/pkg/types"
)

// Options carries the caller-supplied collaborators and settings of a run.
type Options struct {
	Names       types.Names
	Permissions types.PermissionSource
	// FuzzyThreshold is the FUZZY similarity threshold in percent; zero
	// uses the default.
	FuzzyThreshold int
	// Location is the zone title dates render in.
	Location *time.Location
}

// Run selects the workflows that apply to mctx for trigger type tt, folds
// their actions into a MutationSet and returns one Decision per enabled
// workflow considered. The only error is TRIGGER_TYPE_INVALID; every other
// problem is reported in the decisions or in the mutation set.
func Run(workflows []types.Workflow, tt types.TriggerType, mctx types.MatchContext, opts Options) (*types.MutationSet, []types.Decision, error) {
	logger := logging.GetLogger("core.run")
	done := logging.LogOperationStart(logger, "workflow run")
	defer done()

	ev := triggers.NewEvaluator(
		triggers.WithNames(opts.Names),
		triggers.WithFuzzyThreshold(opts.FuzzyThreshold),
	)

	outcomes, err := selection.Select(workflows, tt, mctx, ev)
	if err != nil {
		logger.Error().Err(err).Msg("workflow selection aborted")
		return nil, nil, err
	}

	decisions := make([]types.Decision, 0, len(outcomes))
	for _, o := range outcomes {
		d := decide(o)
		switch o.Result {
		case types.OutcomeMatched:
			logger.Info().Str("detail", d.Detail).Msg(d.Summary)
		default:
			logger.Debug().Str("detail", d.Detail).Msg(d.Summary)
		}
		decisions = append(decisions, d)
	}

	doc := mctx.Document
	if tt == types.TriggerConsumption && doc.OriginalFilename == "" && mctx.Intake != nil && mctx.Intake.Path != "" {
		doc.OriginalFilename = mctx.Intake.Filename()
	}

	ms := actions.Apply(selection.Matched(outcomes), tt, doc, actions.Options{
		Names:       opts.Names,
		Permissions: opts.Permissions,
		Location:    opts.Location,
	})

	logger.Debug().
		Str("trigger_type", tt.String()).
		Int("considered", len(outcomes)).
		Int("applied", len(ms.Workflows)).
		Int("errors", len(ms.Errors)).
		Msg("workflow run complete")

	return ms, decisions, nil
}

func decide(o selection.Outcome) types.Decision {
	d := types.Decision{
		Workflow: o.Workflow.ID,
		Outcome:  o.Result,
		Trigger:  o.Trigger.ID,
		Detail:   o.Reason,
	}
	switch o.Result {
	case types.OutcomeMatched:
		d.Summary = fmt.Sprintf("Document matched %s from %s", o.Trigger, o.Workflow)
	case types.OutcomeNoTriggerType:
		d.Summary = fmt.Sprintf("Document skipped %s: no applicable trigger type", o.Workflow)
	default:
		d.Summary = fmt.Sprintf("Document did not match %s", o.Workflow)
	}
	return d
}
