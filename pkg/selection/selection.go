// Package selection decides which workflows apply to a document for one
// trigger type.
//
// Workflows are considered in ascending Order, ties broken by ID (ids are
// sequential, so this is creation order). Disabled workflows are skipped
// silently. Within a workflow the triggers of the requested type are tried
// in declared order and the first match selects the workflow.
package selection

import (
	"sort"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/logging"
	"github.com/arthur-debert/docflow/pkg/triggers"
	"github.com/arthur-debert/docflow/pkg/types"
)

// Outcome records how one enabled workflow fared.
type Outcome struct {
	Workflow types.Workflow
	Result   types.Outcome
	// Trigger is the matching trigger, or the last one evaluated. It is the
	// zero trigger when the workflow has no trigger of the requested type.
	Trigger types.WorkflowTrigger
	// Reason is the detail line for the decision trace.
	Reason string
	// Err is a recoverable pattern error from the last evaluated trigger.
	Err error
}

// Matched reports whether the workflow was selected.
func (o Outcome) Matched() bool {
	return o.Result == types.OutcomeMatched
}

// Sorted returns a copy of workflows in evaluation order.
func Sorted(workflows []types.Workflow) []types.Workflow {
	sorted := make([]types.Workflow, len(workflows))
	copy(sorted, workflows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// Select evaluates every enabled workflow for trigger type tt and returns
// one Outcome per enabled workflow, in evaluation order. An invalid trigger
// type is a TRIGGER_TYPE_INVALID error and nothing is evaluated. A nil ev
// uses a default Evaluator.
func Select(workflows []types.Workflow, tt types.TriggerType, mctx types.MatchContext, ev *triggers.Evaluator) ([]Outcome, error) {
	logger := logging.GetLogger("selection.select")

	if !tt.Valid() {
		return nil, errors.Newf(errors.ErrTriggerType, "invalid trigger type %d", int(tt)).
			WithDetail("trigger_type", int(tt))
	}
	if ev == nil {
		ev = triggers.NewEvaluator()
	}

	var outcomes []Outcome
	for _, wf := range Sorted(workflows) {
		if !wf.Enabled {
			continue
		}

		outcome, err := selectWorkflow(wf, tt, mctx, ev)
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Int64("workflow", int64(wf.ID)).
			Str("name", wf.Name).
			Str("outcome", outcome.Result.String()).
			Str("reason", outcome.Reason).
			Msg("workflow considered")

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func selectWorkflow(wf types.Workflow, tt types.TriggerType, mctx types.MatchContext, ev *triggers.Evaluator) (Outcome, error) {
	candidates := wf.TriggersOfType(tt)
	if len(candidates) == 0 {
		return Outcome{
			Workflow: wf,
			Result:   types.OutcomeNoTriggerType,
			Reason:   "No matching triggers with type " + tt.String() + " found",
		}, nil
	}

	var last Outcome
	for _, trig := range candidates {
		res := ev.Evaluate(trig, tt, mctx)
		if res.Err != nil && errors.IsErrorCode(res.Err, errors.ErrTriggerType) {
			return Outcome{}, res.Err
		}

		last = Outcome{
			Workflow: wf,
			Result:   types.OutcomeNotMatched,
			Trigger:  trig,
			Reason:   res.Reason,
			Err:      res.Err,
		}
		if res.Matched {
			last.Result = types.OutcomeMatched
			return last, nil
		}
	}

	return last, nil
}

// Matched returns the selected workflows from outcomes, in order.
func Matched(outcomes []Outcome) []types.Workflow {
	var out []types.Workflow
	for _, o := range outcomes {
		if o.Matched() {
			out = append(out, o.Workflow)
		}
	}
	return out
}
