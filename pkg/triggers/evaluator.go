package triggers

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/logging"
	"github.com/arthur-debert/docflow/pkg/matching"
	"github.com/arthur-debert/docflow/pkg/types"
)

// Criterion names, as reported in MatchResult.Criterion.
const (
	CriterionSources       = "sources"
	CriterionMailRule      = "mail_rule"
	CriterionFilename      = "filename"
	CriterionPath          = "path"
	CriterionTags          = "tags"
	CriterionDocumentType  = "document_type"
	CriterionCorrespondent = "correspondent"
	CriterionContent       = "content"
)

// MatchResult is the outcome of evaluating one trigger.
type MatchResult struct {
	Matched bool
	Reason  string
	// Criterion is the failing criterion; empty on a match.
	Criterion string
	// Err carries a recoverable pattern error behind a non-match, or a
	// TRIGGER_TYPE_INVALID error.
	Err error
}

// Evaluator evaluates triggers. It holds only read-only collaborators and
// is safe for concurrent use.
type Evaluator struct {
	names   types.Names
	content matching.ContentMatcher
	logger  zerolog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithNames sets the capability used to render entity names in reasons.
func WithNames(names types.Names) Option {
	return func(e *Evaluator) {
		e.names = names
	}
}

// WithFuzzyThreshold sets the FUZZY similarity threshold in percent.
func WithFuzzyThreshold(threshold int) Option {
	return func(e *Evaluator) {
		e.content = matching.NewContentMatcher(threshold)
	}
}

// NewEvaluator returns an Evaluator with the given options applied.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		content: matching.NewContentMatcher(matching.DefaultFuzzyThreshold),
		logger:  logging.GetLogger("triggers.evaluator"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate checks trigger t against mctx for trigger type tt. The caller is
// expected to pass only triggers whose type is tt.
func (e *Evaluator) Evaluate(t types.WorkflowTrigger, tt types.TriggerType, mctx types.MatchContext) MatchResult {
	var res MatchResult
	switch tt {
	case types.TriggerConsumption:
		res = e.evaluateConsumption(t, mctx)
	case types.TriggerDocumentAdded, types.TriggerDocumentUpdated:
		res = e.evaluateDocument(t, mctx.Document)
	default:
		err := errors.Newf(errors.ErrTriggerType, "invalid trigger type %d", int(tt)).
			WithDetail("trigger", int64(t.ID))
		return MatchResult{Reason: err.Message, Err: err}
	}

	if res.Matched {
		res.Reason = matchedReason(t)
	}

	e.logger.Trace().
		Int64("trigger", int64(t.ID)).
		Str("type", tt.String()).
		Bool("matched", res.Matched).
		Str("criterion", res.Criterion).
		Str("reason", res.Reason).
		Msg("trigger evaluated")

	return res
}

func (e *Evaluator) evaluateConsumption(t types.WorkflowTrigger, mctx types.MatchContext) MatchResult {
	var in types.Intake
	if mctx.Intake != nil {
		in = *mctx.Intake
	}

	if len(t.Sources) > 0 && !t.HasSource(in.Source) {
		return fail(CriterionSources, "Document source %s not in %s", in.Source, sourceList(t.Sources))
	}

	if t.FilterMailRule != types.NoID && in.MailRuleID != t.FilterMailRule {
		return fail(CriterionMailRule, "Document mail rule %s != %s", in.MailRuleID, t.FilterMailRule)
	}

	filename := in.Filename()
	if in.Path == "" {
		filename = mctx.Document.OriginalFilename
	}
	if t.FilterFilename != "" && (filename == "" || !matching.MatchesGlob(t.FilterFilename, filename)) {
		return fail(CriterionFilename, "Document filename %s does not match %s", orNone(filename), t.FilterFilename)
	}

	if t.FilterPath != "" && (in.Path == "" || !matching.MatchesGlob(t.FilterPath, in.Path)) {
		return fail(CriterionPath, "Document path %s does not match %s", orNone(in.Path), t.FilterPath)
	}

	return MatchResult{Matched: true}
}

func (e *Evaluator) evaluateDocument(t types.WorkflowTrigger, doc types.Document) MatchResult {
	if t.FilterFilename != "" &&
		(doc.OriginalFilename == "" || !matching.MatchesGlob(t.FilterFilename, doc.OriginalFilename)) {
		return fail(CriterionFilename, "Document filename %s does not match %s",
			orNone(doc.OriginalFilename), t.FilterFilename)
	}

	if t.FilterPath != "" && (doc.SourcePath == "" || !matching.MatchesGlob(t.FilterPath, doc.SourcePath)) {
		return fail(CriterionPath, "Document path %s does not match %s", orNone(doc.SourcePath), t.FilterPath)
	}

	if !t.FilterHasTags.IsEmpty() && !doc.Tags.ContainsAll(t.FilterHasTags) {
		return fail(CriterionTags, "Document tags %s do not include %s",
			e.nameList(types.KindTag, doc.Tags), e.nameList(types.KindTag, t.FilterHasTags))
	}

	if t.FilterHasDocumentType != types.NoID && doc.DocumentType != t.FilterHasDocumentType {
		return fail(CriterionDocumentType, "Document doc type %s does not match %s",
			e.name(types.KindDocumentType, doc.DocumentType), e.name(types.KindDocumentType, t.FilterHasDocumentType))
	}

	if t.FilterHasCorrespondent != types.NoID && doc.Correspondent != t.FilterHasCorrespondent {
		return fail(CriterionCorrespondent, "Document correspondent %s does not match %s",
			e.name(types.KindCorrespondent, doc.Correspondent), e.name(types.KindCorrespondent, t.FilterHasCorrespondent))
	}

	if t.MatchingAlgorithm != types.MatchNone {
		ok, term, err := e.content.Match(t.MatchingAlgorithm, t.Match, doc.Content, t.IsInsensitive)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Int64("trigger", int64(t.ID)).
				Str("algorithm", t.MatchingAlgorithm.String()).
				Msg("content pattern rejected, treating trigger as not matched")
			res := fail(CriterionContent, "Document content matching settings for algorithm '%s' did not match: %s",
				t.MatchingAlgorithm, err.Error())
			res.Err = err
			return res
		}
		if !ok {
			return fail(CriterionContent, "Document content matching settings for algorithm '%s' did not match",
				t.MatchingAlgorithm)
		}
		e.logger.Debug().
			Int64("trigger", int64(t.ID)).
			Str("term", term).
			Msg("content matched")
	}

	return MatchResult{Matched: true}
}

func fail(criterion, format string, args ...interface{}) MatchResult {
	return MatchResult{
		Criterion: criterion,
		Reason:    fmt.Sprintf(format, args...),
	}
}
