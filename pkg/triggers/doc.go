// Package triggers evaluates a single WorkflowTrigger against a
// MatchContext.
//
// Criteria are checked in a fixed order and evaluation stops at the first
// failing one, whose reason names the criterion and the concrete values
// involved. Which criteria apply depends on the trigger type: consumption
// triggers look at the intake (source, mail rule, filename, path) while
// document triggers look at the persisted document (filename, path, tags,
// document type, correspondent, content). Criteria that do not apply to the
// requested type are never evaluated.
package triggers
