// Package types defines the data model shared by the workflow engine: the
// closed enums (trigger types, document sources, matching algorithms, action
// types), workflow configuration (Workflow, WorkflowTrigger, WorkflowAction),
// the immutable MatchContext built once per evaluation, and the values a run
// returns (MutationSet and Decision).
//
// Set-valued fields use IDSet, an insertion-ordered set, so that union and
// subtraction produce the same ordering on every run regardless of how the
// caller's storage layer orders its relations.
//
// Nothing in this package performs I/O. Capabilities that reach outside the
// engine (entity display names, current document permissions) are expressed
// as the Names and PermissionSource interfaces and injected by the caller.
package types
