// Package core runs workflows against a document.
//
// Run is the single entry point: it selects the applicable workflows for a
// trigger type, folds their actions into a MutationSet and returns a
// two-line Decision per enabled workflow:
//
//	Document matched WorkflowTrigger 3 from Workflow: Invoices
//	WorkflowTrigger 3 matched on document
//
//	Document did not match Workflow: Receipts
//	Document filename simple.pdf does not match *receipt*
//
// Run performs no I/O apart from logging and keeps no state between calls,
// so identical inputs always produce identical results and it may be called
// concurrently for different documents. Persisting the MutationSet is the
// caller's job.
package core
