// Package actions folds the actions of matched workflows into a single
// MutationSet.
//
// # Passes
//
// Application runs in two passes over the matched workflows, each in
// workflow order and then in declared action order:
//
//  1. Assignment. Single-valued fields (title template, correspondent,
//     document type, storage path, owner) are last-writer-wins; an action
//     that leaves a field unset does not clear an earlier assignment.
//     Tags, the four permission sets and custom fields are unioned in
//     first-seen order. Adding a custom field that is already present is a
//     no-op.
//  2. Removal. Each remove-all flag clears its category outright and
//     overrides the matching removal list. Otherwise only listed items are
//     subtracted; a single-valued field is cleared when its current value is
//     listed. Removing something absent is a no-op, and categories an action
//     does not mention are left alone.
//
// The winning title template is rendered last, against the final state.
//
// # Permissions
//
// For document triggers the current grants are read through the injected
// PermissionSource and assignments merge into them. At consumption time the
// document does not exist yet and the base is empty.
package actions
