// Package testutil provides builders and environments for testing docflow
// components.
//
// Key components:
//   - WorkflowBuilder: declarative workflow setup
//   - NewDocument / NewIntakeContext: match context construction
//   - TestEnvironment: temp directory with workflow files, fixtures and an
//     isolated log location
//
// All test data should be defined inline, not in external files.
package testutil
